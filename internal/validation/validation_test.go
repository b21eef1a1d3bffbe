package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "Alice", false},
		{"Exactly Max Length", strings.Repeat("a", 100), false},
		{"Multibyte Counted As Runes", strings.Repeat("あ", 100), false},
		{"Too Long", strings.Repeat("a", 101), true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "a@x.com", false},
		{"Valid With Plus", "a+tag@example.co.jp", false},
		{"Missing At", "ax.com", true},
		{"Missing TLD", "a@x", true},
		{"Empty", "", true},
		{"Spaces", "a b@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "pass1234", false},
		{"Exactly Min Length", "abcdefg1", false},
		{"Exactly Max Length", strings.Repeat("a", 99) + "1", false},
		{"Too Short", "pass123", true},
		{"Too Long", strings.Repeat("a", 100) + "1", true},
		{"Letters Only", "password", true},
		{"Digits Only", "12345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"Valid", "hello", false},
		{"Single Character", "a", false},
		{"Exactly Max Length", strings.Repeat("x", 140), false},
		{"Multibyte Counted As Runes", strings.Repeat("あ", 140), false},
		{"Too Long", strings.Repeat("x", 141), true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
