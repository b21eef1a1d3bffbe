// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	maxNameLen     = 100
	minPasswordLen = 8
	maxPasswordLen = 100
	maxContentLen  = 140
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateName checks a display name. Names are free-form text up to 100
// characters.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fmt.Errorf("name must not exceed %d characters", maxNameLen)
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}

	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain both letters and digits")
	}

	return nil
}

// ValidateContent checks a post body: between 1 and 140 characters.
func ValidateContent(content string) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return fmt.Errorf("content must not exceed %d characters", maxContentLen)
	}
	return nil
}
