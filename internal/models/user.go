// Package models contains the application's domain models.
package models

import "time"

// User represents a registered account. The Password column holds a bcrypt
// hash and never leaves the auth layer; it is excluded from JSON and from
// every rendered page.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Profile is the public view of a user and the payload carried by the
// session cookie. It deliberately has no password field.
type Profile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile strips the credential material from a user record.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email}
}
