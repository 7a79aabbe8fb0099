// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the login identifier. It must be unique across all users.
	// No format validation is applied anywhere: presence is the only check
	// the registration policy makes.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the PBKDF2 hash of the password under Salt.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null"`

	// Salt is the per-user random salt the hash was derived with.
	Salt string `gorm:"size:64;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
