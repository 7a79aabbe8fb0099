// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email
	// that already has an account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidRegistration is returned when the password is empty or does
	// not match its confirmation.
	ErrInvalidRegistration = errors.New("invalid registration")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnauthenticated is returned when a token resolves to no usable
	// session: missing, expired, or dangling.
	ErrUnauthenticated = errors.New("not authenticated")
)
