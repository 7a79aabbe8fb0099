// Package api defines the shared HTTP response envelope types used by all
// transport handlers.
package api

import "time"

// ErrorResponse is the envelope for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope for a successful request that carries no
// resource payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of a user. Credential fields are never
// exposed here.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
