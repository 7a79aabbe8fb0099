// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// SignupReq represents the request body for the POST /users endpoint.
// Only presence is validated: the registration policy applies no email
// format or password strength checks.
type SignupReq struct {
	Email                string `json:"email" binding:"required"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"passwordConfirmation" binding:"required"`
}
