// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news_backend/internal/api"
	"news_backend/internal/feature/auth/transport/http/dto"
	"news_backend/internal/feature/auth/usecase"
	"news_backend/internal/platform/authmw"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account after validating the registration.
	Register(ctx context.Context, email, password, confirmation string) error
	// Login authenticates the credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// Logout removes every session of the user the token resolves to.
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles HTTP requests for registration, login, logout and the
// current-user lookup. The session token only ever crosses this boundary as
// the sessionId cookie.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /users.
// - 400 when fields are missing or the registration is invalid
// - 409 on duplicate email
// - 201 on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.PasswordConfirmation); err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		case errors.Is(err, usecase.ErrInvalidRegistration):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "check passwords match and try again"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "signup failed"})
		}
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "registration successful"})
}

// Login handles POST /sessions. On success the issued token is set as the
// sessionId cookie and never appears in the response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Do not leak whether the email exists.
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	// Session cookie, no explicit expiry. Secure/HttpOnly are off so the
	// local frontend can read it; a known hardening gap.
	c.SetCookie(authmw.SessionCookie, token, 0, "/", "", false, false)

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "login successful"})
}

// Logout handles DELETE /sessions. Every session of the current user is
// removed, then the cookie is cleared.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(authmw.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
			return
		}
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}

	c.SetCookie(authmw.SessionCookie, "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}

// Me handles GET /sessions and returns the current user. The route sits
// behind AuthRequired, so a nil user here is a programming error.
func (h *AuthHandler) Me(c *gin.Context) {
	user := authmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not logged in"})
		return
	}
	c.JSON(http.StatusOK, api.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
