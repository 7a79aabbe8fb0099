// Package authmw provides Gin middleware that resolves the session cookie
// into the current user.
package authmw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"news_backend/internal/feature/auth/domain/entity"
)

// SessionCookie is the cookie carrying the session token. The cookie is the
// only place the transport layer reads or writes the token; everything
// below works with an explicit token parameter.
const SessionCookie = "sessionId"

// contextUser is the gin context key holding the resolved *entity.User.
const contextUser = "currentUser"

// UserResolver resolves a session token to its owning user.
// Following Go convention: interfaces are defined by the consumer
// (middleware), not the provider (auth usecase).
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*entity.User, error)
}

// SessionLoader reads the session cookie and, when the token resolves,
// stores the user in the request context. It never aborts: anonymous
// requests pass through without a user.
func SessionLoader(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if user, err := resolver.ResolveUser(c.Request.Context(), token); err == nil {
				c.Set(contextUser, user)
			}
		}
		c.Next()
	}
}

// AuthRequired aborts with 401 when SessionLoader did not resolve a user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by SessionLoader, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(contextUser)
	if !ok {
		return nil
	}
	user, ok := v.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
