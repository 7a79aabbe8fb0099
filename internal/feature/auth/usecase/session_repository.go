package usecase

import (
	"context"
	"time"

	"news_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its exact token, or
	// ErrSessionNotFound. No expiry filtering happens at this layer;
	// expiry is evaluated by the caller.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// DeleteAllForUser removes every session owned by userID. It is a
	// no-op when none exist.
	DeleteAllForUser(ctx context.Context, userID uint) error

	// DeleteExpired removes sessions created before cutoff and returns the
	// number of deleted rows. Only the maintenance batch calls this; the
	// server itself never reaps, keeping expiry lazy.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
