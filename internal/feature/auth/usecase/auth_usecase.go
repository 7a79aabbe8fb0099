package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"news_backend/internal/feature/auth/domain/entity"
)

// SessionTTL is the window after which a session no longer authenticates.
// Expiry is evaluated at lookup time; expired rows stay in the store.
const SessionTTL = 7 * 24 * time.Hour

// PasswordHasher abstracts the credential hashing primitive.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/pwhash).
type PasswordHasher interface {
	// Hash derives a deterministic hash from the password and salt.
	Hash(password, salt string) (string, error)
	// GenerateSalt returns a fresh random salt.
	GenerateSalt() (string, error)
	// Verify reports whether password hashes to storedHash under salt,
	// using a constant-time comparison.
	Verify(password, salt, storedHash string) bool
}

// authUsecase implements the authentication business logic: registration,
// login with session issuance, token resolution, and logout.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
	hasher   PasswordHasher
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Register creates a new account. Registration is valid iff the email is
// unused, the password equals its confirmation, and the password is
// non-empty. No email format or password strength checks are applied; that
// is a deliberate policy, not an omission.
func (u *authUsecase) Register(ctx context.Context, email, password, confirmation string) error {
	if password == "" || password != confirmation {
		return ErrInvalidRegistration
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("check existing email: %w", err)
	}

	salt, err := u.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := u.hasher.Hash(password, salt)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{Email: email, PasswordHash: hash, Salt: salt}
	return u.users.Create(ctx, user)
}

// Login authenticates the credentials and, on success, issues a new session
// and returns its token. One user may hold several concurrent sessions.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !u.hasher.Verify(password, user.Salt, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return session.Token, nil
}

// ResolveUser maps a session token to its owning user. A missing session,
// an elapsed 7-day window, or a dangling user reference all resolve to
// ErrUnauthenticated. The expired row is left in place.
func (u *authUsecase) ResolveUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := u.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if session.IsExpired(SessionTTL) {
		return nil, ErrUnauthenticated
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// Logout deletes every session of the user the token resolves to, not just
// the presented one.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	user, err := u.ResolveUser(ctx, token)
	if err != nil {
		return err
	}
	return u.sessions.DeleteAllForUser(ctx, user.ID)
}
