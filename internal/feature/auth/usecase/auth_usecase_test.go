package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_backend/internal/feature/auth/domain/entity"
	"news_backend/internal/platform/pwhash"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockSessionRepository is a mock implementation of the SessionRepository
// interface backed by an in-memory map.
type mockSessionRepository struct {
	sessions map[string]*entity.Session
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: map[string]*entity.Session{}}
}

func (m *mockSessionRepository) Create(ctx context.Context, s *entity.Session) error {
	m.sessions[s.Token] = s
	return nil
}

func (m *mockSessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *mockSessionRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	for token, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, token)
		}
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for token, s := range m.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}

// testUser builds a user whose password is hashed with the real hasher so
// that login round-trips work in tests.
func testUser(t *testing.T, id uint, email, password string) *entity.User {
	t.Helper()

	h := pwhash.New()
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	hash, err := h.Hash(password, salt)
	require.NoError(t, err)
	return &entity.User{ID: id, Email: email, PasswordHash: hash, Salt: salt}
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Parallel()

	existing := testUser(t, 1, "taken@example.com", "pw123")

	tests := []struct {
		name         string
		email        string
		password     string
		confirmation string
		wantErr      error
	}{
		{
			name:         "success: unique email, matching passwords",
			email:        "a@x.com",
			password:     "pw123",
			confirmation: "pw123",
			wantErr:      nil,
		},
		{
			name:         "failure: duplicate email",
			email:        "taken@example.com",
			password:     "pw123",
			confirmation: "pw123",
			wantErr:      ErrEmailAlreadyExists,
		},
		{
			name:         "failure: mismatched confirmation",
			email:        "a@x.com",
			password:     "pw123",
			confirmation: "pw124",
			wantErr:      ErrInvalidRegistration,
		},
		{
			name:         "failure: empty password",
			email:        "a@x.com",
			password:     "",
			confirmation: "",
			wantErr:      ErrInvalidRegistration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var created *entity.User
			users := &mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
					if email == existing.Email {
						return existing, nil
					}
					return nil, ErrUserNotFound
				},
				CreateFunc: func(ctx context.Context, user *entity.User) error {
					created = user
					return nil
				},
			}

			uc := NewAuthUsecase(users, newMockSessionRepository(), pwhash.New())
			err := uc.Register(context.Background(), tt.email, tt.password, tt.confirmation)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created, "no user should be persisted on failure")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.email, created.Email)
			assert.NotEmpty(t, created.Salt)
			assert.NotEqual(t, tt.password, created.PasswordHash, "password must be hashed")
			assert.True(t, pwhash.New().Verify(tt.password, created.Salt, created.PasswordHash))
		})
	}
}

func TestAuthUsecase_Register_NoFormatValidation(t *testing.T) {
	t.Parallel()

	// "not-an-email" is accepted: presence and equality are the only checks.
	users := &mockUserRepository{}
	uc := NewAuthUsecase(users, newMockSessionRepository(), pwhash.New())

	err := uc.Register(context.Background(), "not-an-email", "x", "x")
	assert.NoError(t, err)
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Parallel()

	user := testUser(t, 1, "a@x.com", "pw123")
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, ErrUserNotFound
		},
	}

	t.Run("success issues a session token", func(t *testing.T) {
		sessions := newMockSessionRepository()
		uc := NewAuthUsecase(users, sessions, pwhash.New())

		token, err := uc.Login(context.Background(), "a@x.com", "pw123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		stored, err := sessions.FindByToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.UserID)
		assert.WithinDuration(t, time.Now(), stored.CreatedAt, time.Minute)
	})

	t.Run("two logins issue distinct tokens", func(t *testing.T) {
		sessions := newMockSessionRepository()
		uc := NewAuthUsecase(users, sessions, pwhash.New())

		first, err := uc.Login(context.Background(), "a@x.com", "pw123")
		require.NoError(t, err)
		second, err := uc.Login(context.Background(), "a@x.com", "pw123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewAuthUsecase(users, newMockSessionRepository(), pwhash.New())

		_, err := uc.Login(context.Background(), "nobody@x.com", "pw123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUsecase(users, newMockSessionRepository(), pwhash.New())

		_, err := uc.Login(context.Background(), "a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUsecase_ResolveUser_Expiry(t *testing.T) {
	t.Parallel()

	user := testUser(t, 1, "a@x.com", "pw123")
	users := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, ErrUserNotFound
		},
	}

	tests := []struct {
		name      string
		createdAt time.Time
		wantUser  bool
	}{
		{
			name:      "fresh session resolves",
			createdAt: time.Now(),
			wantUser:  true,
		},
		{
			name:      "one second before the window closes",
			createdAt: time.Now().Add(-SessionTTL + time.Second),
			wantUser:  true,
		},
		{
			name:      "one second after the window closes",
			createdAt: time.Now().Add(-SessionTTL - time.Second),
			wantUser:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sessions := newMockSessionRepository()
			sessions.sessions["tok"] = &entity.Session{Token: "tok", UserID: user.ID, CreatedAt: tt.createdAt}
			uc := NewAuthUsecase(users, sessions, pwhash.New())

			got, err := uc.ResolveUser(context.Background(), "tok")
			if tt.wantUser {
				require.NoError(t, err)
				assert.Equal(t, user.ID, got.ID)
			} else {
				assert.ErrorIs(t, err, ErrUnauthenticated)
				// Lazy expiry: the row is still there.
				_, found := sessions.sessions["tok"]
				assert.True(t, found, "expired session row must not be deleted")
			}
		})
	}
}

func TestAuthUsecase_ResolveUser_NotAuthenticated(t *testing.T) {
	t.Parallel()

	uc := NewAuthUsecase(&mockUserRepository{}, newMockSessionRepository(), pwhash.New())

	_, err := uc.ResolveUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = uc.ResolveUser(context.Background(), "unknown-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthUsecase_ResolveUser_DanglingUser(t *testing.T) {
	t.Parallel()

	sessions := newMockSessionRepository()
	sessions.sessions["tok"] = &entity.Session{Token: "tok", UserID: 42, CreatedAt: time.Now()}
	uc := NewAuthUsecase(&mockUserRepository{}, sessions, pwhash.New())

	_, err := uc.ResolveUser(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthUsecase_Logout_RemovesAllSessions(t *testing.T) {
	t.Parallel()

	user := testUser(t, 1, "a@x.com", "pw123")
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return user, nil
		},
	}
	sessions := newMockSessionRepository()
	uc := NewAuthUsecase(users, sessions, pwhash.New())

	first, err := uc.Login(context.Background(), "a@x.com", "pw123")
	require.NoError(t, err)
	second, err := uc.Login(context.Background(), "a@x.com", "pw123")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), first))

	_, err = uc.ResolveUser(context.Background(), first)
	assert.ErrorIs(t, err, ErrUnauthenticated, "logged-out token must not resolve")
	_, err = uc.ResolveUser(context.Background(), second)
	assert.ErrorIs(t, err, ErrUnauthenticated, "logout removes every session, not just the presented one")
}

func TestAuthUsecase_Logout_NotLoggedIn(t *testing.T) {
	t.Parallel()

	uc := NewAuthUsecase(&mockUserRepository{}, newMockSessionRepository(), pwhash.New())
	err := uc.Logout(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthUsecase_Register_RepositoryFailure(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("database error")
	users := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) error {
			return expectedErr
		},
	}
	uc := NewAuthUsecase(users, newMockSessionRepository(), pwhash.New())

	err := uc.Register(context.Background(), "a@x.com", "pw123", "pw123")
	assert.ErrorIs(t, err, expectedErr)
}
