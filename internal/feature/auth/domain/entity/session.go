package entity

import "time"

// Session represents a server-side login session. The token is the only
// thing the client holds (via the sessionId cookie); everything else stays
// in the store.
type Session struct {
	Token     string    // Opaque random token handed to the client
	UserID    uint      // Owning user
	CreatedAt time.Time // Issue time; expiry is derived from this
}

// IsExpired reports whether the session has outlived ttl. Expiry is lazy:
// the row itself is never deleted by this check.
func (s *Session) IsExpired(ttl time.Duration) bool {
	return time.Since(s.CreatedAt) >= ttl
}
