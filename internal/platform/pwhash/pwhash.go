// Package pwhash wraps PBKDF2-SHA256 password hashing behind a small API.
// The salt is kept separate from the hash so it can live in its own column.
package pwhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// iterations is the PBKDF2 work factor. Fixed: changing it invalidates
	// every stored hash.
	iterations = 100_000
	saltBytes  = 16
	keyBytes   = 32
)

// Hasher derives and verifies password hashes. It is stateless and safe for
// concurrent use.
type Hasher struct{}

// New returns a Hasher.
func New() *Hasher {
	return &Hasher{}
}

// GenerateSalt returns a fresh random base64 salt.
func (h *Hasher) GenerateSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// Hash derives a base64 hash from the password and a base64 salt produced by
// GenerateSalt. It is deterministic for the same (password, salt) pair.
func (h *Hasher) Hash(password, salt string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}
	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	if len(rawSalt) == 0 {
		return "", fmt.Errorf("salt is empty")
	}
	key := pbkdf2.Key([]byte(password), rawSalt, iterations, keyBytes, sha256.New)
	return base64.RawStdEncoding.EncodeToString(key), nil
}

// Verify reports whether password hashes to storedHash under salt. The
// comparison is constant-time.
func (h *Hasher) Verify(password, salt, storedHash string) bool {
	computed, err := h.Hash(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
