// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"medportal/internal/domain/service"
)

// sha256Hasher reproduces the portal's reference credential transform:
// an unsalted SHA-256 digest rendered as 64 lowercase hex characters.
// Deterministic by construction, so equal passwords always yield equal
// digests. Salting is available via the bcrypt hasher instead.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash digests the plaintext password. It never fails; the error return
// exists to satisfy the PasswordHasher contract shared with bcrypt.
func (h *sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:]), nil
}

// Check re-hashes the password and compares it with the stored digest
// in constant time.
func (h *sha256Hasher) Check(password, digest string) bool {
	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
