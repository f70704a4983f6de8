// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm (SHA-256 digest or bcrypt),
// keeping the domain pure.
type PasswordHasher interface {
	// Hash transforms a plaintext password into its stored digest.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest to see if they match.
	Check(password, digest string) bool
}
