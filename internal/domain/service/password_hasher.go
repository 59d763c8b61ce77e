// Package service declares domain-facing contracts for infrastructure
// capabilities: hashing, tokens, push, storage, caching and events.
package service

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
	// ValidatePasswordStrength returns a description of the first unmet rule, or nil.
	ValidatePasswordStrength(password string) error
}
