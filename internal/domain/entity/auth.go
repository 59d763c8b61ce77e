package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the way a credential authenticates.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "email"
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication is one sign-in method linked to a user.
// An email/password pair is one record; a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this credential.
	UserID         uuid.UUID    // The user this credential belongs to.
	Provider       ProviderType // How the credential authenticates.
	ProviderUserID string       // Email for ProviderTypeEmail, Google's `sub` claim for ProviderTypeGoogle.
	PasswordHash   string       // bcrypt hash, only set for ProviderTypeEmail.
	CreatedAt      time.Time    // When the credential was linked.
}

// RefreshToken is a long-lived session. Only the SHA-256 of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`         // Session identifier.
	UserID    uuid.UUID `json:"user_id"`    // Owner of the session.
	TokenHash string    `json:"-"`          // SHA-256 of the raw refresh token.
	UserAgent string    `json:"user_agent"` // Client that opened the session.
	ExpiresAt time.Time `json:"expires_at"` // Hard expiry.
	CreatedAt time.Time `json:"created_at"` // Sign-in time.
}

// IsExpired reports whether the session expired at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// TokenPair is what a successful sign-in returns.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
