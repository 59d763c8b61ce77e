package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the decoded payload of a storefront token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"` // Only present on access tokens.
	Type   TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed tokens.
type TokenService interface {
	// GenerateTokens issues a short-lived access token carrying roles and a
	// long-lived refresh token.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
	// HashToken returns the digest under which refresh tokens are stored.
	HashToken(token string) string
}
