package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrAuthNotFound is returned when no credential matches the provider and subject.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores sign-in credentials.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	// FindAuthentication looks up a credential by provider and provider-side subject
	// (the email for password credentials, the `sub` claim for Google).
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}
