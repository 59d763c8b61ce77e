package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OAuthUser is the identity asserted by an external provider.
type OAuthUser struct {
	ID            string              // Provider subject, e.g. Google's `sub`.
	Email         string              // Verified address when EmailVerified is set.
	Name          string              // Display name.
	Provider      entity.ProviderType // Which provider issued the identity.
	AvatarURL     string              // Profile picture.
	EmailVerified bool                // Whether the provider verified Email.
}

// OAuthAuthService verifies ID tokens sent by clients after provider sign-in.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
	GetProvider() entity.ProviderType
}
