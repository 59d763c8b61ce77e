// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// validateFunc matches idtoken.Validate and is swapped in tests.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type AuthService struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthService{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience, issuer and expiry, then requires a verified email.
func (s *AuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.New("empty ID token")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, errors.Errorf("token verification failed: invalid issuer %q", payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if user.ID == "" || user.Email == "" {
		return nil, errors.New("token verification failed: missing subject or email")
	}
	if !user.EmailVerified {
		return nil, errors.New("token verification failed: email not verified")
	}

	return user, nil
}

func (s *AuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// claimBool accepts both JSON booleans and the "true" strings some issuers emit.
func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}
