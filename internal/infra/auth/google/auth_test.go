package google

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(t *testing.T, validate validateFunc) *AuthService {
	t.Helper()

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-123"}}
	svc, ok := NewAuthService(cfg, slog.New(slog.DiscardHandler)).(*AuthService)
	require.True(t, ok)
	svc.validate = validate

	return svc
}

func TestVerifyIDToken_Success(t *testing.T) {
	var gotAudience string
	svc := newTestService(t, func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "google-sub",
			Claims: map[string]any{
				"email":          "shopper@example.com",
				"name":           "Shopper",
				"picture":        "https://example.com/a.png",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "client-123", gotAudience)
	assert.Equal(t, "google-sub", user.ID)
	assert.Equal(t, "shopper@example.com", user.Email)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{name: "validator error", err: errors.New("bad signature")},
		{name: "wrong issuer", payload: &idtoken.Payload{Issuer: "evil.example", Subject: "s", Claims: map[string]any{"email": "a@b.c", "email_verified": true}}},
		{name: "unverified email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Subject: "s", Claims: map[string]any{"email": "a@b.c", "email_verified": "false"}}},
		{name: "missing email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Subject: "s", Claims: map[string]any{"email_verified": true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			user, err := svc.VerifyIDToken(context.Background(), "token")
			assert.Error(t, err)
			assert.Nil(t, user)
			assert.Contains(t, err.Error(), "token verification failed")
		})
	}
}

func TestVerifyIDToken_Unconfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.New(slog.DiscardHandler))

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
