package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error.Code
}

// capture records the principal the next handler observed.
func capture(seen *deliverycontext.Principal, called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		if p, ok := deliverycontext.GetPrincipal(c); ok {
			*seen = p
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		header    string
		setup     func(tokenSvc *mockSvc.MockTokenService)
		wantCode  int
		wantError string
		wantRole  entity.Role
	}{
		{
			name:      "missing header",
			wantCode:  http.StatusUnauthorized,
			wantError: "MISSING_TOKEN",
		},
		{
			name:      "not a bearer token",
			header:    "Basic dXNlcjpwYXNz",
			wantCode:  http.StatusUnauthorized,
			wantError: "INVALID_TOKEN",
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("stale").Return(nil, errors.New("token is expired"))
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "INVALID_TOKEN",
		},
		{
			name:   "token without subject",
			header: "Bearer anon",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("anon").Return(&service.Claims{}, nil)
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "INVALID_TOKEN",
		},
		{
			name:   "highest role wins",
			header: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
					UserID: userID,
					Roles:  []string{"user", "admin", "moderator"},
				}, nil)
			},
			wantCode: http.StatusNoContent,
			wantRole: entity.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			var seen deliverycontext.Principal
			var called bool
			c, rec := newContext(tt.header)

			require.NoError(t, m.Authenticate(capture(&seen, &called))(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError != "" {
				assert.False(t, called)
				assert.Equal(t, tt.wantError, errorCode(t, rec))

				return
			}
			assert.True(t, called)
			assert.Equal(t, userID, seen.UserID)
			assert.Equal(t, tt.wantRole, seen.Role)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("signature is invalid"))
	tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)

	for _, header := range []string{"", "Bearer bad"} {
		var seen deliverycontext.Principal
		var called bool
		c, rec := newContext(header)

		require.NoError(t, m.OptionalAuth(capture(&seen, &called))(c))
		assert.True(t, called, header)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, uuid.Nil, seen.UserID, header)
	}

	var seen deliverycontext.Principal
	var called bool
	c, _ := newContext("Bearer good")
	require.NoError(t, m.OptionalAuth(capture(&seen, &called))(c))
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, entity.RoleUser, seen.Role)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	tests := []struct {
		name      string
		principal *deliverycontext.Principal
		required  entity.Role
		wantCode  int
	}{
		{name: "anonymous", required: entity.RoleModerator, wantCode: http.StatusUnauthorized},
		{name: "shopper on back office", principal: &deliverycontext.Principal{UserID: uuid.New(), Role: entity.RoleUser}, required: entity.RoleModerator, wantCode: http.StatusForbidden},
		{name: "moderator on admin area", principal: &deliverycontext.Principal{UserID: uuid.New(), Role: entity.RoleModerator}, required: entity.RoleAdmin, wantCode: http.StatusForbidden},
		{name: "exact rank", principal: &deliverycontext.Principal{UserID: uuid.New(), Role: entity.RoleModerator}, required: entity.RoleModerator, wantCode: http.StatusNoContent},
		{name: "outranks", principal: &deliverycontext.Principal{UserID: uuid.New(), Role: entity.RoleSuperAdmin}, required: entity.RoleAdmin, wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, *tt.principal)
			}

			var seen deliverycontext.Principal
			var called bool
			require.NoError(t, m.RequireRole(tt.required)(capture(&seen, &called))(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode == http.StatusNoContent, called)
		})
	}
}
