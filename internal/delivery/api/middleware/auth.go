// Package middleware contains echo middleware specific to the public API.
package middleware

import (
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and enforces role ranks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		principal, ok := m.resolve(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// OptionalAuth attaches the principal when a valid token is present and
// otherwise lets the request through as a guest.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if principal, ok := m.resolve(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
			deliverycontext.SetPrincipal(c, principal)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(authHeader string) (deliverycontext.Principal, bool) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return deliverycontext.Principal{}, false
	}

	claims, err := m.tokenSvc.ValidateAccessToken(strings.TrimPrefix(authHeader, bearerPrefix))
	if err != nil || claims.UserID == uuid.Nil {
		return deliverycontext.Principal{}, false
	}

	return deliverycontext.Principal{
		UserID: claims.UserID,
		Role:   entity.RolesFromStrings(claims.Roles).Highest(),
	}, true
}

// RequireRole admits callers ranked at or above required. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if !principal.Role.AtLeast(required) {
				return response.Forbidden(c, "FORBIDDEN", "Requires the "+required.String()+" role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}

	return principal.UserID, true
}
