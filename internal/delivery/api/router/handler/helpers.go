// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxGuestTokenLength = 64

// actorFrom reads the principal set by the auth middleware.
func actorFrom(c echo.Context) (usecase.Actor, bool) {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.Actor{UserID: p.UserID, Role: p.Role}, true
}

// optionalActor is nil for guests.
func optionalActor(c echo.Context) *usecase.Actor {
	if a, ok := actorFrom(c); ok {
		return &a
	}

	return nil
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

// uuidParam parses the named path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// cartOwner resolves the signed-in user, falling back to the guest cart header.
func cartOwner(c echo.Context) entity.CartOwner {
	if a, ok := actorFrom(c); ok {
		id := a.UserID

		return entity.CartOwner{UserID: &id}
	}

	return entity.CartOwner{GuestToken: guestToken(c)}
}

func guestToken(c echo.Context) string {
	token := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderGuestCartID))
	if len(token) > maxGuestTokenLength {
		return ""
	}

	return token
}

// boolQuery returns nil when the parameter is absent or unparsable.
func boolQuery(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &v
}

func intQuery(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}

	return v
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
