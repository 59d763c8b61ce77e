package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
}

// RoleHandler manages back-office staff.
type RoleHandler struct {
	roleUC usecase.RoleUsecase
}

func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{roleUC: params.RoleUC}
}

type AssignRoleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// CheckRole answers ?role=<name> for the caller from the stored role rows,
// so a role granted after sign-in is visible before the token refreshes.
func (h *RoleHandler) CheckRole(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	ctx := c.Request().Context()
	role, err := h.roleUC.GetRole(ctx, actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := map[string]any{"role": role, "is_staff": role.IsStaff()}
	if raw := c.QueryParam("role"); raw != "" {
		required, ok := entity.ParseRole(raw)
		if !ok {
			return response.BadRequest(c, "INVALID_ROLE", "Unknown role")
		}
		allowed, err := h.roleUC.CheckRole(ctx, actor.UserID, required)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		result["allowed"] = allowed
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *RoleHandler) ListStaff(c echo.Context) error {
	staff, err := h.roleUC.ListStaff(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff)
}

func (h *RoleHandler) AssignRole(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	member, err := h.roleUC.AssignRoleByEmail(c.Request().Context(), actor, req.Email, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member)
}

func (h *RoleHandler) RevokeRole(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return response.InvalidID(c, "user")
	}

	if err := h.roleUC.RevokeRole(c.Request().Context(), actor, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Role revoked")
}
