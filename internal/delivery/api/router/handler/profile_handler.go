package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the account profile and the saved address book.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type AddressRequest struct {
	Label     string          `json:"label" validate:"max=50"`
	Contact   CustomerRequest `json:"contact"`
	IsDefault bool            `json:"is_default"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Label:     r.Label,
		Contact:   r.Contact.toEntity(),
		IsDefault: r.IsDefault,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), actor.UserID, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

func (h *ProfileHandler) ListAddresses(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	addresses, err := h.profileUC.ListAddresses(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

func (h *ProfileHandler) CreateAddress(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	address, err := h.profileUC.CreateAddress(c.Request().Context(), actor.UserID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

func (h *ProfileHandler) UpdateAddress(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	addressID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "address")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	address, err := h.profileUC.UpdateAddress(c.Request().Context(), actor.UserID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

func (h *ProfileHandler) DeleteAddress(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	addressID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "address")
	}

	if err := h.profileUC.DeleteAddress(c.Request().Context(), actor.UserID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Address deleted")
}

func (h *ProfileHandler) SetDefaultAddress(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	addressID, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "address")
	}

	if err := h.profileUC.SetDefaultAddress(c.Request().Context(), actor.UserID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Default address updated")
}
