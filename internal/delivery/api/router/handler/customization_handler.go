package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type CustomizationHandlerParams struct {
	fx.In

	CustomizationUC usecase.CustomizationUsecase
}

type CustomizationHandler struct {
	customizationUC usecase.CustomizationUsecase
}

func NewCustomizationHandler(params CustomizationHandlerParams) *CustomizationHandler {
	return &CustomizationHandler{customizationUC: params.CustomizationUC}
}

type SubmitCustomizationRequest struct {
	ProductID   string `json:"product_id" validate:"max=64"`
	ProductName string `json:"product_name" validate:"max=200"`
	Image       string `json:"image" validate:"omitempty,url"`
	Text        string `json:"text" validate:"max=1000"`
	Name        string `json:"name" validate:"max=100"`
	Email       string `json:"email" validate:"max=254"`
	Phone       string `json:"phone"`
	Address     string `json:"address" validate:"max=500"`
	Street      string `json:"street" validate:"max=200"`
	Pincode     string `json:"pincode" validate:"max=10"`
}

type ReviewCustomizationRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes" validate:"max=2000"`
}

type QuoteCustomizationRequest struct {
	Price decimal.Decimal `json:"price"`
}

// Submit accepts guests; signed-in requests are linked to the account.
func (h *CustomizationHandler) Submit(c echo.Context) error {
	var req SubmitCustomizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid customization input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	var userID *uuid.UUID
	if actor, ok := actorFrom(c); ok {
		userID = &actor.UserID
	}

	sub := &entity.CustomizationSubmission{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Image:       req.Image,
		Text:        req.Text,
		Contact: entity.CustomizationContact{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
			Street:  req.Street,
			Pincode: req.Pincode,
		},
	}

	out, err := h.customizationUC.Submit(c.Request().Context(), userID, sub)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

func (h *CustomizationHandler) ListMine(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	requests, err := h.customizationUC.ListMine(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

func (h *CustomizationHandler) List(c echo.Context) error {
	requests, err := h.customizationUC.List(c.Request().Context(), entity.CustomizationStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

func (h *CustomizationHandler) Review(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "customization")
	}

	var req ReviewCustomizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	updated, err := h.customizationUC.Review(c.Request().Context(), id, entity.CustomizationStatus(req.Status), req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

func (h *CustomizationHandler) Quote(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "customization")
	}

	var req QuoteCustomizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid price")
	}

	out, err := h.customizationUC.Quote(c.Request().Context(), id, req.Price)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *CustomizationHandler) Delete(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "customization")
	}

	if err := h.customizationUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Customization request deleted")
}
