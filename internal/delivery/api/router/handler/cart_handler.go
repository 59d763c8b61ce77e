package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the durable cart of a user or a guest cart token.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type QuoteLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type QuoteRequest struct {
	Items []QuoteLineRequest `json:"items" validate:"dive"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context(), cartOwner(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), cartOwner(c), uuid.MustParse(req.ProductID), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity removes the line when quantity drops below one.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return response.InvalidID(c, "product")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quantity input")
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), cartOwner(c), productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return response.InvalidID(c, "product")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), cartOwner(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartUC.Clear(c.Request().Context(), cartOwner(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Cart cleared")
}

// Quote prices a cart the client keeps locally.
func (h *CartHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	lines := make([]usecase.QuoteLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.QuoteLine{ProductID: uuid.MustParse(item.ProductID), Quantity: item.Quantity})
	}

	cart, err := h.cartUC.Quote(c.Request().Context(), lines)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
