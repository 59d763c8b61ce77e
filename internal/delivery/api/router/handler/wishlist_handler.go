package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
}

type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
}

func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{wishlistUC: params.WishlistUC}
}

type AddWishlistRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// List embeds the products when ?with_products=true.
func (h *WishlistHandler) List(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	withProducts := false
	if v := boolQuery(c, "with_products"); v != nil {
		withProducts = *v
	}

	items, err := h.wishlistUC.List(c.Request().Context(), actor.UserID, withProducts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *WishlistHandler) Add(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.wishlistUC.Add(c.Request().Context(), actor.UserID, uuid.MustParse(req.ProductID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return response.InvalidID(c, "product")
	}

	if err := h.wishlistUC.Remove(c.Request().Context(), actor.UserID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Removed from wishlist")
}

func (h *WishlistHandler) Contains(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return response.InvalidID(c, "product")
	}

	found, err := h.wishlistUC.Contains(c.Request().Context(), actor.UserID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"in_wishlist": found})
}
