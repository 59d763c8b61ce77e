package handler

import (
	"net/http"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func guestOwner(token string) entity.CartOwner {
	return entity.CartOwner{GuestToken: token}
}

func TestCartHandler_AddItem_GuestDefaultsToOne(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	productID := uuid.New()

	cartUC.EXPECT().AddItem(mock.Anything, guestOwner("guest-7"), productID, 1).Return(&usecase.CartOutput{}, nil)

	c, rec := newTestContext(testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/cart/items",
		body:    `{"product_id":"` + productID.String() + `"}`,
		headers: map[string]string{deliverycontext.HeaderGuestCartID: "guest-7"},
	})

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddItem_Rejections(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	productID := uuid.New()

	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"product_id":"abc","quantity":1}`, principal: shopper()})
	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cartUC.EXPECT().
		AddItem(mock.Anything, mock.Anything, productID, 5).
		Return(nil, domainerrors.ErrOutOfStock.WithDetails("only 2 left"))

	c, rec = newTestContext(testRequest{
		method:    http.MethodPost,
		target:    "/",
		body:      `{"product_id":"` + productID.String() + `","quantity":5}`,
		principal: shopper(),
	})
	require.NoError(t, h.AddItem(c))

	errInfo := decodeError(t, rec)
	assert.Equal(t, domainerrors.ErrOutOfStock.HTTPCode(), rec.Code)
	assert.Equal(t, "only 2 left", errInfo.Details)
}

func TestCartHandler_UpdateQuantity_UsesSignedInOwner(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	productID := uuid.New()

	cartUC.EXPECT().
		UpdateQuantity(mock.Anything, mock.MatchedBy(func(o entity.CartOwner) bool {
			return o.UserID != nil && *o.UserID == testUserID
		}), productID, 0).
		Return(&usecase.CartOutput{}, nil)

	c, rec := newTestContext(testRequest{
		method:    http.MethodPatch,
		target:    "/",
		body:      `{"quantity":0}`,
		principal: shopper(),
		params:    map[string]string{"productId": productID.String()},
	})

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_Quote(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	productID := uuid.New()

	cartUC.EXPECT().
		Quote(mock.Anything, []usecase.QuoteLine{{ProductID: productID, Quantity: 2}}).
		Return(&usecase.CartOutput{}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/",
		body:   `{"items":[{"product_id":"` + productID.String() + `","quantity":2}]}`,
	})
	require.NoError(t, h.Quote(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(testRequest{
		method: http.MethodPost,
		target: "/",
		body:   `{"items":[{"product_id":"` + productID.String() + `","quantity":0}]}`,
	})
	require.NoError(t, h.Quote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
