package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const customerJSON = `{"full_name":"Asha Rao","phone":"9876543210","address":"12 MG Road","city":"Pune","state":"MH","pincode":"411001"}`

func TestOrderHandler_PlaceOrder_Guest(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	productID := uuid.New()

	orderUC.EXPECT().
		PlaceOrder(mock.Anything, &usecase.PlaceOrderInput{
			Owner: entity.CartOwner{},
			Customer: entity.CustomerInfo{
				FullName: "Asha Rao",
				Phone:    "9876543210",
				Address:  "12 MG Road",
				City:     "Pune",
				State:    "MH",
				Pincode:  "411001",
			},
			Lines: []entity.CheckoutLine{{ProductID: productID, Quantity: 2}},
		}).
		Return(&entity.Order{OrderNumber: "ORD-1718000000000", Status: entity.OrderStatusPlaced}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/v1/orders",
		body:   `{"customer":` + customerJSON + `,"items":[{"product_id":"` + productID.String() + `","quantity":2}]}`,
	})

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Order
	decodeData(t, rec, &got)
	assert.Equal(t, "ORD-1718000000000", got.OrderNumber)
}

func TestOrderHandler_PlaceOrder_InvalidCustomer(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCustomerInfo.WithDetails("phone: Enter valid 10-digit phone number"))

	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"customer":{}}`, principal: shopper()})

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "phone")
}

func TestOrderHandler_GetOrder_PassesViewer(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	orderID := uuid.New()

	orderUC.EXPECT().
		GetOrder(mock.Anything, (*usecase.Actor)(nil), orderID).
		Return(&entity.Order{ID: orderID}, nil)
	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/", params: map[string]string{"id": orderID.String()}})
	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	orderUC.EXPECT().
		GetOrder(mock.Anything, &usecase.Actor{UserID: testUserID, Role: entity.RoleModerator}, orderID).
		Return(nil, domainerrors.ErrOrderNotFound)
	c, rec = newTestContext(testRequest{method: http.MethodGet, target: "/", principal: staff(entity.RoleModerator), params: map[string]string{"id": orderID.String()}})
	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_TrackingQRCode_ServesPNG(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	orderID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")

	orderUC.EXPECT().TrackingQRCode(mock.Anything, mock.Anything, orderID).Return(png, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/", principal: shopper(), params: map[string]string{"id": orderID.String()}})
	require.NoError(t, h.TrackingQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_StaffQueue(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	orderID := uuid.New()

	orderUC.EXPECT().ListOrders(mock.Anything, entity.OrderStatusPacked).Return([]*entity.Order{}, nil)
	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/orders?status=packed", principal: staff(entity.RoleModerator)})
	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	orderUC.EXPECT().
		UpdateStatus(mock.Anything, orderID, entity.OrderStatus("lost")).
		Return(nil, domainerrors.ErrInvalidOrderStatus)
	c, rec = newTestContext(testRequest{
		method:    http.MethodPatch,
		target:    "/",
		body:      `{"status":"lost"}`,
		principal: staff(entity.RoleModerator),
		params:    map[string]string{"id": orderID.String()},
	})
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.HTTPCode(), rec.Code)
}
