package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

type CustomerRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

func (r CustomerRequest) toEntity() entity.CustomerInfo {
	return entity.CustomerInfo{
		FullName: r.FullName,
		Phone:    r.Phone,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		Pincode:  r.Pincode,
	}
}

type OrderLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// PlaceOrderRequest checks out the stored cart when Items is empty.
type PlaceOrderRequest struct {
	Customer CustomerRequest    `json:"customer"`
	Items    []OrderLineRequest `json:"items" validate:"dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	lines := make([]entity.CheckoutLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, entity.CheckoutLine{ProductID: uuid.MustParse(item.ProductID), Quantity: item.Quantity})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		Owner:    cartOwner(c),
		Customer: req.Customer.toEntity(),
		Lines:    lines,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "order")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), optionalActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// TrackingQRCode returns the PNG directly rather than the JSON envelope.
func (h *OrderHandler) TrackingQRCode(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "order")
	}

	png, err := h.orderUC.TrackingQRCode(c.Request().Context(), optionalActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListOrders is the staff queue, optionally narrowed by ?status=.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context(), entity.OrderStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "order")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
