package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput is a checkout. Lines empty means "check out the stored cart".
type PlaceOrderInput struct {
	Owner    entity.CartOwner
	Customer entity.CustomerInfo
	Lines    []entity.CheckoutLine
}

// OrderUsecase places and tracks orders.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	// GetOrder lets owners and staff see an order. Guest orders are visible by id.
	GetOrder(ctx context.Context, viewer *Actor, id uuid.UUID) (*entity.Order, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	TrackingQRCode(ctx context.Context, viewer *Actor, id uuid.UUID) ([]byte, error)
}
