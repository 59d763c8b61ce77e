package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing.
type OrderFilter struct {
	UserID *uuid.UUID
	Status entity.OrderStatus
	Since  time.Time
	Limit  int
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns orders newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	// UpdateStatus sets status and updated_at. Zero affected rows yields ErrOrderNotFound.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	// UpdatePricing rewrites items and total, used when a customization is quoted.
	UpdatePricing(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}
