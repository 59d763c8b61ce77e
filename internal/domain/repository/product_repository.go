package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type ProductRepository interface {
	// List returns products newest first. Inactive products are excluded unless
	// filter.IncludeInactive is set.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DecrementStock atomically removes qty units, failing with
	// ErrInsufficientStock rather than going negative.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
	// CountByCategoryID counts active products per category.
	CountByCategoryID(ctx context.Context) (map[uuid.UUID]int, error)
}
