package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore keeps carts between requests. A missing cart loads as empty.
type CartStore interface {
	Load(ctx context.Context, key string) (*entity.Cart, error)
	Save(ctx context.Context, key string, cart *entity.Cart) error
	Delete(ctx context.Context, key string) error
}
