package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	ErrWishlistDuplicate    = errors.New("product already in wishlist")
)

type WishlistRepository interface {
	// ListByUser returns items newest first; withProducts preloads Product.
	ListByUser(ctx context.Context, userID uuid.UUID, withProducts bool) ([]*entity.WishlistItem, error)
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}
