package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

type WishlistUsecase interface {
	List(ctx context.Context, userID uuid.UUID, withProducts bool) ([]*entity.WishlistItem, error)
	Add(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}
