package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
}

func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
	}
}

func (srv *wishlistService) List(ctx context.Context, userID uuid.UUID, withProducts bool) ([]*entity.WishlistItem, error) {
	items, err := srv.wishlistRepo.ListByUser(ctx, userID, withProducts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return items, nil
}

func (srv *wishlistService) Add(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := srv.wishlistRepo.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrWishlistDuplicate) {
			return nil, domainerrors.ErrAlreadyInWishlist
		}

		return nil, errors.Wrap(err, "failed to add to wishlist")
	}

	return item, nil
}

func (srv *wishlistService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrWishlistItemNotFound
		}

		return errors.Wrap(err, "failed to remove from wishlist")
	}

	return nil
}

func (srv *wishlistService) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	ok, err := srv.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check wishlist")
	}

	return ok, nil
}
