package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	f := wishlistServiceFixtures{
		wishlistRepo: mockRepo.NewMockWishlistRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
	}
	f.service = NewWishlistService(WishlistServiceParams{WishlistRepo: f.wishlistRepo, ProductRepo: f.productRepo})

	return f
}

func TestWishlistService_Add(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		findErr error
		addErr  error
		wantErr error
	}{
		{name: "added"},
		{name: "unknown product", findErr: repository.ErrProductNotFound, wantErr: domainerrors.ErrProductNotFound},
		{name: "duplicate", addErr: repository.ErrWishlistDuplicate, wantErr: domainerrors.ErrAlreadyInWishlist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestWishlistService(t)
			ctx := context.Background()
			if tt.findErr != nil {
				f.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, tt.findErr)
			} else {
				f.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
				f.wishlistRepo.EXPECT().Add(ctx, mock.AnythingOfType("*entity.WishlistItem")).Return(tt.addErr)
			}

			item, err := f.service.Add(ctx, userID, productID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, productID, item.ProductID)
		})
	}
}

func TestWishlistService_Remove_Missing(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	f.wishlistRepo.EXPECT().Remove(ctx, userID, productID).Return(repository.ErrWishlistItemNotFound)

	assert.ErrorIs(t, f.service.Remove(ctx, userID, productID), domainerrors.ErrWishlistItemNotFound)
}

func TestWishlistService_Contains(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	f.wishlistRepo.EXPECT().Exists(ctx, userID, productID).Return(true, nil)

	ok, err := f.service.Contains(ctx, userID, productID)

	require.NoError(t, err)
	assert.True(t, ok)
}
