package postgres

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Classic Tee", "T-Shirts", 499, 20)
	hoodie := seedProduct(t, db, "Zip Hoodie", "Hoodies", 1299, 5)
	hidden := seedProduct(t, db, "Old Cap", "Caps", 199, 3)
	hidden.IsActive = false
	require.NoError(t, repo.Update(ctx, hidden))

	all, err := repo.List(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	withInactive, err := repo.List(ctx, entity.ProductFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, withInactive, 3)

	byCategory, err := repo.List(ctx, entity.ProductFilter{Category: "hood"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, hoodie.ID, byCategory[0].ID)

	bySearch, err := repo.List(ctx, entity.ProductFilter{Search: "TEE"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Classic Tee", bySearch[0].Name)

	wildcard, err := repo.List(ctx, entity.ProductFilter{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, wildcard)
}

func TestProductRepository_DecrementStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	p := seedProduct(t, db, "Mug", "Home", 249, 3)

	require.NoError(t, repo.DecrementStock(ctx, p.ID, 2))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	assert.ErrorIs(t, repo.DecrementStock(ctx, p.ID, 2), repository.ErrInsufficientStock)
	assert.ErrorIs(t, repo.DecrementStock(ctx, uuid.New(), 1), repository.ErrProductNotFound)

	got, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock, "failed decrement leaves stock untouched")
}

func TestProductRepository_DecrementStockNeverOversells(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	p := seedProduct(t, db, "Limited", "Drops", 999, 5)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.DecrementStock(ctx, p.ID, 1); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, successes)
	assert.Equal(t, 0, got.Stock)
}

func TestCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	products := NewProductRepository(db)
	ctx := context.Background()

	tees := &entity.Category{Name: "T-Shirts", Slug: "t-shirts"}
	require.NoError(t, repo.Create(ctx, tees))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Category{Name: "Tees", Slug: "t-shirts"}), repository.ErrCategorySlugTaken)

	p := seedProduct(t, db, "Tee", "T-Shirts", 499, 10)
	p.CategoryID = &tees.ID
	require.NoError(t, products.Update(ctx, p))

	counts, err := products.CountByCategoryID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[tees.ID])

	bySlug, err := repo.FindBySlug(ctx, "t-shirts")
	require.NoError(t, err)
	assert.Equal(t, tees.ID, bySlug.ID)

	require.NoError(t, repo.Delete(ctx, tees.ID))
	_, err = repo.FindByID(ctx, tees.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	orphan, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.CategoryID)
}

func TestWishlistRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewWishlistRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "wish@example.com")
	p := seedProduct(t, db, "Tote", "Bags", 350, 8)

	require.NoError(t, repo.Add(ctx, &entity.WishlistItem{UserID: user.ID, ProductID: p.ID}))
	assert.ErrorIs(t, repo.Add(ctx, &entity.WishlistItem{UserID: user.ID, ProductID: p.ID}), repository.ErrWishlistDuplicate)

	exists, err := repo.Exists(ctx, user.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	items, err := repo.ListByUser(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Tote", items[0].Product.Name)

	require.NoError(t, repo.Remove(ctx, user.ID, p.ID))
	assert.ErrorIs(t, repo.Remove(ctx, user.ID, p.ID), repository.ErrWishlistItemNotFound)
}
