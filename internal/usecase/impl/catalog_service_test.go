package impl

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	cache        *mockSvc.MockCatalogCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	f := catalogServiceFixtures{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		cache:        mockSvc.NewMockCatalogCache(t),
	}
	f.service = NewCatalogService(CatalogServiceParams{
		ProductRepo:  f.productRepo,
		CategoryRepo: f.categoryRepo,
		Cache:        f.cache,
		Logger:       newTestLogger(),
	})

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func TestCatalogService_ListProducts_CacheMiss(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Mug", Images: []string{"https://cdn.example.com/mug.jpg"}, IsActive: true},
	}

	f.cache.EXPECT().Get(ctx, mock.AnythingOfType("string"), mock.Anything).Return(false, nil)
	f.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter entity.ProductFilter) bool { return !filter.IncludeInactive })).
		Return(products, nil)
	f.cache.EXPECT().Set(ctx, mock.AnythingOfType("string"), products).Return(nil)

	views, err := f.service.ListProducts(ctx, entity.ProductFilter{IncludeInactive: true})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Mug", views[0].Name)
	require.NotNil(t, views[0].CardImage)
	assert.Len(t, views[0].GalleryImages, 1)
}

func TestCatalogService_ListProducts_CacheHit(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	cachedProducts := []*entity.Product{{ID: uuid.New(), Name: "Cached", IsActive: true}}

	f.cache.EXPECT().Get(ctx, mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, _ string, dst any) {
			*(dst.(*[]*entity.Product)) = cachedProducts
		}).
		Return(true, nil)

	views, err := f.service.ListProducts(ctx, entity.ProductFilter{})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Cached", views[0].Name)
	assert.Nil(t, views[0].CardImage)
}

func TestCatalogService_ListProducts_CacheErrorFallsBack(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	f.productRepo.EXPECT().List(ctx, mock.Anything).Return([]*entity.Product{}, nil)
	f.cache.EXPECT().Set(ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	views, err := f.service.ListProducts(ctx, entity.ProductFilter{})

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestProductListKey_DistinguishesFilters(t *testing.T) {
	featured := true
	a := productListKey(entity.ProductFilter{Category: "Mugs"})
	b := productListKey(entity.ProductFilter{Category: " mugs "})
	c := productListKey(entity.ProductFilter{Category: "mugs", Featured: &featured})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCatalogService_GetProduct_InactiveHidden(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	f.cache.EXPECT().Get(ctx, "product:"+id.String(), mock.Anything).Return(false, nil)
	f.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id, IsActive: false}, nil)
	f.cache.EXPECT().Set(ctx, "product:"+id.String(), mock.Anything).Return(nil)

	_, err := f.service.GetProduct(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	f.cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(false, nil)
	f.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := f.service.GetProduct(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListCategories_FillsCounts(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	mugs := &entity.Category{ID: uuid.New(), Name: "Mugs", Slug: "mugs"}
	frames := &entity.Category{ID: uuid.New(), Name: "Frames", Slug: "frames"}

	f.cache.EXPECT().Get(ctx, categoriesCacheKey, mock.Anything).Return(false, nil)
	f.categoryRepo.EXPECT().List(ctx).Return([]*entity.Category{frames, mugs}, nil)
	f.productRepo.EXPECT().CountByCategoryID(ctx).Return(map[uuid.UUID]int{mugs.ID: 4}, nil)
	f.cache.EXPECT().Set(ctx, categoriesCacheKey, mock.Anything).Return(nil)

	categories, err := f.service.ListCategories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 0, categories[0].ProductCount)
	assert.Equal(t, 4, categories[1].ProductCount)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Mugs"}

	f.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	f.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Photo Mug" && p.Category == "Mugs" && p.IsActive
		})).
		Return(nil)
	f.cache.EXPECT().InvalidateAll(ctx).Return(nil)

	product, err := f.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:       ptr(" Photo Mug "),
		Price:      ptr(decimal.NewFromInt(499)),
		CategoryID: &category.ID,
		Stock:      ptr(20),
	})

	require.NoError(t, err)
	assert.Equal(t, "Photo Mug", product.Name)
	require.NotNil(t, product.CategoryID)
	assert.Equal(t, category.ID, *product.CategoryID)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ProductInput
	}{
		{name: "missing name", input: &usecase.ProductInput{Price: ptr(decimal.NewFromInt(1))}},
		{name: "negative price", input: &usecase.ProductInput{Name: ptr("x"), Price: ptr(decimal.NewFromInt(-1))}},
		{name: "discount over 100", input: &usecase.ProductInput{Name: ptr("x"), Discount: ptr(101)}},
		{name: "negative stock", input: &usecase.ProductInput{Name: ptr("x"), Stock: ptr(-1)}},
		{name: "rating over 5", input: &usecase.ProductInput{Name: ptr("x"), Rating: ptr(5.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCatalogService(t)

			_, err := f.service.CreateProduct(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_UpdateProduct_ClearsCategory(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	existing := &entity.Product{ID: uuid.New(), Name: "Frame", Category: "Frames", CategoryID: &categoryID, IsActive: true}

	f.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.productRepo.EXPECT().Update(ctx, existing).Return(nil)
	f.cache.EXPECT().InvalidateAll(ctx).Return(nil)

	nilID := uuid.Nil
	product, err := f.service.UpdateProduct(ctx, existing.ID, &usecase.ProductInput{CategoryID: &nilID})

	require.NoError(t, err)
	assert.Nil(t, product.CategoryID)
	assert.Empty(t, product.Category)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	f.productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

	assert.ErrorIs(t, f.service.DeleteProduct(ctx, id), domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	t.Run("slugifies the name", func(t *testing.T) {
		f := createTestCatalogService(t)
		ctx := context.Background()

		f.categoryRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Slug == "photo-frames" })).
			Return(nil)
		f.cache.EXPECT().InvalidateAll(ctx).Return(nil)

		category, err := f.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "Photo Frames"})

		require.NoError(t, err)
		assert.Equal(t, "Photo Frames", category.Name)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		f := createTestCatalogService(t)
		ctx := context.Background()

		f.categoryRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrCategorySlugTaken)

		_, err := f.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "Mugs"})

		assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	})

	t.Run("name without letters", func(t *testing.T) {
		f := createTestCatalogService(t)

		_, err := f.service.CreateCategory(context.Background(), &usecase.CategoryInput{Name: "!!!"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
