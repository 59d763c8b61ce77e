package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const categoriesCacheKey = "categories"

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        service.CatalogCache
	logger       *slog.Logger
}

type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.CatalogCache
	Logger       *slog.Logger
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// cached reads key through the catalog cache. Cache failures degrade to a
// direct load.
func cached[T any](ctx context.Context, srv *catalogService, key string, load func() (T, error)) (T, error) {
	var value T
	hit, err := srv.cache.Get(ctx, key, &value)
	if err != nil {
		srv.log(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}

	if err := srv.cache.Set(ctx, key, value); err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

func productListKey(filter entity.ProductFilter) string {
	var b strings.Builder
	b.WriteString("products:c=")
	b.WriteString(strings.ToLower(strings.TrimSpace(filter.Category)))
	b.WriteString(":q=")
	b.WriteString(strings.ToLower(strings.TrimSpace(filter.Search)))
	b.WriteString(":f=")
	b.WriteString(boolFilterKey(filter.Featured))
	b.WriteString(":t=")
	b.WriteString(boolFilterKey(filter.Trending))
	b.WriteString(":l=")
	b.WriteString(strconv.Itoa(filter.Limit))
	b.WriteString(":o=")
	b.WriteString(strconv.Itoa(filter.Offset))

	return b.String()
}

func boolFilterKey(v *bool) string {
	if v == nil {
		return "*"
	}

	return strconv.FormatBool(*v)
}

// NewProductView attaches card and gallery image sets.
func NewProductView(p *entity.Product) *usecase.ProductView {
	view := &usecase.ProductView{Product: p}
	if primary := p.PrimaryImage(); primary != "" {
		card := entity.NewImageSet(primary, entity.ImageVariantCard)
		view.CardImage = &card
	}
	for _, img := range p.Images {
		view.GalleryImages = append(view.GalleryImages, entity.NewImageSet(img, entity.ImageVariantGallery))
	}

	return view
}

func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*usecase.ProductView, error) {
	filter.IncludeInactive = false

	products, err := cached(ctx, srv, productListKey(filter), func() ([]*entity.Product, error) {
		return srv.productRepo.List(ctx, filter)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	views := make([]*usecase.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}

	return views, nil
}

// GetProduct hides inactive products from the storefront.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductView, error) {
	product, err := cached(ctx, srv, "product:"+id.String(), func() (*entity.Product, error) {
		return srv.productRepo.FindByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return NewProductView(product), nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := cached(ctx, srv, categoriesCacheKey, func() ([]*entity.Category, error) {
		categories, err := srv.categoryRepo.List(ctx)
		if err != nil {
			return nil, err
		}

		counts, err := srv.productRepo.CountByCategoryID(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			c.ProductCount = counts[c.ID]
		}

		return categories, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := cached(ctx, srv, "category:"+slug, func() (*entity.Category, error) {
		return srv.categoryRepo.FindBySlug(ctx, slug)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	return category, nil
}

func (srv *catalogService) AdminListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	filter.IncludeInactive = true

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) invalidate(ctx context.Context) {
	if err := srv.cache.InvalidateAll(ctx); err != nil {
		srv.log(ctx).Error("Failed to invalidate catalog cache", slog.Any("error", err))
	}
}

// applyProductInput copies the set fields of input onto p and resolves the
// category name from CategoryID.
func (srv *catalogService) applyProductInput(ctx context.Context, p *entity.Product, input *usecase.ProductInput) error {
	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		op := *input.OriginalPrice
		p.OriginalPrice = &op
	}
	if input.Discount != nil {
		d := *input.Discount
		p.Discount = &d
	}
	if input.Images != nil {
		p.Images = append([]string{}, input.Images...)
	}
	if input.Rating != nil {
		p.Rating = *input.Rating
	}
	if input.Reviews != nil {
		p.Reviews = *input.Reviews
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.Trending != nil {
		p.Trending = *input.Trending
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if input.CategoryID != nil {
		if *input.CategoryID == uuid.Nil {
			p.CategoryID = nil
			p.Category = ""
		} else {
			category, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID)
			if err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrCategoryNotFound
				}

				return errors.Wrap(err, "failed to load category")
			}
			id := category.ID
			p.CategoryID = &id
			p.Category = category.Name
		}
	}

	return validateProduct(p)
}

func validateProduct(p *entity.Product) error {
	switch {
	case p.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case p.Price.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case p.OriginalPrice != nil && p.OriginalPrice.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("original price must not be negative")
	case p.Discount != nil && (*p.Discount < 0 || *p.Discount > 100):
		return domainerrors.ErrValidationFailed.WithDetails("discount must be between 0 and 100")
	case p.Stock < 0:
		return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	case p.Rating < 0 || p.Rating > 5:
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 0 and 5")
	}

	return nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Price:    decimal.Zero,
		Images:   []string{},
		IsActive: true,
	}
	if err := srv.applyProductInput(ctx, product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.invalidate(ctx)
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if err := srv.applyProductInput(ctx, product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.invalidate(ctx)

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}
	srv.invalidate(ctx)
	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func newCategory(input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	slug := entity.Slugify(name)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name must contain letters or digits")
	}

	return &entity.Category{Name: name, Slug: slug, Image: strings.TrimSpace(input.Image)}, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := newCategory(input)
	if err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategorySlugTaken) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.invalidate(ctx)

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	existing, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	updated, err := newCategory(input)
	if err != nil {
		return nil, err
	}
	existing.Name = updated.Name
	existing.Slug = updated.Slug
	existing.Image = updated.Image

	if err := srv.categoryRepo.Update(ctx, existing); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategorySlugTaken):
			return nil, domainerrors.ErrCategoryAlreadyExists
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}
	srv.invalidate(ctx)

	return existing, nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}
	srv.invalidate(ctx)

	return nil
}
