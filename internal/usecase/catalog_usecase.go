package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView is a product with its images prepared for display.
type ProductView struct {
	*entity.Product
	CardImage     *entity.ImageSet  `json:"card_image,omitempty"`
	GalleryImages []entity.ImageSet `json:"gallery_images,omitempty"`
}

// ProductInput carries an admin create or update. Nil pointers on update leave
// the field unchanged.
type ProductInput struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Discount      *int
	Images        []string
	CategoryID    *uuid.UUID
	Rating        *float64
	Reviews       *int
	Stock         *int
	Featured      *bool
	Trending      *bool
	IsActive      *bool
}

type CategoryInput struct {
	Name  string
	Image string
}

// CatalogUsecase serves the storefront catalog and its admin maintenance.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	AdminListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
