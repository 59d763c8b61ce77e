package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxProductPageSize = 200

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	q := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if !filter.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		q = q.Where("LOWER(category) LIKE ? ESCAPE '\\'", likePattern(c))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := likePattern(s)
		q = q.Where("(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\')", pattern, pattern)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Trending != nil {
		q = q.Where("trending = ?", *filter.Trending)
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxProductPageSize {
		limit = maxProductPageSize
	}
	q = q.Order("created_at DESC").Limit(limit)
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var rows []model.ProductModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(rows), nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&row), nil
}

// FindByIDs silently skips ids that do not exist.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return toProductsDomain(rows), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	row := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a catalog constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = row.ID
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes every editable column, including zero values.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	row := fromProductDomain(product)
	row.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "original_price", "discount", "images", "category",
			"category_id", "rating", "reviews", "stock", "featured", "trending", "is_active", "updated_at").
		Updates(row)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a catalog constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock relies on the guarded UPDATE so concurrent checkouts cannot oversell.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	if qty < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, qty).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", qty),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var exists int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return errors.Wrap(err, "failed to check product")
	}
	if exists == 0 {
		return repository.ErrProductNotFound
	}

	return repository.ErrInsufficientStock
}

func (repo *productRepository) CountByCategoryID(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []struct {
		CategoryID uuid.UUID
		Count      int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_active = ? AND category_id IS NOT NULL", true).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}

	return counts, nil
}

func likePattern(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)

	return "%" + s + "%"
}

func toProductsDomain(rows []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	p := &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Discount:    m.Discount,
		Images:      append([]string{}, m.Images...),
		Category:    m.Category,
		CategoryID:  m.CategoryID,
		Rating:      m.Rating,
		Reviews:     m.Reviews,
		Stock:       m.Stock,
		Featured:    m.Featured,
		Trending:    m.Trending,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.OriginalPrice.Valid {
		op := m.OriginalPrice.Decimal
		p.OriginalPrice = &op
	}

	return p
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	m := &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Discount:    p.Discount,
		Images:      datatypes.JSONSlice[string](append([]string{}, p.Images...)),
		Category:    p.Category,
		CategoryID:  p.CategoryID,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Stock:       p.Stock,
		Featured:    p.Featured,
		Trending:    p.Trending,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.OriginalPrice != nil {
		m.OriginalPrice = decimal.NewNullDecimal(*p.OriginalPrice)
	}

	return m
}
