package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID, withProducts bool) ([]*entity.WishlistItem, error) {
	q := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if withProducts {
		q = q.Preload("Product")
	}

	var rows []model.WishlistModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(rows))
	for i := range rows {
		item := &entity.WishlistItem{
			ID:        rows[i].ID,
			UserID:    rows[i].UserID,
			ProductID: rows[i].ProductID,
			CreatedAt: rows[i].CreatedAt,
		}
		if rows[i].Product != nil {
			item.Product = toProductDomain(rows[i].Product)
		}
		items = append(items, item)
	}

	return items, nil
}

func (repo *wishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	row := &model.WishlistModel{ID: item.ID, UserID: item.UserID, ProductID: item.ProductID}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWishlistDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt

	return nil
}

func (repo *wishlistRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

func (repo *wishlistRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check wishlist")
	}

	return count > 0, nil
}
