package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	row := fromAddressDomain(address)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = row.ID
	address.CreatedAt = row.CreatedAt
	address.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var row model.AddressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return toAddressDomain(&row), nil
}

func (repo *addressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var rows []model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.Address, 0, len(rows))
	for i := range rows {
		addresses = append(addresses, toAddressDomain(&rows[i]))
	}

	return addresses, nil
}

func (repo *addressRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AddressModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count addresses")
	}

	return count, nil
}

func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"label":      address.Label,
			"full_name":  address.Contact.FullName,
			"phone":      address.Contact.Phone,
			"address":    address.Contact.Address,
			"city":       address.Contact.City,
			"state":      address.Contact.State,
			"pincode":    address.Contact.Pincode,
			"is_default": address.IsDefault,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = now

	return nil
}

func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func (repo *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default address")
	}

	return nil
}

func toAddressDomain(m *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:     m.ID,
		UserID: m.UserID,
		Label:  m.Label,
		Contact: entity.CustomerInfo{
			FullName: m.FullName,
			Phone:    m.Phone,
			Address:  m.Address,
			City:     m.City,
			State:    m.State,
			Pincode:  m.Pincode,
		},
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromAddressDomain(a *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:        a.ID,
		UserID:    a.UserID,
		Label:     a.Label,
		FullName:  a.Contact.FullName,
		Phone:     a.Contact.Phone,
		Address:   a.Contact.Address,
		City:      a.Contact.City,
		State:     a.Contact.State,
		Pincode:   a.Contact.Pincode,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
