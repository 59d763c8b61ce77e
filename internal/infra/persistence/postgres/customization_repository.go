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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type customizationRepository struct {
	db *gorm.DB
}

func NewCustomizationRepository(db *gorm.DB) repository.CustomizationRepository {
	return &customizationRepository{db: db}
}

func (repo *customizationRepository) Create(ctx context.Context, req *entity.CustomizationRequest) error {
	row := fromCustomizationDomain(req)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order already has a customization request")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customization request")
	}

	req.ID = row.ID
	req.CreatedAt = row.CreatedAt
	req.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *customizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomizationRequest, error) {
	var row model.CustomizationRequestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find customization request")
	}

	return toCustomizationDomain(&row), nil
}

func (repo *customizationRepository) List(ctx context.Context, filter repository.CustomizationFilter) ([]*entity.CustomizationRequest, error) {
	q := repo.db.WithContext(ctx).Model(&model.CustomizationRequestModel{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var rows []model.CustomizationRequestModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customization requests")
	}

	reqs := make([]*entity.CustomizationRequest, 0, len(rows))
	for i := range rows {
		reqs = append(reqs, toCustomizationDomain(&rows[i]))
	}

	return reqs, nil
}

func (repo *customizationRepository) Update(ctx context.Context, req *entity.CustomizationRequest) error {
	quoted := decimal.NullDecimal{}
	if req.QuotedPrice != nil {
		quoted = decimal.NewNullDecimal(*req.QuotedPrice)
	}

	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CustomizationRequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"status":       string(req.Status),
			"admin_notes":  req.AdminNotes,
			"quoted_price": quoted,
			"updated_at":   now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customization request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomizationNotFound
	}

	req.UpdatedAt = now

	return nil
}

func (repo *customizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CustomizationRequestModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customization request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomizationNotFound
	}

	return nil
}

func toCustomizationDomain(m *model.CustomizationRequestModel) *entity.CustomizationRequest {
	req := &entity.CustomizationRequest{
		ID:          m.ID,
		OrderID:     m.OrderID,
		OrderNumber: m.OrderNumber,
		UserID:      m.UserID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Image:       m.Image,
		Text:        m.Text,
		Contact: entity.CustomizationContact{
			Name:    m.ContactName,
			Email:   m.ContactEmail,
			Phone:   m.ContactPhone,
			Address: m.ContactAddress,
			Street:  m.ContactStreet,
			Pincode: m.ContactPincode,
		},
		Status:     entity.CustomizationStatus(m.Status),
		AdminNotes: m.AdminNotes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.QuotedPrice.Valid {
		price := m.QuotedPrice.Decimal
		req.QuotedPrice = &price
	}

	return req
}

func fromCustomizationDomain(r *entity.CustomizationRequest) *model.CustomizationRequestModel {
	m := &model.CustomizationRequestModel{
		ID:             r.ID,
		OrderID:        r.OrderID,
		OrderNumber:    r.OrderNumber,
		UserID:         r.UserID,
		ProductID:      r.ProductID,
		ProductName:    r.ProductName,
		Image:          r.Image,
		Text:           r.Text,
		ContactName:    r.Contact.Name,
		ContactEmail:   r.Contact.Email,
		ContactPhone:   r.Contact.Phone,
		ContactAddress: r.Contact.Address,
		ContactStreet:  r.Contact.Street,
		ContactPincode: r.Contact.Pincode,
		Status:         string(r.Status),
		AdminNotes:     r.AdminNotes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.QuotedPrice != nil {
		m.QuotedPrice = decimal.NewNullDecimal(*r.QuotedPrice)
	}

	return m
}
