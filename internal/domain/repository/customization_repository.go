package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrCustomizationNotFound = errors.New("customization request not found")

type CustomizationFilter struct {
	UserID *uuid.UUID
	Status entity.CustomizationStatus
}

type CustomizationRepository interface {
	Create(ctx context.Context, req *entity.CustomizationRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomizationRequest, error)
	// List returns requests newest first.
	List(ctx context.Context, filter CustomizationFilter) ([]*entity.CustomizationRequest, error)
	// Update writes status, admin notes and quoted price.
	Update(ctx context.Context, req *entity.CustomizationRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
