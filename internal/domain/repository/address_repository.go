package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrAddressNotFound = errors.New("address not found")

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	// FindByUser returns the default address first, then newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ClearDefault unsets is_default on every address of the user.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
