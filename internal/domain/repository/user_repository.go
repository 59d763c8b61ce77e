// Package repository defines the persistence contracts used by the usecases.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrUserEmailTaken is returned when creating a user whose email is registered.
var ErrUserEmailTaken = errors.New("user email already registered")

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Count(ctx context.Context) (int64, error)
}
