package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrDeviceNotFound = errors.New("device not found")

type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	// FindDevicesByUser includes inactive devices.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)
	UpdateDevice(ctx context.Context, device *entity.UserDevice) error
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
	// DeactivateByTokens disables every device holding one of tokens and
	// returns how many rows changed.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)
}
