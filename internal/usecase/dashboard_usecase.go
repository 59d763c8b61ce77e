package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
}
