package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

type DashboardServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
}

func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		now:         time.Now,
	}
}

// GetStats loads orders, products and the user count concurrently.
func (srv *dashboardService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	var (
		orders     []*entity.Order
		products   []*entity.Product
		totalUsers int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = srv.orderRepo.List(gctx, repository.OrderFilter{})

		return errors.Wrap(err, "failed to list orders")
	})
	g.Go(func() error {
		var err error
		products, err = srv.productRepo.List(gctx, entity.ProductFilter{IncludeInactive: true})

		return errors.Wrap(err, "failed to list products")
	})
	g.Go(func() error {
		var err error
		totalUsers, err = srv.userRepo.Count(gctx)

		return errors.Wrap(err, "failed to count users")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entity.BuildDashboard(orders, products, totalUsers, srv.now()), nil
}
