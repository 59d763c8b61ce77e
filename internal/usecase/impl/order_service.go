package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartStore   service.CartStore
	feed        service.ChangeFeed
	publisher   service.EventPublisher
	qrCode      service.QRCodeService
	metrics     *metrics.Metrics
	policy      entity.DeliveryPolicy
	maxQuantity int
	logger      *slog.Logger
	now         func() time.Time
}

type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	CartStore   service.CartStore
	ChangeFeed  service.ChangeFeed
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Metrics     *metrics.Metrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		cartStore:   params.CartStore,
		feed:        params.ChangeFeed,
		publisher:   params.Publisher,
		qrCode:      params.QRCode,
		metrics:     params.Metrics,
		policy:      deliveryPolicy(params.Config),
		maxQuantity: params.Config.Checkout.MaxQuantityPerItem,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the lines against the live catalog, takes the stock and
// records the order in one transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	customer := input.Customer.Normalize()
	if problems := customer.Validate(); len(problems) > 0 {
		return nil, domainerrors.ErrInvalidCustomerInfo.WithDetails(describeProblems(problems))
	}

	lines := input.Lines
	if len(lines) == 0 {
		var err error
		if lines, err = srv.cartLines(ctx, input.Owner); err != nil {
			return nil, err
		}
	}
	lines = mergeLines(lines)

	items, err := srv.priceLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	cart := &entity.Cart{}
	for _, item := range items {
		cart.Add(entity.CartProduct{ID: item.ProductID, Price: item.Price}, item.Quantity)
	}

	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: entity.NewOrderNumber(entity.OrderNumberPrefix, now),
		UserID:      input.Owner.UserID,
		Items:       items,
		Total:       cart.Totals(srv.policy).GrandTotal,
		Status:      entity.OrderStatusPlaced,
		Customer:    customer,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		for _, line := range lines {
			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrOutOfStock.WithDetails(line.ProductID.String())
				}

				return errors.Wrap(err, "failed to reserve stock")
			}
		}

		return errors.Wrap(repoFactory.NewOrderRepository().Create(ctx, order), "failed to create order")
	})
	if err != nil {
		return nil, err
	}

	if key := input.Owner.Key(); key != "" {
		if err := srv.cartStore.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to clear cart after checkout", slog.Any("error", err))
		}
	}

	srv.metrics.OrderPlaced("standard")
	srv.announce(ctx, entity.ChangeInsert, order, nil)
	srv.log(ctx).Info("Order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.Int("lines", len(order.Items)),
		slog.String("total", order.Total.String()),
	)

	return order, nil
}

func (srv *orderService) cartLines(ctx context.Context, owner entity.CartOwner) ([]entity.CheckoutLine, error) {
	key := owner.Key()
	if key == "" {
		return nil, domainerrors.ErrCartEmpty
	}

	cart, err := srv.cartStore.Load(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	lines := make([]entity.CheckoutLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		id, err := uuid.Parse(item.Product.ID)
		if err != nil {
			continue
		}
		lines = append(lines, entity.CheckoutLine{ProductID: id, Quantity: item.Quantity})
	}
	if len(lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	return lines, nil
}

// mergeLines folds repeated products into one line, keeping first-seen order.
func mergeLines(lines []entity.CheckoutLine) []entity.CheckoutLine {
	merged := make([]entity.CheckoutLine, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	return merged
}

func (srv *orderService) priceLines(ctx context.Context, lines []entity.CheckoutLine) ([]entity.OrderItem, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 || line.Quantity > srv.maxQuantity {
			return nil, domainerrors.ErrInvalidQuantity.WithDetails(line.ProductID.String())
		}
		ids = append(ids, line.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails(line.ProductID.String())
		}
		if !product.IsActive {
			return nil, domainerrors.ErrProductInactive.WithDetails(product.Name)
		}
		if !product.CanFulfil(line.Quantity) {
			return nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
		}

		items = append(items, entity.OrderItem{
			ProductID:    product.ID.String(),
			ProductName:  product.Name,
			ProductImage: product.PrimaryImage(),
			Quantity:     line.Quantity,
			Price:        product.Price,
		})
	}

	return items, nil
}

// announce pushes the change to live streams and the notifier. Failures are
// logged; the order itself is already committed.
func (srv *orderService) announce(ctx context.Context, changeType entity.ChangeType, order, prev *entity.Order) {
	now := srv.now()

	change, err := entity.NewOrderChangeEvent(changeType, order, prev, now)
	if err != nil {
		srv.log(ctx).Error("Failed to build order change event", slog.Any("error", err))
	} else if err := srv.feed.Publish(ctx, change); err != nil {
		srv.log(ctx).Error("Failed to publish order change", slog.Any("error", err))
	}

	kind := entity.OrderEventPlaced
	oldStatus := entity.OrderStatus("")
	if prev != nil {
		kind = entity.OrderEventStatusChanged
		oldStatus = prev.Status
	}
	event := entity.NewOrderEvent(kind, order, oldStatus, now)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err),
		)
	}
}

func (srv *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// GetOrder hides other users' orders behind not-found. Guest orders are
// readable by anyone holding the id.
func (srv *orderService) GetOrder(ctx context.Context, viewer *usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID == nil {
		return order, nil
	}
	if viewer != nil && (viewer.IsStaff() || order.IsOwnedBy(viewer.UserID)) {
		return order, nil
	}

	return nil, domainerrors.ErrOrderNotFound
}

func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{UserID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus allows any transition between valid statuses.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	prev, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	updated := *prev
	updated.Status = status
	updated.UpdatedAt = srv.now()

	srv.announce(ctx, entity.ChangeUpdate, &updated, prev)
	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", updated.OrderNumber),
		slog.String("from", prev.Status.String()),
		slog.String("to", status.String()),
	)

	return &updated, nil
}

func (srv *orderService) TrackingQRCode(ctx context.Context, viewer *usecase.Actor, id uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateOrderTrackingQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render tracking code")
	}

	return png, nil
}
