package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type customizationService struct {
	txManager         repository.TransactionManager
	customizationRepo repository.CustomizationRepository
	orderRepo         repository.OrderRepository
	feed              service.ChangeFeed
	publisher         service.EventPublisher
	metrics           *metrics.Metrics
	logger            *slog.Logger
	now               func() time.Time
}

type CustomizationServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	CustomizationRepo repository.CustomizationRepository
	OrderRepo         repository.OrderRepository
	ChangeFeed        service.ChangeFeed
	Publisher         service.EventPublisher
	Metrics           *metrics.Metrics `optional:"true"`
	Logger            *slog.Logger
}

func NewCustomizationService(params CustomizationServiceParams) usecase.CustomizationUsecase {
	return &customizationService{
		txManager:         params.TxManager,
		customizationRepo: params.CustomizationRepo,
		orderRepo:         params.OrderRepo,
		feed:              params.ChangeFeed,
		publisher:         params.Publisher,
		metrics:           params.Metrics,
		logger:            params.Logger,
		now:               time.Now,
	}
}

func (srv *customizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateSubmission(sub *entity.CustomizationSubmission) error {
	problems := make(map[string]string)
	if strings.TrimSpace(sub.Text) == "" {
		problems["text"] = "Customization text is required"
	}
	if strings.TrimSpace(sub.Contact.Name) == "" {
		problems["name"] = "Name is required"
	}
	if msg := phoneProblem(strings.TrimSpace(sub.Contact.Phone)); msg != "" {
		problems["phone"] = msg
	}
	if email := strings.TrimSpace(sub.Contact.Email); email != "" && !isValidEmail(email) {
		problems["email"] = "Enter a valid email"
	}
	if strings.TrimSpace(sub.Contact.Address) == "" {
		problems["address"] = "Address is required"
	}
	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(describeProblems(problems))
	}

	return nil
}

// Submit records the request as a zero-priced CUST- order plus its review row.
func (srv *customizationService) Submit(ctx context.Context, userID *uuid.UUID, sub *entity.CustomizationSubmission) (*usecase.CustomizationOutput, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	now := srv.now()
	order := entity.NewCustomizationOrder(*sub, userID, now)
	req := &entity.CustomizationRequest{
		OrderNumber: order.OrderNumber,
		UserID:      userID,
		ProductID:   sub.ProductID,
		ProductName: sub.ProductName,
		Image:       sub.Image,
		Text:        strings.TrimSpace(sub.Text),
		Contact:     sub.Contact,
		Status:      entity.CustomizationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create customization order")
		}
		req.OrderID = order.ID

		return errors.Wrap(repoFactory.NewCustomizationRepository().Create(ctx, req), "failed to create customization request")
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.OrderPlaced("customization")
	srv.publishOrderChange(ctx, entity.ChangeInsert, order, nil)
	srv.publishRequestChange(ctx, entity.ChangeInsert, req)
	srv.log(ctx).Info("Customization submitted", slog.String("orderNumber", order.OrderNumber))

	return &usecase.CustomizationOutput{Request: req, Order: order}, nil
}

func (srv *customizationService) List(ctx context.Context, status entity.CustomizationStatus) ([]*entity.CustomizationRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrInvalidCustomizationStatus.WithDetails(string(status))
	}

	reqs, err := srv.customizationRepo.List(ctx, repository.CustomizationFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customization requests")
	}

	return reqs, nil
}

func (srv *customizationService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.CustomizationRequest, error) {
	reqs, err := srv.customizationRepo.List(ctx, repository.CustomizationFilter{UserID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customization requests")
	}

	return reqs, nil
}

func (srv *customizationService) find(ctx context.Context, repo repository.CustomizationRepository, id uuid.UUID) (*entity.CustomizationRequest, error) {
	req, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomizationNotFound) {
			return nil, domainerrors.ErrCustomizationNotFound
		}

		return nil, errors.Wrap(err, "failed to load customization request")
	}

	return req, nil
}

func (srv *customizationService) Review(ctx context.Context, id uuid.UUID, status entity.CustomizationStatus, notes string) (*entity.CustomizationRequest, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidCustomizationStatus.WithDetails(string(status))
	}

	req, err := srv.find(ctx, srv.customizationRepo, id)
	if err != nil {
		return nil, err
	}

	req.Status = status
	req.AdminNotes = strings.TrimSpace(notes)
	req.UpdatedAt = srv.now()
	if err := srv.customizationRepo.Update(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to update customization request")
	}

	srv.publishRequestChange(ctx, entity.ChangeUpdate, req)

	return req, nil
}

// Quote prices the backing order, marks the request reviewed and tells the
// owner about the new price, all in one transaction.
func (srv *customizationService) Quote(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*usecase.CustomizationOutput, error) {
	if !price.IsPositive() {
		return nil, domainerrors.ErrInvalidQuote.WithDetails("price must be positive")
	}

	var (
		req          *entity.CustomizationRequest
		order        *entity.Order
		prev         entity.Order
		notification *entity.Notification
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customizationRepo := repoFactory.NewCustomizationRepository()
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		if req, err = srv.find(ctx, customizationRepo, id); err != nil {
			return err
		}

		order, err = orderRepo.FindByID(ctx, req.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load customization order")
		}
		prev = *order
		prev.Items = append([]entity.OrderItem(nil), order.Items...)

		oldPrice, ok := entity.ApplyQuote(order, price)
		if !ok {
			return domainerrors.ErrInvalidQuote.WithDetails("order has no customization line")
		}
		if err := orderRepo.UpdatePricing(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order pricing")
		}

		quoted := price
		req.QuotedPrice = &quoted
		req.Status = entity.CustomizationStatusReviewed
		req.UpdatedAt = srv.now()
		if err := customizationRepo.Update(ctx, req); err != nil {
			return errors.Wrap(err, "failed to update customization request")
		}

		if order.UserID == nil {
			return nil
		}
		notification = entity.NewPriceUpdateNotification(*order.UserID, order, req.DisplayName(), oldPrice, price, srv.now())

		return errors.Wrap(repoFactory.NewNotificationRepository().Create(ctx, notification), "failed to create price notification")
	})
	if err != nil {
		return nil, err
	}

	srv.publishOrderChange(ctx, entity.ChangeUpdate, order, &prev)
	srv.publishRequestChange(ctx, entity.ChangeUpdate, req)
	if notification != nil {
		publishNotificationChange(ctx, srv.feed, srv.log(ctx), entity.ChangeInsert, notification)
	}

	event := entity.NewOrderEvent(entity.OrderEventQuoted, order, prev.Status, srv.now())
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish quote event", slog.Any("error", err))
	}

	srv.log(ctx).Info("Customization quoted",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("price", price.String()),
	)

	return &usecase.CustomizationOutput{Request: req, Order: order}, nil
}

func (srv *customizationService) Delete(ctx context.Context, id uuid.UUID) error {
	req, err := srv.find(ctx, srv.customizationRepo, id)
	if err != nil {
		return err
	}

	if err := srv.customizationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomizationNotFound) {
			return domainerrors.ErrCustomizationNotFound
		}

		return errors.Wrap(err, "failed to delete customization request")
	}

	srv.publishRequestChange(ctx, entity.ChangeDelete, req)

	return nil
}

func (srv *customizationService) publishOrderChange(ctx context.Context, changeType entity.ChangeType, order, prev *entity.Order) {
	change, err := entity.NewOrderChangeEvent(changeType, order, prev, srv.now())
	if err == nil {
		err = srv.feed.Publish(ctx, change)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to publish order change", slog.Any("error", err))
	}
}

func (srv *customizationService) publishRequestChange(ctx context.Context, changeType entity.ChangeType, req *entity.CustomizationRequest) {
	columns := map[string]string{
		"id":           req.ID.String(),
		"order_id":     req.OrderID.String(),
		"order_number": req.OrderNumber,
		"status":       string(req.Status),
	}
	if req.UserID != nil {
		columns["user_id"] = req.UserID.String()
	}

	change, err := entity.NewRecordChangeEvent(entity.TableCustomizationRequests, changeType, req.ID.String(), columns, req, srv.now())
	if err == nil {
		err = srv.feed.Publish(ctx, change)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to publish customization change", slog.Any("error", err))
	}
}

// publishNotificationChange is shared by every service that creates notifications.
func publishNotificationChange(ctx context.Context, feed service.ChangeFeed, logger *slog.Logger, changeType entity.ChangeType, n *entity.Notification) {
	columns := map[string]string{
		"id":        n.ID.String(),
		"type":      string(n.Type),
		"is_global": "false",
	}
	if n.IsGlobal {
		columns["is_global"] = "true"
	}
	if n.UserID != nil {
		columns["user_id"] = n.UserID.String()
	}

	change, err := entity.NewRecordChangeEvent(entity.TableNotifications, changeType, n.ID.String(), columns, n, time.Now())
	if err == nil {
		err = feed.Publish(ctx, change)
	}
	if err != nil {
		logger.Error("Failed to publish notification change", slog.Any("error", err))
	}
}
