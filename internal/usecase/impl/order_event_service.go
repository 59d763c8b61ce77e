package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderEventService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	notifier         service.PushNotifier
	feed             service.ChangeFeed
	metrics          *metrics.Metrics
	logger           *slog.Logger
	pushRetry        util.RetryPolicy
}

// pushRetryPolicy stays short; longer outages fall back to Pub/Sub redelivery.
var pushRetryPolicy = util.RetryPolicy{MaxRetries: 2, InitialDelay: 250 * time.Millisecond, MaxDelay: time.Second}

type pushOutcome struct {
	sent, failed  int
	invalidTokens []string
}

type OrderEventServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	Notifier         service.PushNotifier
	ChangeFeed       service.ChangeFeed
	Metrics          *metrics.Metrics `optional:"true"`
	Logger           *slog.Logger
}

func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		notifier:         params.Notifier,
		feed:             params.ChangeFeed,
		metrics:          params.Metrics,
		logger:           params.Logger,
		pushRetry:        pushRetryPolicy,
	}
}

func (srv *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent stores an in-app notification for the order owner and
// pushes it to their active devices. Guest orders and events without a
// customer-facing message are acknowledged without side effects. Devices
// whose tokens the push service rejects are deactivated.
func (srv *orderEventService) HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	if event.UserID == "" {
		return nil
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		srv.log(ctx).Warn("Dropping order event with malformed user id", slog.String("userID", event.UserID))

		return nil
	}

	title, body, ok := event.CustomerMessage()
	if !ok {
		return nil
	}

	n := &entity.Notification{
		UserID:  &userID,
		Title:   title,
		Message: body,
		Type:    entity.NotificationTypeInfo,
		Metadata: &entity.NotificationMetadata{
			OrderID:     event.OrderID,
			OrderNumber: event.OrderNumber,
		},
		CreatedAt: time.Now(),
	}
	if event.Kind == entity.OrderEventPlaced {
		n.Type = entity.NotificationTypeSuccess
	}
	if err := srv.notificationRepo.Create(ctx, n); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Order owner no longer exists", slog.String("userID", event.UserID))

			return nil
		}

		return errors.Wrap(err, "failed to create order notification")
	}
	publishNotificationChange(ctx, srv.feed, srv.log(ctx), entity.ChangeInsert, n)

	devices, err := srv.deviceRepo.FindActiveDevicesByUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"notification_id": n.ID.String(),
		"order_id":        event.OrderID,
		"order_number":    event.OrderNumber,
		"status":          event.Status.String(),
	}
	out, err := util.Retry(ctx, srv.pushRetry, func() (pushOutcome, error) {
		sent, failed, invalid, err := srv.notifier.SendBatchNotification(ctx, tokens, title, body, data)

		return pushOutcome{sent: sent, failed: failed, invalidTokens: invalid}, err
	}, func(err error, delay time.Duration) {
		srv.log(ctx).Warn("Push send failed, retrying", slog.Any("error", err), slog.Duration("delay", delay))
	})
	srv.metrics.PushResult(out.sent, out.failed)
	if err != nil {
		return errors.Wrap(err, "failed to push order notification")
	}
	sent, failed, invalidTokens := out.sent, out.failed, out.invalidTokens

	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).Error("Failed to deactivate invalid devices", slog.Any("error", err))
		} else {
			srv.log(ctx).Info("Deactivated devices with invalid tokens", slog.Int64("count", deactivated))
		}
	}

	srv.log(ctx).Info("Order notification pushed",
		slog.String("orderNumber", event.OrderNumber),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)

	return nil
}
