package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/changefeed"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"go.uber.org/fx"
)

const (
	streamBuffer        = 16
	streamSnapshotLimit = 100
)

type realtimeService struct {
	feed              service.ChangeFeed
	orderRepo         repository.OrderRepository
	notificationRepo  repository.NotificationRepository
	customizationRepo repository.CustomizationRepository
	cfg               *config.ChangeFeedConfig
	retry             util.RetryPolicy
	logger            *slog.Logger
}

type RealtimeServiceParams struct {
	fx.In

	ChangeFeed        service.ChangeFeed
	OrderRepo         repository.OrderRepository
	NotificationRepo  repository.NotificationRepository
	CustomizationRepo repository.CustomizationRepository
	Config            *config.Config
	Logger            *slog.Logger
}

func NewRealtimeService(params RealtimeServiceParams) usecase.RealtimeUsecase {
	return &realtimeService{
		feed:              params.ChangeFeed,
		orderRepo:         params.OrderRepo,
		notificationRepo:  params.NotificationRepo,
		customizationRepo: params.CustomizationRepo,
		cfg:               params.Config.ChangeFeed,
		retry:             changefeed.RetryPolicy(params.Config),
		logger:            params.Logger,
	}
}

func (srv *realtimeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// watch describes one realtime stream.
type watch struct {
	name     string
	filter   entity.ChangeFilter
	interval time.Duration
	snapshot func(ctx context.Context) (any, error)
	describe func(e entity.ChangeEvent) (string, bool)
}

// WatchOrders streams every order to staff and only their own orders to
// shoppers. Staff also get a toast line per meaningful change.
func (srv *realtimeService) WatchOrders(ctx context.Context, viewer usecase.Actor) (<-chan usecase.StreamMessage, error) {
	w := watch{
		name:     "orders",
		filter:   entity.ChangeFilter{Table: entity.TableOrders},
		interval: srv.cfg.OrdersPollInterval,
	}

	if viewer.IsStaff() {
		w.describe = entity.DescribeOrderChange
		w.snapshot = func(ctx context.Context) (any, error) {
			return srv.orderRepo.List(ctx, repository.OrderFilter{Limit: streamSnapshotLimit})
		}
	} else {
		userID := viewer.UserID
		w.filter.AnyOf = []entity.ColumnEquals{{Column: "user_id", Value: userID.String()}}
		w.snapshot = func(ctx context.Context) (any, error) {
			return srv.orderRepo.List(ctx, repository.OrderFilter{UserID: &userID, Limit: streamSnapshotLimit})
		}
	}

	return srv.start(ctx, w), nil
}

// NotificationSnapshot is the polled inbox state.
type NotificationSnapshot struct {
	Notifications []*entity.Notification `json:"notifications"`
	Unread        int64                  `json:"unread"`
}

func (srv *realtimeService) WatchNotifications(ctx context.Context, viewer usecase.Actor) (<-chan usecase.StreamMessage, error) {
	userID := viewer.UserID
	w := watch{
		name: "notifications",
		filter: entity.ChangeFilter{
			Table: entity.TableNotifications,
			AnyOf: []entity.ColumnEquals{
				{Column: "user_id", Value: userID.String()},
				{Column: "is_global", Value: "true"},
			},
		},
		interval: srv.cfg.NotificationsPollInterval,
		snapshot: func(ctx context.Context) (any, error) {
			list, err := srv.notificationRepo.ListForUser(ctx, userID, defaultNotificationLimit)
			if err != nil {
				return nil, err
			}
			unread, err := srv.notificationRepo.CountUnread(ctx, userID)
			if err != nil {
				return nil, err
			}

			return &NotificationSnapshot{Notifications: list, Unread: unread}, nil
		},
	}

	return srv.start(ctx, w), nil
}

func (srv *realtimeService) WatchCustomizations(ctx context.Context, viewer usecase.Actor) (<-chan usecase.StreamMessage, error) {
	w := watch{
		name:     "customizations",
		filter:   entity.ChangeFilter{Table: entity.TableCustomizationRequests},
		interval: srv.cfg.CustomizationPollInterval,
	}

	filter := repository.CustomizationFilter{}
	if !viewer.IsStaff() {
		userID := viewer.UserID
		filter.UserID = &userID
		w.filter.AnyOf = []entity.ColumnEquals{{Column: "user_id", Value: userID.String()}}
	}
	w.snapshot = func(ctx context.Context) (any, error) {
		return srv.customizationRepo.List(ctx, filter)
	}

	return srv.start(ctx, w), nil
}

// start subscribes before the first snapshot so no change between the two
// is lost. Later snapshots come from a separate poller so a slow or retrying
// read never holds up change events. The returned channel closes when ctx
// is done.
func (srv *realtimeService) start(ctx context.Context, w watch) <-chan usecase.StreamMessage {
	sub := srv.feed.Subscribe(w.filter)
	out := make(chan usecase.StreamMessage, streamBuffer)

	go func() {
		defer close(out)
		defer sub.Unsubscribe()

		logger := srv.log(ctx).With(slog.String("stream", w.name))
		logger.Debug("Realtime stream opened")
		defer logger.Debug("Realtime stream closed")

		send := func(msg usecase.StreamMessage) bool {
			select {
			case out <- msg:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send(srv.poll(ctx, logger, w)) {
			return
		}

		pollCtx, cancel := context.WithCancel(ctx)
		snapshots := make(chan usecase.StreamMessage, 1)
		pollerDone := make(chan struct{})
		go func() {
			defer close(pollerDone)
			srv.pollEvery(pollCtx, logger, w, snapshots)
		}()
		defer func() {
			cancel()
			<-pollerDone
		}()

		events := sub.Events()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				msg := usecase.StreamMessage{Kind: usecase.StreamChange, Change: &event}
				if w.describe != nil {
					if text, ok := w.describe(event); ok {
						msg.Message = text
					}
				}
				if !send(msg) {
					return
				}
			case msg := <-snapshots:
				if !send(msg) {
					return
				}
			}
		}
	}()

	return out
}

// pollEvery loads a snapshot on every tick until ctx is done. Ticks that
// fire while a snapshot is still loading are skipped.
func (srv *realtimeService) pollEvery(ctx context.Context, logger *slog.Logger, w watch, snapshots chan<- usecase.StreamMessage) {
	interval := w.interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			msg := srv.poll(ctx, logger, w)
			if ctx.Err() != nil {
				return
			}
			select {
			case snapshots <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// poll loads a snapshot, retrying with backoff. Exhausted retries become an
// error message on the stream rather than ending it.
func (srv *realtimeService) poll(ctx context.Context, logger *slog.Logger, w watch) usecase.StreamMessage {
	snapshot, err := util.Retry(ctx, srv.retry, func() (any, error) {
		return w.snapshot(ctx)
	}, func(err error, delay time.Duration) {
		logger.Warn("Realtime snapshot failed, retrying",
			slog.Any("error", err),
			slog.String("delay", util.FormatDuration(delay)),
		)
	})
	if err != nil {
		if ctx.Err() == nil {
			logger.Error("Realtime snapshot failed", slog.Any("error", err))
		}

		return usecase.StreamMessage{Kind: usecase.StreamError, Error: "failed to refresh " + w.name}
	}

	return usecase.StreamMessage{Kind: usecase.StreamSnapshot, Snapshot: snapshot}
}
