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
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	feed             service.ChangeFeed
	logger           *slog.Logger
}

type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	ChangeFeed       service.ChangeFeed
	Logger           *slog.Logger
}

func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		feed:             params.ChangeFeed,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	switch {
	case limit <= 0:
		limit = defaultNotificationLimit
	case limit > maxNotificationLimit:
		limit = maxNotificationLimit
	}

	notifications, err := srv.notificationRepo.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead treats a notification the user cannot see as missing.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	n, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to load notification")
	}
	if !n.IsVisibleTo(userID) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(srv.notificationRepo.MarkRead(ctx, notificationID, userID), "failed to mark notification read")
}

func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return errors.Wrap(srv.notificationRepo.MarkAllRead(ctx, userID), "failed to mark notifications read")
}

// Send stores an admin-authored notification. A nil UserID broadcasts.
func (srv *notificationService) Send(ctx context.Context, input *usecase.SendNotificationInput) (*entity.Notification, error) {
	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" || message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and message are required")
	}

	kind := input.Type
	if kind == "" {
		kind = entity.NotificationTypeInfo
	}
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidNotificationType.WithDetails(string(kind))
	}

	if input.UserID != nil {
		if _, err := srv.userRepo.FindByID(ctx, *input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound
			}

			return nil, errors.Wrap(err, "failed to load recipient")
		}
	}

	n := &entity.Notification{
		UserID:    input.UserID,
		Title:     title,
		Message:   message,
		Type:      kind,
		IsGlobal:  input.UserID == nil,
		CreatedAt: time.Now(),
	}
	if err := srv.notificationRepo.Create(ctx, n); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	publishNotificationChange(ctx, srv.feed, srv.log(ctx), entity.ChangeInsert, n)
	srv.log(ctx).Info("Notification sent", slog.Any("notificationID", n.ID), slog.Bool("global", n.IsGlobal))

	return n, nil
}

func (srv *notificationService) Delete(ctx context.Context, notificationID uuid.UUID) error {
	n, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to load notification")
	}

	if err := srv.notificationRepo.Delete(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	publishNotificationChange(ctx, srv.feed, srv.log(ctx), entity.ChangeDelete, n)

	return nil
}
