package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SendNotificationInput is an admin-authored message. UserID nil broadcasts.
type SendNotificationInput struct {
	UserID  *uuid.UUID
	Title   string
	Message string
	Type    entity.NotificationType
}

// NotificationUsecase covers the in-app inbox.
type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Send(ctx context.Context, input *SendNotificationInput) (*entity.Notification, error)
	Delete(ctx context.Context, notificationID uuid.UUID) error
}

// OrderEventUsecase is run by the notifier worker for each published order event.
type OrderEventUsecase interface {
	HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error
}
