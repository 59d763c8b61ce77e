package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventPublisher hands order events to the notifier worker.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error
	Close() error
}
