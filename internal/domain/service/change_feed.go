package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ChangeSubscription is one live registration on the change feed.
type ChangeSubscription interface {
	// Events delivers matching events in publish order. It is closed by Unsubscribe.
	Events() <-chan entity.ChangeEvent
	// Unsubscribe releases the registration. It is safe to call more than once.
	Unsubscribe()
}

// ChangeFeed fans row-change events out to subscribers.
type ChangeFeed interface {
	Publish(ctx context.Context, event entity.ChangeEvent) error
	Subscribe(filter entity.ChangeFilter) ChangeSubscription
}
