package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// StreamKind tags a message on a realtime stream.
type StreamKind string

const (
	// StreamChange carries one change event as it happened.
	StreamChange StreamKind = "change"
	// StreamSnapshot carries the full polled state.
	StreamSnapshot StreamKind = "snapshot"
	// StreamError reports that a poll failed after all retries.
	StreamError StreamKind = "error"
)

// StreamMessage is one item pushed to a realtime client.
type StreamMessage struct {
	Kind     StreamKind          `json:"kind"`
	Change   *entity.ChangeEvent `json:"change,omitempty"`
	Message  string              `json:"message,omitempty"` // Human-readable toast for staff.
	Snapshot any                 `json:"snapshot,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// RealtimeUsecase streams change events plus periodic snapshots. Each stream
// ends when ctx is cancelled; the channel is then closed.
type RealtimeUsecase interface {
	WatchOrders(ctx context.Context, viewer Actor) (<-chan StreamMessage, error)
	WatchNotifications(ctx context.Context, viewer Actor) (<-chan StreamMessage, error)
	WatchCustomizations(ctx context.Context, viewer Actor) (<-chan StreamMessage, error)
}
