// Package changefeed fans row-change events out to live subscribers, either
// inside one process or across replicas through a Redis channel.
package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"
)

const defaultBufferSize = 64

// Hub is the in-process feed. Events are dispatched under one lock so every
// subscriber sees them in publish order. A subscriber whose buffer is full
// misses the event; its stream's periodic snapshot poll covers the gap.
type Hub struct {
	mu      sync.Mutex
	subs    map[uint64]*subscription
	nextID  uint64
	buffer  int
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHub(buffer int, logger *slog.Logger, m *metrics.Metrics) *Hub {
	if buffer <= 0 {
		buffer = defaultBufferSize
	}

	return &Hub{
		subs:    make(map[uint64]*subscription),
		buffer:  buffer,
		logger:  logger,
		metrics: m,
	}
}

func (h *Hub) Publish(_ context.Context, event entity.ChangeEvent) error {
	h.dispatch(event)

	return nil
}

func (h *Hub) dispatch(event entity.ChangeEvent) {
	h.metrics.FeedPublished(event.Table, string(event.Type))

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		if !sub.filter.Matches(event) {
			continue
		}

		select {
		case sub.ch <- event:
		default:
			h.logger.Warn("Change feed subscriber is full, dropping event",
				slog.Uint64("subscription", id),
				slog.String("table", event.Table),
				slog.String("record_id", event.RecordID),
			)
		}
	}
}

func (h *Hub) Subscribe(filter entity.ChangeFilter) service.ChangeSubscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &subscription{
		id:     h.nextID,
		hub:    h,
		filter: filter,
		ch:     make(chan entity.ChangeEvent, h.buffer),
	}
	h.subs[sub.id] = sub
	h.metrics.SubscriberDelta(1)

	return sub
}

// Len reports the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.ch)
	h.metrics.SubscriberDelta(-1)
}

type subscription struct {
	id     uint64
	hub    *Hub
	filter entity.ChangeFilter
	ch     chan entity.ChangeEvent
	once   sync.Once
}

func (s *subscription) Events() <-chan entity.ChangeEvent {
	return s.ch
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() { s.hub.remove(s) })
}
