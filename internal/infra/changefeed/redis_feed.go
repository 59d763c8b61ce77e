package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/util"

	"github.com/redis/go-redis/v9"
)

// RedisFeed publishes events on a Redis channel and relays whatever arrives
// on it into a local Hub. Every replica, the publisher included, sees each
// event exactly once through the relay.
type RedisFeed struct {
	client  *redis.Client
	channel string
	hub     *Hub
	retry   util.RetryPolicy
	logger  *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

func NewRedisFeed(client *redis.Client, channel string, hub *Hub, retry util.RetryPolicy, logger *slog.Logger) *RedisFeed {
	return &RedisFeed{
		client:  client,
		channel: channel,
		hub:     hub,
		retry:   retry,
		logger:  logger,
	}
}

func (f *RedisFeed) Publish(ctx context.Context, event entity.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode change event")
	}

	if err := f.client.Publish(ctx, f.channel, data).Err(); err != nil {
		return errors.Wrap(err, "failed to publish change event")
	}

	return nil
}

func (f *RedisFeed) Subscribe(filter entity.ChangeFilter) service.ChangeSubscription {
	return f.hub.Subscribe(filter)
}

// Start launches the relay. It returns once the first subscription is
// confirmed, or with the error that exhausted the retry policy.
func (f *RedisFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		return errors.New("redis change feed already started")
	}

	pubsub, err := f.subscribe(ctx)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.done = make(chan struct{})

	go f.run(runCtx, pubsub)

	return nil
}

// Stop ends the relay and waits for it to exit or ctx to expire.
func (f *RedisFeed) Stop(ctx context.Context) error {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel = nil
	f.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "redis change feed did not stop in time")
	}
}

func (f *RedisFeed) subscribe(ctx context.Context) (*redis.PubSub, error) {
	return util.Retry(ctx, f.retry, func() (*redis.PubSub, error) {
		pubsub := f.client.Subscribe(ctx, f.channel)
		if _, err := pubsub.Receive(ctx); err != nil {
			_ = pubsub.Close()

			return nil, errors.Wrap(err, "failed to subscribe to change feed channel")
		}

		return pubsub, nil
	}, func(err error, delay time.Duration) {
		f.logger.Warn("Change feed subscription failed, retrying",
			slog.Any("error", err),
			slog.String("retry_in", util.FormatDuration(delay)),
		)
	})
}

func (f *RedisFeed) run(ctx context.Context, pubsub *redis.PubSub) {
	defer close(f.done)

	for {
		f.relay(ctx, pubsub)
		_ = pubsub.Close()

		if ctx.Err() != nil {
			return
		}

		f.logger.Warn("Change feed channel closed, resubscribing", slog.String("channel", f.channel))

		next, err := f.subscribe(ctx)
		if err != nil {
			if ctx.Err() == nil {
				f.logger.Error("Change feed relay stopped", slog.Any("error", err))
			}

			return
		}
		pubsub = next
	}
}

func (f *RedisFeed) relay(ctx context.Context, pubsub *redis.PubSub) {
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event entity.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				f.logger.Error("Failed to decode change event", slog.Any("error", err))

				continue
			}
			f.hub.dispatch(event)
		}
	}
}
