package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/delivery"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const defaultPurgeInterval = time.Hour

// sessionJanitor deletes expired refresh tokens on a fixed interval.
type sessionJanitor struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
	interval  time.Duration
	done      chan struct{}
}

type JanitorParams struct {
	fx.In

	Lc        fx.Lifecycle
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

func NewSessionJanitor(params JanitorParams) delivery.Delivery {
	j := &sessionJanitor{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
		interval:  defaultPurgeInterval,
		done:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(j.done)

			return nil
		},
	})

	return j
}

// Serve purges once immediately, then on every tick until stopped.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-j.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.purge(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (j *sessionJanitor) purge(ctx context.Context) {
	removed, err := j.sessionUC.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Error("[Janitor] Failed to purge expired sessions", slog.Any("error", err))
		}

		return
	}
	if removed > 0 {
		j.logger.Info("[Janitor] Purged expired sessions", slog.Int64("count", removed))
	}
}
