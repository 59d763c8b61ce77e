package changefeed

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
	"storefront/internal/util"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Client  *redis.Client    `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`
}

// RetryPolicy reads the bounded backoff used for feed reads.
func RetryPolicy(cfg *config.Config) util.RetryPolicy {
	p := util.DefaultRetryPolicy()
	if cfg.ChangeFeed == nil {
		return p
	}
	if cfg.ChangeFeed.RetryMaxRetries > 0 {
		p.MaxRetries = cfg.ChangeFeed.RetryMaxRetries
	}
	if cfg.ChangeFeed.RetryInitialDelay > 0 {
		p.InitialDelay = cfg.ChangeFeed.RetryInitialDelay
	}
	if cfg.ChangeFeed.RetryMaxDelay > 0 {
		p.MaxDelay = cfg.ChangeFeed.RetryMaxDelay
	}

	return p
}

// New selects the transport named in config. The redis transport needs a
// configured redis client.
func New(params Params) (service.ChangeFeed, error) {
	cfg := params.Config.ChangeFeed
	transport, buffer, channel := constants.ChangeFeedTransportMemory, 0, "storefront:changes"
	if cfg != nil {
		transport, buffer = cfg.Transport, cfg.BufferSize
		if cfg.Channel != "" {
			channel = cfg.Channel
		}
	}

	hub := NewHub(buffer, params.Logger, params.Metrics)

	switch transport {
	case constants.ChangeFeedTransportMemory, "":
		return hub, nil
	case constants.ChangeFeedTransportRedis:
		if params.Client == nil {
			return nil, errors.New("redis change feed requires a redis section")
		}

		feed := NewRedisFeed(params.Client, channel, hub, RetryPolicy(params.Config), params.Logger)
		params.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return feed.Start(ctx)
			},
			OnStop: func(ctx context.Context) error {
				stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return feed.Stop(stopCtx)
			},
		})

		return feed, nil
	default:
		return nil, errors.Errorf("unknown change feed transport %q", transport)
	}
}
