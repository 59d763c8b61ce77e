package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	"go.uber.org/fx"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the configured provider and wraps it with metrics.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage config is missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var store service.ObjectStorage
	switch cfg.Provider {
	case constants.StorageProviderS3:
		s3Store, err := NewS3Storage(ctx, cfg, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				return s3Store.EnsureBucket(startCtx)
			},
		})
		store = s3Store
	case constants.StorageProviderBlob:
		blobStore, err := OpenBlobStorage(ctx, cfg.BlobURL, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return blobStore.Close()
			},
		})
		store = blobStore
	default:
		return nil, errors.Errorf("unknown storage provider %q", cfg.Provider)
	}

	return &instrumented{next: store, metrics: params.Metrics}, nil
}

type instrumented struct {
	next    service.ObjectStorage
	metrics *metrics.Metrics
}

func (s *instrumented) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	url, err := s.next.Upload(ctx, key, contentType, data)
	s.metrics.StorageOp("upload", err)

	return url, err
}

func (s *instrumented) Delete(ctx context.Context, key string) error {
	err := s.next.Delete(ctx, key)
	s.metrics.StorageOp("delete", err)

	return err
}

func (s *instrumented) PublicURL(key string) string {
	return s.next.PublicURL(key)
}
