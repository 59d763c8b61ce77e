package impl

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const defaultMaxUploadSize int64 = 5 << 20

type uploadService struct {
	storage       service.ObjectStorage
	maxUploadSize int64
	logger        *slog.Logger
	now           func() time.Time
}

type UploadServiceParams struct {
	fx.In

	Storage service.ObjectStorage
	Config  *config.Config
	Logger  *slog.Logger
}

func NewUploadService(params UploadServiceParams) (usecase.UploadUsecase, error) {
	limit := defaultMaxUploadSize
	if params.Config.Storage != nil && params.Config.Storage.MaxUploadSize != "" {
		parsed, err := bytes.Parse(params.Config.Storage.MaxUploadSize)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid storage.maxUploadSize %q", params.Config.Storage.MaxUploadSize)
		}
		limit = parsed
	}

	return &uploadService{
		storage:       params.Storage,
		maxUploadSize: limit,
		logger:        params.Logger,
		now:           time.Now,
	}, nil
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage sniffs the payload instead of trusting the declared content type.
func (srv *uploadService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadOutput, error) {
	if len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}
	if int64(len(input.Data)) > srv.maxUploadSize {
		return nil, domainerrors.ErrUploadTooLarge.WithDetails("limit is " + bytes.Format(srv.maxUploadSize))
	}

	detected := mimetype.Detect(input.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails(detected.String())
	}

	ext := strings.TrimPrefix(detected.Extension(), ".")
	if ext == "" {
		ext = strings.TrimPrefix(strings.ToLower(path.Ext(input.Filename)), ".")
	}

	key := util.ObjectKey(srv.now(), ext)
	publicURL, err := srv.storage.Upload(ctx, key, detected.String(), input.Data)
	if err != nil {
		srv.log(ctx).Error("Image upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(input.Data)))),
	)

	return &usecase.UploadOutput{Key: key, URL: publicURL}, nil
}

// objectKeyFromURL takes the last path segment of rawURL.
func objectKeyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", domainerrors.ErrInvalidObjectURL.WithDetails(rawURL)
	}

	key := path.Base(u.Path)
	if key == "" || key == "." || key == "/" {
		return "", domainerrors.ErrInvalidObjectURL.WithDetails(rawURL)
	}

	return key, nil
}

func (srv *uploadService) DeleteImage(ctx context.Context, rawURL string) error {
	key, err := objectKeyFromURL(rawURL)
	if err != nil {
		return err
	}

	if err := srv.storage.Delete(ctx, key); err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return domainerrors.ErrNotFound.WithDetails(key)
		}

		return domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}
	srv.log(ctx).Info("Image deleted", slog.String("key", key))

	return nil
}
