package impl

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func createTestUploadService(t *testing.T) (usecase.UploadUsecase, *mockSvc.MockObjectStorage) {
	storage := mockSvc.NewMockObjectStorage(t)
	svc, err := NewUploadService(UploadServiceParams{Storage: storage, Config: newTestConfig(), Logger: newTestLogger()})
	require.NoError(t, err)

	return svc, storage
}

func TestNewUploadService_InvalidLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.Storage.MaxUploadSize = "lots"

	_, err := NewUploadService(UploadServiceParams{Config: cfg, Logger: newTestLogger()})

	assert.Error(t, err)
}

func TestUploadService_UploadImage_Success(t *testing.T) {
	svc, storage := createTestUploadService(t)
	ctx := context.Background()

	storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, ".png") }), "image/png", pngHeader).
		Return("https://cdn.example.com/products/1.png", nil)

	out, err := svc.UploadImage(ctx, &usecase.UploadImageInput{Filename: "photo.jpg", ContentType: "image/jpeg", Data: pngHeader})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.Key, ".png"), "extension follows the sniffed type")
	assert.Equal(t, "https://cdn.example.com/products/1.png", out.URL)
}

func TestUploadService_UploadImage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "too large", data: append(append([]byte{}, pngHeader...), make([]byte, 2048)...), wantErr: domainerrors.ErrUploadTooLarge},
		{name: "not an image", data: []byte("%PDF-1.4\n"), wantErr: domainerrors.ErrUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestUploadService(t)

			_, err := svc.UploadImage(context.Background(), &usecase.UploadImageInput{Filename: "x.png", Data: tt.data})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadService_UploadImage_StorageFailure(t *testing.T) {
	svc, storage := createTestUploadService(t)

	storage.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))

	_, err := svc.UploadImage(context.Background(), &usecase.UploadImageInput{Data: pngHeader})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestObjectKeyFromURL(t *testing.T) {
	key, err := objectKeyFromURL("https://cdn.example.com/products/1718000000000-abc1234.png?v=2")
	require.NoError(t, err)
	assert.Equal(t, "1718000000000-abc1234.png", key)

	_, err = objectKeyFromURL("https://cdn.example.com/")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidObjectURL)
}

func TestUploadService_DeleteImage(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, storage := createTestUploadService(t)
		storage.EXPECT().Delete(mock.Anything, "a.png").Return(nil)

		assert.NoError(t, svc.DeleteImage(context.Background(), "https://cdn.example.com/a.png"))
	})

	t.Run("missing object", func(t *testing.T) {
		svc, storage := createTestUploadService(t)
		storage.EXPECT().Delete(mock.Anything, "a.png").Return(service.ErrObjectNotFound)

		assert.ErrorIs(t, svc.DeleteImage(context.Background(), "https://cdn.example.com/a.png"), domainerrors.ErrNotFound)
	})
}
