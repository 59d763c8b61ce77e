package storage

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewBlobStorage(memblob.OpenBucket(nil), "https://cdn.example.com/product-images/")
	t.Cleanup(func() { _ = store.Close() })

	url, err := store.Upload(ctx, "1718000000000-abc1234.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/product-images/1718000000000-abc1234.png", url)

	ok, err := store.Exists(ctx, "1718000000000-abc1234.png")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, "1718000000000-abc1234.png"))
	assert.ErrorIs(t, store.Delete(ctx, "1718000000000-abc1234.png"), service.ErrObjectNotFound)
}

func TestOpenBlobStorage_FileBucket(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBlobStorage(ctx, "file://"+t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	url, err := store.Upload(ctx, "a.webp", "image/webp", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/a.webp", url)
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), &config.StorageConfig{Provider: "s3"}, nil)
	assert.Error(t, err)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://x/y/k.png", joinURL("https://x/y/", "/k.png"))
	assert.Equal(t, "https://x/k.png", joinURL("https://x", "k.png"))
}
