package storage

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

var _ service.ObjectStorage = (*BlobStorage)(nil)

// BlobStorage stores objects in any gocloud.dev bucket (file://, mem://, gs://, ...).
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// OpenBlobStorage opens the bucket named by url.
func OpenBlobStorage(ctx context.Context, url, publicBaseURL string) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return NewBlobStorage(bucket, publicBaseURL), nil
}

func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{bucket: bucket, publicBaseURL: publicBaseURL}
}

func (s *BlobStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType, CacheControl: cacheControl}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return s.PublicURL(key), nil
}

func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Exists reports whether key is stored.
func (s *BlobStorage) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat %s", key)
	}

	return ok, nil
}

func (s *BlobStorage) PublicURL(key string) string {
	return joinURL(s.publicBaseURL, key)
}

func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}
