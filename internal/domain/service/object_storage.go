package service

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when deleting or reading a missing object.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage stores public assets such as product images.
type ObjectStorage interface {
	// Upload writes data under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
