package service

import "context"

// CatalogCache is a read-through cache for public catalog listings.
type CatalogCache interface {
	// Get decodes the cached value into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// InvalidateAll drops every catalog entry after an admin write.
	InvalidateAll(ctx context.Context) error
}
