package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	catalogCacheName       = "catalog"
	defaultCatalogCacheTTL = 5 * time.Minute
)

type CatalogCacheParams struct {
	fx.In

	Config  *config.Config
	Client  *redis.Client    `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`
}

// NewCatalogCache picks the Redis cache when a client exists.
func NewCatalogCache(params CatalogCacheParams) service.CatalogCache {
	ttl := defaultCatalogCacheTTL
	if params.Config.Catalog != nil && params.Config.Catalog.CacheTTL > 0 {
		ttl = params.Config.Catalog.CacheTTL
	}

	if params.Client == nil {
		return NewMemoryCatalogCache(ttl, params.Metrics)
	}

	return NewRedisCatalogCache(params.Client, keyPrefix(params.Config), ttl, params.Metrics)
}

// RedisCatalogCache namespaces entries under a generation counter.
// InvalidateAll bumps the generation so stale entries are never read again
// and age out through their TTL.
type RedisCatalogCache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewRedisCatalogCache(client *redis.Client, prefix string, ttl time.Duration, m *metrics.Metrics) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, prefix: prefix + "catalog:", ttl: ttl, metrics: m}
}

func (c *RedisCatalogCache) generationKey() string {
	return c.prefix + "gen"
}

func (c *RedisCatalogCache) entryKey(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, c.generationKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errors.Wrap(err, "failed to read catalog generation")
	}

	return c.prefix + strconv.FormatInt(gen, 10) + ":" + key, nil
}

func (c *RedisCatalogCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	entryKey, err := c.entryKey(ctx, key)
	if err != nil {
		return false, err
	}

	data, err := c.client.Get(ctx, entryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.CacheResult(catalogCacheName, false)

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read catalog cache")
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// A shape change between releases; treat as a miss.
		c.metrics.CacheResult(catalogCacheName, false)

		return false, nil //nolint:nilerr
	}

	c.metrics.CacheResult(catalogCacheName, true)

	return true, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode catalog cache entry")
	}

	entryKey, err := c.entryKey(ctx, key)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, entryKey, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write catalog cache")
	}

	return nil
}

func (c *RedisCatalogCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.generationKey()).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate catalog cache")
	}

	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCatalogCache is the single-process variant. Values are stored as
// JSON so callers get the same copy semantics as with Redis.
type MemoryCatalogCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewMemoryCatalogCache(ttl time.Duration, m *metrics.Metrics) *MemoryCatalogCache {
	return &MemoryCatalogCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		metrics: m,
		now:     time.Now,
	}
}

func (c *MemoryCatalogCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		c.metrics.CacheResult(catalogCacheName, false)

		return false, nil
	}

	if err := json.Unmarshal(entry.data, dst); err != nil {
		return false, errors.Wrap(err, "failed to decode catalog cache entry")
	}

	c.metrics.CacheResult(catalogCacheName, true)

	return true, nil
}

func (c *MemoryCatalogCache) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode catalog cache entry")
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()

	return nil
}

func (c *MemoryCatalogCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()

	return nil
}
