package cache

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultCartTTL = 30 * 24 * time.Hour

// ErrEmptyCartKey is returned when the caller has neither a user nor a guest token.
var ErrEmptyCartKey = errors.New("cart key is empty")

type CartStoreParams struct {
	fx.In

	Config *config.Config
	Client *redis.Client `optional:"true"`
}

func NewCartStore(params CartStoreParams) service.CartStore {
	ttl := defaultCartTTL
	if params.Config.Checkout != nil && params.Config.Checkout.CartTTL > 0 {
		ttl = params.Config.Checkout.CartTTL
	}

	if params.Client == nil {
		return NewMemoryCartStore(ttl)
	}

	return NewRedisCartStore(params.Client, keyPrefix(params.Config), ttl)
}

// RedisCartStore keeps each cart as the JSON line array under one key.
// Every save refreshes the TTL, so abandoned carts expire on their own.
type RedisCartStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, prefix string, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, prefix: prefix + "cart:", ttl: ttl}
}

func (s *RedisCartStore) Load(ctx context.Context, key string) (*entity.Cart, error) {
	if key == "" {
		return nil, ErrEmptyCartKey
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &entity.Cart{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return entity.DecodeCart(data), nil
}

func (s *RedisCartStore) Save(ctx context.Context, key string, cart *entity.Cart) error {
	if key == "" {
		return ErrEmptyCartKey
	}

	data, err := entity.EncodeCart(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyCartKey
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (s *MemoryCartStore) Load(_ context.Context, key string) (*entity.Cart, error) {
	if key == "" {
		return nil, ErrEmptyCartKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[key]
	if !ok {
		return &entity.Cart{}, nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.carts, key)

		return &entity.Cart{}, nil
	}

	return entity.DecodeCart(entry.data), nil
}

func (s *MemoryCartStore) Save(_ context.Context, key string, cart *entity.Cart) error {
	if key == "" {
		return ErrEmptyCartKey
	}

	data, err := entity.EncodeCart(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	s.mu.Lock()
	s.carts[key] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyCartKey
	}

	s.mu.Lock()
	delete(s.carts, key)
	s.mu.Unlock()

	return nil
}
