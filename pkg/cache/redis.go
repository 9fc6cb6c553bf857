package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a cache backed by Redis.
// Values are serialized with the configured Marshaler (JSON by default).
type Redis[V any] struct {
	client     redis.UniversalClient
	marshaler  Marshaler[V]
	prefix     string
	defaultTTL time.Duration
}

// RedisOption configures the Redis cache.
type RedisOption func(*redisConfig)

type redisConfig struct {
	prefix     string
	defaultTTL time.Duration
}

// WithPrefix namespaces every key as "<prefix>:<key>".
func WithPrefix(prefix string) RedisOption {
	return func(c *redisConfig) {
		c.prefix = prefix
	}
}

// WithRedisDefaultTTL sets the TTL used when Set is called with zero.
// Default: 1 minute.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(c *redisConfig) {
		c.defaultTTL = d
	}
}

// NewRedis creates a Redis-backed cache. A nil Marshaler selects JSON.
//
// Example:
//
//	counts := cache.NewRedis[int](client, nil, cache.WithPrefix("tabula:count"))
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	cfg := &redisConfig{defaultTTL: time.Minute}
	for _, opt := range opts {
		opt(cfg)
	}
	if m == nil {
		m = jsonMarshaler[V]{}
	}

	return &Redis[V]{
		client:     client,
		marshaler:  m,
		prefix:     cfg.prefix,
		defaultTTL: cfg.defaultTTL,
	}
}

// Get returns the value stored under key.
func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, err
	}

	return r.marshaler.Unmarshal(data)
}

// Set stores value under key.
func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return err
	}

	if ttl == 0 {
		ttl = r.defaultTTL
	}

	// Redis treats 0 as "no expiration", which is our negative TTL.
	return r.client.Set(ctx, r.key(key), data, max(ttl, 0)).Err()
}

// Delete removes key.
func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *Redis[V]) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

var _ Cache[any] = (*Redis[any])(nil)
