package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var ErrCacheMiss = errors.New("cache miss")

// Store is a byte-oriented key/value store with per-key expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Cache pairs a store with the default TTL and logger used by GetOrSet.
type Cache struct {
	Store Store
	TTL   time.Duration
	Log   *zap.Logger
}

func New(store Store, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{Store: store, TTL: ttl, Log: log.With(zap.String("component", "cache"))}
}

// GetOrSet returns the cached value for key. On a miss it calls fn once,
// stores the JSON encoded result with the cache TTL and returns it.
// Store failures never fail the call; they are logged and fn's result wins.
func GetOrSet[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	raw, err := c.Store.Get(ctx, key)
	if err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.Log.Warn("Discarding undecodable cache entry", zap.String("key", key))
	} else if !errors.Is(err, ErrCacheMiss) {
		c.Log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	value, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		c.Log.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return value, nil
	}
	if err := c.Store.Set(ctx, key, encoded, c.TTL); err != nil {
		c.Log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}

	return value, nil
}

// Key joins parts with ':' the way the redis keys are laid out.
func Key(parts ...any) string {
	key := ""
	for i, p := range parts {
		if i > 0 {
			key += ":"
		}
		key += fmt.Sprint(p)
	}
	return key
}
