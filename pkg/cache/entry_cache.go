package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the subset of redis.Cmdable EntryCache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// EntryCache stores JSON-encoded values of T under "{prefix}:{id}" with a
// fixed TTL. Used as a read-through cache for catalog DTOs and dashboard stats.
type EntryCache[T any] struct {
	store  Store
	prefix string
	ttl    time.Duration
}

// NewEntryCache returns nil when r is nil so callers can treat a missing
// Redis as "no cache" with a single nil check.
func NewEntryCache[T any](r *RedisClient, prefix string, ttl time.Duration) *EntryCache[T] {
	if r == nil || r.Client() == nil {
		return nil
	}
	return NewEntryCacheWithStore[T](r.Client(), prefix, ttl)
}

// NewEntryCacheWithStore builds an EntryCache over any Store.
func NewEntryCacheWithStore[T any](store Store, prefix string, ttl time.Duration) *EntryCache[T] {
	return &EntryCache[T]{store: store, prefix: prefix, ttl: ttl}
}

// Key builds the Redis key for id.
func (c *EntryCache[T]) Key(id string) string {
	return c.prefix + ":" + id
}

// Get returns the cached value. A missing or expired key yields found=false
// with a nil error.
func (c *EntryCache[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var v T
	raw, err := c.store.Get(ctx, c.Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("cache get %s: %w", c.Key(id), err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("cache decode %s: %w", c.Key(id), err)
	}
	return v, true, nil
}

// Set writes v with the cache TTL.
func (c *EntryCache[T]) Set(ctx context.Context, id string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", c.Key(id), err)
	}
	if err := c.store.Set(ctx, c.Key(id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", c.Key(id), err)
	}
	return nil
}

// Delete removes the given entries. Missing keys are not an error.
func (c *EntryCache[T]) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.Key(id)
	}
	if err := c.store.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
