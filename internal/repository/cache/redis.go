package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you-humble/partexplorer/internal/model"
)

type redisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache stores bundles shared by every session. Keys are the content
// hash from model.CatalogRequest.CacheKey.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *redisCache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) (model.CacheEntry, error) {
	const op = "cache.redis.Get"

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.CacheEntry{}, fmt.Errorf("%s: %w", op, model.ErrCacheMiss)
		}
		return model.CacheEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	var entry model.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return model.CacheEntry{}, fmt.Errorf("%s: decode %s: %w", op, key, err)
	}
	return entry, nil
}

func (c *redisCache) Put(ctx context.Context, key string, entry model.CacheEntry) error {
	const op = "cache.redis.Put"

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%s: encode %s: %w", op, key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Purge is a no-op: the shared tier outlives any single session and expires
// by TTL.
func (c *redisCache) Purge(context.Context) error { return nil }
