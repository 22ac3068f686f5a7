package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/you-humble/partexplorer/internal/metrics"
	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/platform/logger"
)

type Store interface {
	Get(ctx context.Context, key string) (model.CacheEntry, error)
	Put(ctx context.Context, key string, entry model.CacheEntry) error
	Purge(ctx context.Context) error
}

type layered struct {
	local  Store
	shared Store
}

// NewLayeredCache reads the session store first and falls back to the shared
// store, backfilling the session store on a shared hit. shared may be nil.
// Shared-tier failures degrade to misses and are only logged.
func NewLayeredCache(local, shared Store) *layered {
	return &layered{local: local, shared: shared}
}

func (c *layered) Get(ctx context.Context, key string) (model.CacheEntry, error) {
	const op = "cache.layered.Get"

	entry, err := c.local.Get(ctx, key)
	if err == nil {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.TierLocal, metrics.ResultHit).Inc()
		return entry, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues(metrics.TierLocal, metrics.ResultMiss).Inc()

	if c.shared == nil {
		return model.CacheEntry{}, fmt.Errorf("%s: %w", op, model.ErrCacheMiss)
	}

	entry, err = c.shared.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrCacheMiss) {
			metrics.CacheLookupsTotal.WithLabelValues(metrics.TierShared, metrics.ResultMiss).Inc()
		} else {
			metrics.CacheLookupsTotal.WithLabelValues(metrics.TierShared, metrics.ResultError).Inc()
			logger.Warn(ctx, "shared cache read failed", logger.String("key", key), logger.ErrorF(err))
		}
		return model.CacheEntry{}, fmt.Errorf("%s: %w", op, model.ErrCacheMiss)
	}
	metrics.CacheLookupsTotal.WithLabelValues(metrics.TierShared, metrics.ResultHit).Inc()

	if err := c.local.Put(ctx, key, entry); err != nil {
		logger.Warn(ctx, "local cache backfill failed", logger.String("key", key), logger.ErrorF(err))
	}
	return entry, nil
}

func (c *layered) Put(ctx context.Context, key string, entry model.CacheEntry) error {
	const op = "cache.layered.Put"

	if err := c.local.Put(ctx, key, entry); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if c.shared != nil {
		if err := c.shared.Put(ctx, key, entry); err != nil {
			logger.Warn(ctx, "shared cache write failed", logger.String("key", key), logger.ErrorF(err))
		}
	}
	return nil
}

// Purge clears the session tier only.
func (c *layered) Purge(ctx context.Context) error {
	return c.local.Purge(ctx)
}
