package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/you-humble/partexplorer/internal/model"
)

type memoryItem struct {
	entry    model.CacheEntry
	storedAt time.Time
}

type memory struct {
	mu      sync.RWMutex
	entries map[string]memoryItem
	policy  EvictionPolicy
	now     func() time.Time
}

// NewMemoryCache returns a session-local store. Entries are copied on the way
// in and out so callers never share slices with the store.
func NewMemoryCache(policy EvictionPolicy) *memory {
	return &memory{
		entries: make(map[string]memoryItem),
		policy:  policy,
		now:     time.Now,
	}
}

func (c *memory) Get(_ context.Context, key string) (model.CacheEntry, error) {
	const op = "cache.memory.Get"

	c.mu.RLock()
	item, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return model.CacheEntry{}, fmt.Errorf("%s: %w", op, model.ErrCacheMiss)
	}

	if c.policy.expired(item.storedAt, c.now()) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.storedAt.Equal(item.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return model.CacheEntry{}, fmt.Errorf("%s: %w", op, model.ErrCacheMiss)
	}

	return item.entry.Clone(), nil
}

func (c *memory) Put(_ context.Context, key string, entry model.CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryItem{entry: entry.Clone(), storedAt: c.now()}
	return nil
}

func (c *memory) Purge(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryItem)
	return nil
}

func (c *memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
