package memcache

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
)

// Cache is an in-process implementation of the catalog cache contract,
// used by tests and zero-config runs.
type Cache struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries map[string]entry
}

type entry struct {
	value   []byte
	expires time.Time
}

var _ cache.Cache = (*Cache)(nil)

// New returns an empty in-memory cache.
func New() *Cache {
	return &Cache{
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !e.expires.After(c.now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	value := make([]byte, len(e.value))
	copy(value, e.value)
	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	var expires time.Time
	if ttl > 0 {
		expires = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry{value: stored, expires: expires}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Flush(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	return nil
}

// Len reports the number of live entries; test helper.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
