package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
)

// cacheStore is the accessor boundary in front of the cache backend.
// Payloads are JSON in the same shape as API responses, never raw
// persistence rows. Every failure is absorbed here: a broken cache can only
// slow the catalog down, never fail a request.
type cacheStore struct {
	cache  cache.Cache
	logger logger.Logger
	ttl    time.Duration
}

// read returns true when key was present and decoded into out. Backend
// errors and corrupt payloads are logged and reported as misses.
func (c *cacheStore) read(ctx context.Context, key string, out any) bool {
	payload, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache get failed, degrading to store",
			logger.Field{Key: "key", Value: key},
			logger.Field{Key: "error", Value: err})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		c.logger.Warn("cache payload corrupt, treating as miss",
			logger.Field{Key: "key", Value: key},
			logger.Field{Key: "error", Value: err})
		return false
	}
	return true
}

// write stores value under key, best effort.
func (c *cacheStore) write(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed",
			logger.Field{Key: "key", Value: key},
			logger.Field{Key: "error", Value: err})
		return
	}
	if err := c.cache.Set(ctx, key, payload, c.ttl); err != nil {
		c.logger.Warn("cache set failed",
			logger.Field{Key: "key", Value: key},
			logger.Field{Key: "error", Value: err})
	}
}

// invalidate deletes the given keys, best effort. Deleting an absent key is
// a no-op, which is what makes invalidation idempotent and commutative.
func (c *cacheStore) invalidate(ctx context.Context, keys ...string) {
	if err := c.cache.Delete(ctx, keys...); err != nil {
		c.logger.Warn("cache invalidation failed",
			logger.Field{Key: "keys", Value: keys},
			logger.Field{Key: "error", Value: err})
	}
}
