package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
	"github.com/redis/go-redis/v9"
)

// Cache implements the catalog cache contract over a Redis backend. Errors
// are returned as-is; the service layer treats them as misses.
type Cache struct {
	client redis.UniversalClient
}

var _ cache.Cache = (*Cache)(nil)

// Options configure the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// New dials Redis with the supplied options.
func New(opts Options) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
	}
}

// NewFromClient wraps an existing client, letting hosts share a pool.
func NewFromClient(client redis.UniversalClient) *Cache {
	return &Cache{client: client}
}

// Ping verifies connectivity, typically at startup.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Flush(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}
