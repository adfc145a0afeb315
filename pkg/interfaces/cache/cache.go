package cache

import (
	"context"
	"time"
)

// Cache is the minimal key/value contract the catalog needs. Values are raw
// bytes so implementations stay interoperable: the service layer stores
// JSON payloads shaped like API responses, never language-specific blobs.
//
// Get distinguishes a miss (ok == false, err == nil) from a backend failure
// (err != nil); callers treat both as a miss but may log the latter.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Flush drops every key. The cache is advisory: a full flush must only
	// ever cost latency, never correctness.
	Flush(ctx context.Context) error
}

// Nop cache returns misses and ignores writes.
type Nop struct{}

var _ Cache = (*Nop)(nil)

func (n *Nop) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }
func (n *Nop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (n *Nop) Delete(ctx context.Context, keys ...string) error { return nil }
func (n *Nop) Flush(ctx context.Context) error                  { return nil }
