// Package cache is a read-side latency optimization, never a correctness
// mechanism: every caller must behave identically with the Disabled cache.
package cache

import "context"

// Cache maps string keys to opaque byte values with a fixed TTL chosen by the
// implementation. Get reports a miss for absent or expired entries.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Disabled is a Cache that stores nothing and always misses.
type Disabled struct{}

func (Disabled) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }
func (Disabled) Set(ctx context.Context, key string, value []byte) error   { return nil }
func (Disabled) Delete(ctx context.Context, key string) error              { return nil }
