package cache

import (
	"context"
	"time"
)

// NullCache misses every read and drops every write. Algo uses it when no
// cache is configured, and the CLI falls back to it when the cache directory
// cannot be opened. Operations still report a canceled context.
type NullCache struct{}

// NewNullCache returns a NullCache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(ctx context.Context, _ string) ([]byte, bool, error) {
	return nil, false, ctx.Err()
}

func (NullCache) Set(ctx context.Context, _ string, _ []byte, _ time.Duration) error {
	return ctx.Err()
}

func (NullCache) Delete(ctx context.Context, _ string) error { return ctx.Err() }

func (NullCache) Close() error { return nil }
