// Package cache stores derived query results keyed by graph fingerprint.
//
// Shortest paths and component partitions depend only on a graph's
// structure. The algo package stores them under keys built by a [Keyer]
// from a structural [Fingerprint], so a result is reused until the graph
// is mutated and never served for a different structure.
//
// Three backends implement [Cache]:
//
//   - [MemoryCache]: process-local map with per-entry TTL
//   - [FileCache]: one file per entry, shared between CLI runs
//   - [NullCache]: stores nothing (the default)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
// A ttl of 0 stores an entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultTTL is the lifetime of cached query results.
const DefaultTTL = 10 * time.Minute
