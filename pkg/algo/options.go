package algo

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/layout"
	"github.com/matzehuels/geograph/pkg/observability"
)

// Option configures an Algo.
type Option func(*Algo)

// WithLogger sets the logger for I/O and layout messages.
// The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(a *Algo) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCache stores query results in c for ttl. A ttl of 0 uses
// cache.DefaultTTL.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(a *Algo) {
		if c == nil {
			return
		}
		if ttl <= 0 {
			ttl = cache.DefaultTTL
		}
		a.cache = c
		a.ttl = ttl
	}
}

// WithKeyer sets the cache key builder, for example a cache.ScopedKeyer.
func WithKeyer(k cache.Keyer) Option {
	return func(a *Algo) {
		if k != nil {
			a.keyer = k
		}
	}
}

// WithLayout sets the parameters used by SetMissingPositions.
func WithLayout(opts layout.Options) Option {
	return func(a *Algo) { a.layout = opts.WithDefaults() }
}

// WithHooks sets the event hooks. By default the globally registered
// observability hooks are used.
func WithHooks(h observability.GraphHooks) Option {
	return func(a *Algo) { a.hooks = h }
}

// WithCacheHooks sets the cache event hooks. By default the globally
// registered observability hooks are used.
func WithCacheHooks(h observability.CacheHooks) Option {
	return func(a *Algo) { a.cacheH = h }
}
