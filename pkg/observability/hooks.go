// Package observability reports engine events to pluggable hooks.
//
// The algo package emits an event for every load, save, query, layout pass
// and cache lookup. Consumers receive them by implementing [GraphHooks] and
// [CacheHooks]. The package ships three implementations: no-op defaults,
// [Stats] (atomic counters) and [LogHooks] (structured debug logging). Use
// [MultiGraphHooks] and [MultiCacheHooks] to combine them.
//
// Hooks are chosen per Algo with algo.WithHooks, or process-wide with
// [SetGraphHooks] and [SetCacheHooks]:
//
//	stats := observability.NewStats()
//	observability.SetGraphHooks(stats)
//	observability.SetCacheHooks(stats)
package observability

import (
	"context"
	"sync"
	"time"
)

// Query operation names passed to GraphHooks.OnQuery.
const (
	OpShortestPath        = "shortest_path"
	OpConnectedComponent  = "connected_component"
	OpConnectedComponents = "connected_components"
)

// GraphHooks receives graph lifecycle and query events.
type GraphHooks interface {
	// OnLoad and OnSave report file I/O. nodeCount is 0 when err is set.
	OnLoad(ctx context.Context, path string, nodeCount int, duration time.Duration, err error)
	OnSave(ctx context.Context, path string, nodeCount int, duration time.Duration, err error)

	// OnQuery reports one path or component query; cached is true when
	// the result came from a cache.
	OnQuery(ctx context.Context, op string, cached bool, duration time.Duration)

	// OnLayout reports a layout pass.
	OnLayout(ctx context.Context, placed, forced int, duration time.Duration)
}

// CacheHooks receives cache lookups and writes. keyType is the key
// namespace ("path", "scc", "sccs").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopGraphHooks ignores every event.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnLoad(context.Context, string, int, time.Duration, error) {}
func (NoopGraphHooks) OnSave(context.Context, string, int, time.Duration, error) {}
func (NoopGraphHooks) OnQuery(context.Context, string, bool, time.Duration)      {}
func (NoopGraphHooks) OnLayout(context.Context, int, int, time.Duration)         {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// MultiGraphHooks fans every event out to hs in order. Nil entries are skipped.
func MultiGraphHooks(hs ...GraphHooks) GraphHooks {
	out := make(multiGraph, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

type multiGraph []GraphHooks

func (m multiGraph) OnLoad(ctx context.Context, path string, n int, d time.Duration, err error) {
	for _, h := range m {
		h.OnLoad(ctx, path, n, d, err)
	}
}

func (m multiGraph) OnSave(ctx context.Context, path string, n int, d time.Duration, err error) {
	for _, h := range m {
		h.OnSave(ctx, path, n, d, err)
	}
}

func (m multiGraph) OnQuery(ctx context.Context, op string, cached bool, d time.Duration) {
	for _, h := range m {
		h.OnQuery(ctx, op, cached, d)
	}
}

func (m multiGraph) OnLayout(ctx context.Context, placed, forced int, d time.Duration) {
	for _, h := range m {
		h.OnLayout(ctx, placed, forced, d)
	}
}

// MultiCacheHooks fans every event out to hs in order. Nil entries are skipped.
func MultiCacheHooks(hs ...CacheHooks) CacheHooks {
	out := make(multiCache, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

type multiCache []CacheHooks

func (m multiCache) OnCacheHit(ctx context.Context, k string) {
	for _, h := range m {
		h.OnCacheHit(ctx, k)
	}
}

func (m multiCache) OnCacheMiss(ctx context.Context, k string) {
	for _, h := range m {
		h.OnCacheMiss(ctx, k)
	}
}

func (m multiCache) OnCacheSet(ctx context.Context, k string, size int) {
	for _, h := range m {
		h.OnCacheSet(ctx, k, size)
	}
}

var (
	hooksMu    sync.RWMutex
	graphHooks GraphHooks = NoopGraphHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
)

// SetGraphHooks replaces the process-wide graph hooks. nil is ignored.
func SetGraphHooks(h GraphHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	graphHooks = h
	hooksMu.Unlock()
}

// SetCacheHooks replaces the process-wide cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	cacheHooks = h
	hooksMu.Unlock()
}

// Graph returns the process-wide graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Cache returns the process-wide cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	graphHooks = NoopGraphHooks{}
	cacheHooks = NoopCacheHooks{}
	hooksMu.Unlock()
}
