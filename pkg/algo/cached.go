package algo

import (
	"context"
	"encoding/json"
	"math"
)

// pathEntry is the cached form of a shortest-path result. JSON has no
// infinity, so unreachable results are stored with Reachable false.
type pathEntry struct {
	Reachable bool    `json:"reachable"`
	Dist      float64 `json:"dist,omitempty"`
	Path      []int   `json:"path,omitempty"`
}

func newPathEntry(dist float64, p []int) pathEntry {
	if math.IsInf(dist, 1) {
		return pathEntry{}
	}
	return pathEntry{Reachable: true, Dist: dist, Path: p}
}

func (e pathEntry) result() (float64, []int) {
	if !e.Reachable {
		return math.Inf(1), nil
	}
	return e.Dist, e.Path
}

// lookup decodes the entry under key into v. Cache and decode errors count
// as misses.
func (a *Algo) lookup(ctx context.Context, keyType, key string, v any) bool {
	data, hit, err := a.cache.Get(ctx, key)
	if err != nil {
		a.logger.Debug("cache get failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		a.cacheHooks().OnCacheMiss(ctx, keyType)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		a.logger.Debug("cache entry unreadable", "type", keyType, "err", err)
		_ = a.cache.Delete(ctx, key)
		a.cacheHooks().OnCacheMiss(ctx, keyType)
		return false
	}
	a.cacheHooks().OnCacheHit(ctx, keyType)
	return true
}

func (a *Algo) store(ctx context.Context, keyType, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, data, a.ttl); err != nil {
		a.logger.Debug("cache set failed", "type", keyType, "err", err)
		return
	}
	a.cacheHooks().OnCacheSet(ctx, keyType, len(data))
}
