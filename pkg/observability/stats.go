package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Stats counts events. It implements both GraphHooks and CacheHooks and is
// safe for concurrent use.
type Stats struct {
	loads, loadErrors atomic.Int64
	saves, saveErrors atomic.Int64
	queries, cached   atomic.Int64
	placed, forced    atomic.Int64
	hits, misses      atomic.Int64
	cacheBytes        atomic.Int64
	busy              atomic.Int64 // nanoseconds spent in reported operations
}

// NewStats returns zeroed counters.
func NewStats() *Stats { return &Stats{} }

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Loads, LoadErrors int64
	Saves, SaveErrors int64
	Queries, Cached   int64
	Placed, Forced    int64
	Hits, Misses      int64
	CacheBytes        int64
	Busy              time.Duration
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s StatsSnapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Snapshot copies the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Loads:      s.loads.Load(),
		LoadErrors: s.loadErrors.Load(),
		Saves:      s.saves.Load(),
		SaveErrors: s.saveErrors.Load(),
		Queries:    s.queries.Load(),
		Cached:     s.cached.Load(),
		Placed:     s.placed.Load(),
		Forced:     s.forced.Load(),
		Hits:       s.hits.Load(),
		Misses:     s.misses.Load(),
		CacheBytes: s.cacheBytes.Load(),
		Busy:       time.Duration(s.busy.Load()),
	}
}

func (s *Stats) OnLoad(_ context.Context, _ string, _ int, d time.Duration, err error) {
	s.loads.Add(1)
	if err != nil {
		s.loadErrors.Add(1)
	}
	s.busy.Add(int64(d))
}

func (s *Stats) OnSave(_ context.Context, _ string, _ int, d time.Duration, err error) {
	s.saves.Add(1)
	if err != nil {
		s.saveErrors.Add(1)
	}
	s.busy.Add(int64(d))
}

func (s *Stats) OnQuery(_ context.Context, _ string, cached bool, d time.Duration) {
	s.queries.Add(1)
	if cached {
		s.cached.Add(1)
	}
	s.busy.Add(int64(d))
}

func (s *Stats) OnLayout(_ context.Context, placed, forced int, d time.Duration) {
	s.placed.Add(int64(placed))
	s.forced.Add(int64(forced))
	s.busy.Add(int64(d))
}

func (s *Stats) OnCacheHit(context.Context, string)  { s.hits.Add(1) }
func (s *Stats) OnCacheMiss(context.Context, string) { s.misses.Add(1) }

func (s *Stats) OnCacheSet(_ context.Context, _ string, size int) {
	s.cacheBytes.Add(int64(size))
}

var (
	_ GraphHooks = (*Stats)(nil)
	_ CacheHooks = (*Stats)(nil)
)
