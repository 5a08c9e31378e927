package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGraphHooks{}
	g.OnLoad(ctx, "A0.json", 11, time.Second, nil)
	g.OnSave(ctx, "out.json", 11, time.Second, nil)
	g.OnQuery(ctx, OpShortestPath, false, time.Millisecond)
	g.OnLayout(ctx, 5, 0, time.Millisecond)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "path")
	c.OnCacheMiss(ctx, "sccs")
	c.OnCacheSet(ctx, "scc", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Graph() should return NoopGraphHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customGraph := &testGraphHooks{}
	SetGraphHooks(customGraph)
	if Graph() != customGraph {
		t.Error("SetGraphHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Reset() should restore NoopGraphHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGraphHooks{}
	SetGraphHooks(custom)

	// Setting nil should be ignored
	SetGraphHooks(nil)

	if Graph() != custom {
		t.Error("SetGraphHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testGraphHooks struct{ NoopGraphHooks }
type testCacheHooks struct{ NoopCacheHooks }

func TestMultiHooks(t *testing.T) {
	ctx := context.Background()
	a, b := NewStats(), NewStats()

	g := MultiGraphHooks(a, nil, b)
	g.OnQuery(ctx, OpShortestPath, true, time.Millisecond)
	g.OnLayout(ctx, 4, 1, time.Millisecond)

	c := MultiCacheHooks(nil, a, b)
	c.OnCacheHit(ctx, "path")
	c.OnCacheSet(ctx, "path", 10)

	for i, s := range []*Stats{a, b} {
		snap := s.Snapshot()
		if snap.Queries != 1 || snap.Cached != 1 || snap.Placed != 4 || snap.Forced != 1 {
			t.Errorf("stats %d graph counters = %+v", i, snap)
		}
		if snap.Hits != 1 || snap.CacheBytes != 10 {
			t.Errorf("stats %d cache counters = %+v", i, snap)
		}
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := NewStats()
	if s.Snapshot().HitRate() != 0 {
		t.Error("hit rate before any lookup should be 0")
	}

	s.OnLoad(ctx, "a.json", 3, time.Second, nil)
	s.OnLoad(ctx, "b.json", 0, time.Second, errors.New("boom"))
	s.OnSave(ctx, "a.json", 3, time.Second, nil)
	s.OnQuery(ctx, OpConnectedComponents, false, time.Second)
	s.OnCacheHit(ctx, "sccs")
	s.OnCacheMiss(ctx, "sccs")
	s.OnCacheMiss(ctx, "path")
	s.OnCacheHit(ctx, "path")

	snap := s.Snapshot()
	want := StatsSnapshot{
		Loads: 2, LoadErrors: 1, Saves: 1, Queries: 1,
		Hits: 2, Misses: 2, Busy: 4 * time.Second,
	}
	if snap != want {
		t.Errorf("Snapshot = %+v, want %+v", snap, want)
	}
	if snap.HitRate() != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", snap.HitRate())
	}
}

func TestStatsConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewStats()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.OnCacheMiss(ctx, "path")
			}
		}()
	}
	wg.Wait()
	if got := s.Snapshot().Misses; got != 800 {
		t.Errorf("Misses = %d, want 800", got)
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	h.OnLoad(ctx, "roads.json", 12, time.Millisecond, nil)
	h.OnSave(ctx, "out.json", 0, time.Millisecond, errors.New("disk full"))
	h.OnQuery(ctx, OpShortestPath, true, time.Millisecond)
	h.OnCacheMiss(ctx, "sccs")

	out := buf.String()
	for _, want := range []string{"path=roads.json", "nodes=12", "disk full", "op=shortest_path", "cached=true", "cache miss"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	quiet := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	quiet.OnLayout(ctx, 3, 0, time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("debug events should be filtered at info level: %s", buf.String())
	}
}
