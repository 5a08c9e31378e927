package algo

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/digraph/path"
	"github.com/matzehuels/geograph/pkg/digraph/scc"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/geo"
	pkgio "github.com/matzehuels/geograph/pkg/io"
	"github.com/matzehuels/geograph/pkg/layout"
	"github.com/matzehuels/geograph/pkg/observability"
)

// Algo runs graph algorithms over one managed graph.
type Algo struct {
	mu sync.Mutex
	g  *digraph.Graph

	logger *log.Logger
	cache  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	layout layout.Options
	hooks  observability.GraphHooks
	cacheH observability.CacheHooks

	// fingerprint memo, valid while g and its counter are unchanged
	fp      string
	fpGraph *digraph.Graph
	fpMod   int
}

// New creates an Algo managing g. A nil g starts with an empty graph.
func New(g *digraph.Graph, opts ...Option) *Algo {
	if g == nil {
		g = digraph.New()
	}
	a := &Algo{
		g:      g,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		cache:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		ttl:    cache.DefaultTTL,
		layout: layout.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Graph returns the managed graph. The graph itself is not locked: reading
// or mutating it while other goroutines run queries on a is a data race.
// Use Update or the mutation methods below for concurrent use.
func (a *Algo) Graph() *digraph.Graph {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.g
}

// Update runs fn on the managed graph while holding the lock, so fn never
// overlaps a query, load or save. fn must not call methods on a.
func (a *Algo) Update(fn func(g *digraph.Graph)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.g)
}

// AddNode adds node id under the lock. See digraph.Graph.AddNode.
func (a *Algo) AddNode(id int, pos *geo.Point) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.g.AddNode(id, pos)
}

// AddEdge adds or reweights the edge src->dest under the lock.
func (a *Algo) AddEdge(src, dest int, w float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.g.AddEdge(src, dest, w)
}

// RemoveNode removes id and its incident edges under the lock.
func (a *Algo) RemoveNode(id int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.g.RemoveNode(id)
}

// RemoveEdge removes the edge src->dest under the lock.
func (a *Algo) RemoveEdge(src, dest int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.g.RemoveEdge(src, dest)
}

// Load replaces the managed graph with the document at path. On failure the
// cause is logged, the current graph is kept and false is returned.
func (a *Algo) Load(path string) bool {
	return a.LoadFile(context.Background(), path) == nil
}

// LoadFile is Load returning the coded cause instead of false.
func (a *Algo) LoadFile(ctx context.Context, path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	g, err := pkgio.ImportJSON(path)
	elapsed := time.Since(start)
	if err != nil {
		a.graphHooks().OnLoad(ctx, path, 0, elapsed, err)
		a.logger.Error("load failed", "path", path, "code", errors.GetCode(err), "err", err)
		return err
	}
	a.graphHooks().OnLoad(ctx, path, g.VertexCount(), elapsed, nil)

	a.g = g
	a.logger.Debug("loaded graph",
		"path", path,
		"nodes", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", elapsed)
	return nil
}

// Save writes the managed graph to path in the canonical schema. On failure
// the cause is logged and false is returned.
func (a *Algo) Save(path string) bool {
	return a.SaveFile(context.Background(), path) == nil
}

// SaveFile is Save returning the coded cause instead of false.
func (a *Algo) SaveFile(ctx context.Context, path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	err := pkgio.ExportJSON(a.g, path)
	elapsed := time.Since(start)
	a.graphHooks().OnSave(ctx, path, a.g.VertexCount(), elapsed, err)
	if err != nil {
		a.logger.Error("save failed", "path", path, "code", errors.GetCode(err), "err", err)
		return err
	}
	a.logger.Debug("saved graph",
		"path", path,
		"nodes", a.g.VertexCount(),
		"edges", a.g.EdgeCount(),
		"duration", elapsed)
	return nil
}

// ShortestPath returns the weight of the cheapest path src→dest and its
// node ids, or (+Inf, nil) if dest cannot be reached or an id is unknown.
func (a *Algo) ShortestPath(src, dest int) (float64, []int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx := context.Background()
	start := time.Now()
	key := a.keyer.PathKey(a.fingerprint(), src, dest)

	var hit pathEntry
	if a.lookup(ctx, "path", key, &hit) {
		a.graphHooks().OnQuery(ctx, observability.OpShortestPath, true, time.Since(start))
		return hit.result()
	}

	dist, p := path.ShortestPath(a.g, src, dest)
	a.store(ctx, "path", key, newPathEntry(dist, p))
	a.graphHooks().OnQuery(ctx, observability.OpShortestPath, false, time.Since(start))
	return dist, p
}

// ConnectedComponent returns the strongly connected component containing
// id, or nil if id is not in the graph.
func (a *Algo) ConnectedComponent(id int) []int {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx := context.Background()
	start := time.Now()
	key := a.keyer.ComponentKey(a.fingerprint(), id)

	var hit []int
	if a.lookup(ctx, "scc", key, &hit) {
		a.graphHooks().OnQuery(ctx, observability.OpConnectedComponent, true, time.Since(start))
		return hit
	}

	comp := scc.ComponentOf(a.g, id)
	a.store(ctx, "scc", key, comp)
	a.graphHooks().OnQuery(ctx, observability.OpConnectedComponent, false, time.Since(start))
	return comp
}

// ConnectedComponents returns every strongly connected component.
func (a *Algo) ConnectedComponents() [][]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx := context.Background()
	start := time.Now()
	key := a.keyer.ComponentsKey(a.fingerprint())

	var hit [][]int
	if a.lookup(ctx, "sccs", key, &hit) {
		a.graphHooks().OnQuery(ctx, observability.OpConnectedComponents, true, time.Since(start))
		return hit
	}

	comps := scc.Components(a.g)
	a.store(ctx, "sccs", key, comps)
	a.graphHooks().OnQuery(ctx, observability.OpConnectedComponents, false, time.Since(start))
	return comps
}

// SetMissingPositions places every node that has no position.
func (a *Algo) SetMissingPositions() layout.Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	res := layout.SetMissingPositions(a.g, a.layout)
	elapsed := time.Since(start)
	a.graphHooks().OnLayout(context.Background(), res.Placed, res.Forced, elapsed)

	a.logger.Debug("set missing positions",
		"placed", res.Placed,
		"components", res.Components,
		"forced", res.Forced,
		"duration", elapsed)
	if res.Forced > 0 {
		a.logger.Warn("layout accepted crowded positions", "forced", res.Forced, "max_rounds", a.layout.MaxRounds)
	}
	return res
}

func (a *Algo) graphHooks() observability.GraphHooks {
	if a.hooks != nil {
		return a.hooks
	}
	return observability.Graph()
}

// fingerprint returns the structural fingerprint of the managed graph,
// recomputing it only after a mutation or a Load.
func (a *Algo) fingerprint() string {
	if a.fpGraph != a.g || a.fpMod != a.g.ModCount() || a.fp == "" {
		a.fp = cache.Fingerprint(a.g)
		a.fpGraph = a.g
		a.fpMod = a.g.ModCount()
	}
	return a.fp
}

func (a *Algo) cacheHooks() observability.CacheHooks {
	if a.cacheH != nil {
		return a.cacheH
	}
	return observability.Cache()
}
