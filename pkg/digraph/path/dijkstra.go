package path

import (
	"container/heap"
	"math"
	"slices"

	"github.com/matzehuels/geograph/pkg/digraph"
)

// Tree is the result of a single-source search: the best known distance to
// every reachable node and the predecessor that achieves it.
type Tree struct {
	source int
	dist   map[int]float64
	prev   map[int]int
}

// ShortestPath returns the length of the shortest path from src to dest and
// the node ids along it, src and dest included.
//
// If either endpoint is absent, or dest cannot be reached from src, it
// returns (+Inf, nil). These are not errors.
func ShortestPath(g *digraph.Graph, src, dest int) (float64, []int) {
	if !g.HasNode(src) || !g.HasNode(dest) {
		return math.Inf(1), nil
	}
	t := From(g, src)
	route := t.PathTo(dest)
	if route == nil {
		return math.Inf(1), nil
	}
	return t.Dist(dest), route
}

// From runs Dijkstra from src over the whole graph. If src is absent the
// returned tree reaches nothing.
func From(g *digraph.Graph, src int) *Tree {
	r := &runner{
		g:       g,
		dist:    make(map[int]float64, g.VertexCount()),
		prev:    make(map[int]int),
		visited: make(map[int]bool, g.VertexCount()),
	}
	if g.HasNode(src) {
		r.init(src)
		r.process()
	}
	return &Tree{source: src, dist: r.dist, prev: r.prev}
}

// Source returns the id the tree was grown from.
func (t *Tree) Source() int { return t.source }

// Dist returns the shortest distance to id, or +Inf if id was not reached.
func (t *Tree) Dist(id int) float64 {
	if d, ok := t.dist[id]; ok {
		return d
	}
	return math.Inf(1)
}

// Reachable returns the ids reached by the search in ascending order,
// the source included.
func (t *Tree) Reachable() []int {
	ids := make([]int, 0, len(t.dist))
	for id := range t.dist {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// PathTo walks predecessor links back from id to the source and returns the
// route in travel order. Returns nil if id was not reached.
func (t *Tree) PathTo(id int) []int {
	if _, ok := t.dist[id]; !ok {
		return nil
	}
	route := []int{id}
	for cur := id; cur != t.source; {
		p, ok := t.prev[cur]
		if !ok {
			return nil
		}
		route = append(route, p)
		cur = p
	}
	slices.Reverse(route)
	return route
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *digraph.Graph
	dist    map[int]float64 // id -> best distance so far
	prev    map[int]int     // id -> predecessor on the best path
	visited map[int]bool    // ids whose distance is final
	pq      nodePQ
}

func (r *runner) init(src int) {
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: src, dist: 0})
}

func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every unvisited successor of u.
func (r *runner) relax(u int) {
	for v, w := range r.g.OutEdges(u) {
		if r.visited[v] {
			continue
		}
		nd := r.dist[u] + w
		if cur, ok := r.dist[v]; ok && nd >= cur {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry. Entries that lose to a later push for the same id
// stay in the heap and are skipped on pop.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap ordered by distance, then by id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
