package digraph

import (
	"cmp"
	"maps"
	"slices"

	"github.com/matzehuels/geograph/pkg/geo"
)

// Graph is a directed, weighted graph keyed by integer node ids.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent mutation without external synchronization.
type Graph struct {
	nodes    map[int]*Node
	out      map[int]map[int]*Edge // src -> dest -> edge
	in       map[int]map[int]*Edge // dest -> src -> edge (same *Edge as out)
	edges    int
	modCount int
	nextID   int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]*Node),
		out:   make(map[int]map[int]*Edge),
		in:    make(map[int]map[int]*Edge),
	}
}

// =============================================================================
// Mutation
// =============================================================================

// AddNode adds a node with the given id and optional position.
// Returns false without changing the graph if the id is already present.
// The position is copied; later changes to *pos do not affect the graph.
func (g *Graph) AddNode(id int, pos *geo.Point) bool {
	n := Node{ID: id}
	if pos != nil {
		p := *pos
		n.Position = &p
	}
	return g.PutNode(n)
}

// AddNodeAuto adds a node under the next free id from the graph's generator
// and returns that id.
func (g *Graph) AddNodeAuto(pos *geo.Point) int {
	id := g.NextID()
	g.AddNode(id, pos)
	return id
}

// NextID returns the smallest unused id at or above the generator cursor.
// The cursor only moves forward, so ids handed out by AddNodeAuto are never
// reissued even after the node is removed.
func (g *Graph) NextID() int {
	for {
		if _, taken := g.nodes[g.nextID]; !taken {
			return g.nextID
		}
		g.nextID++
	}
}

// PutNode stores a complete node record, keeping its payload fields.
// It follows the same rules and counting as AddNode.
func (g *Graph) PutNode(n Node) bool {
	if _, exists := g.nodes[n.ID]; exists {
		return false
	}
	node := n
	if n.Position != nil {
		p := *n.Position
		node.Position = &p
	}
	g.nodes[node.ID] = &node
	g.out[node.ID] = make(map[int]*Edge)
	g.in[node.ID] = make(map[int]*Edge)
	g.modCount++
	return true
}

// AddEdge adds a directed edge src→dest with the given weight.
// Returns false without changing the graph if src == dest, if either
// endpoint is missing, or if the pair already has an edge.
func (g *Graph) AddEdge(src, dest int, weight float64) bool {
	return g.PutEdge(Edge{Src: src, Dest: dest, Weight: weight, Scratch: InvalidTag})
}

// PutEdge stores a complete edge record, keeping its payload fields.
// It follows the same rules and counting as AddEdge.
func (g *Graph) PutEdge(e Edge) bool {
	if e.Src == e.Dest {
		return false
	}
	if _, ok := g.nodes[e.Src]; !ok {
		return false
	}
	if _, ok := g.nodes[e.Dest]; !ok {
		return false
	}
	if _, exists := g.out[e.Src][e.Dest]; exists {
		return false
	}
	edge := e
	g.out[e.Src][e.Dest] = &edge
	g.in[e.Dest][e.Src] = &edge
	g.edges++
	g.modCount++
	return true
}

// RemoveEdge removes the edge src→dest.
// Returns false if no such edge exists.
func (g *Graph) RemoveEdge(src, dest int) bool {
	if !g.unlink(src, dest) {
		return false
	}
	g.modCount++
	return true
}

// RemoveNode removes the node and every edge incident to it, in both
// directions. Returns false if the node does not exist.
// The call counts as a single modification regardless of how many edges
// were removed with the node.
func (g *Graph) RemoveNode(id int) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	for _, dest := range slices.Collect(maps.Keys(g.out[id])) {
		g.unlink(id, dest)
	}
	for _, src := range slices.Collect(maps.Keys(g.in[id])) {
		g.unlink(src, id)
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.nodes, id)
	g.modCount++
	return true
}

func (g *Graph) unlink(src, dest int) bool {
	if _, ok := g.out[src][dest]; !ok {
		return false
	}
	delete(g.out[src], dest)
	delete(g.in[dest], src)
	g.edges--
	return true
}

// SetPosition places node id at p. Position writes are not structural
// changes and do not affect ModCount. Returns false if the node is absent.
func (g *Graph) SetPosition(id int, p geo.Point) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.Position = &p
	return true
}

// RestoreModCount overrides the modification counter. Decoders use it to
// restore the counter recorded in a document after replaying its content.
func (g *Graph) RestoreModCount(n int) { g.modCount = n }

// =============================================================================
// Queries
// =============================================================================

// VertexCount returns the number of nodes.
func (g *Graph) VertexCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored (src, dest) pairs.
func (g *Graph) EdgeCount() int { return g.edges }

// ModCount returns the modification counter.
func (g *Graph) ModCount() int { return g.modCount }

// Nodes returns the id→node mapping. The map is the graph's own index and
// must not be modified; the node pointers may be used to read payload.
func (g *Graph) Nodes() map[int]*Node { return g.nodes }

// Node returns the node with the given id and true, or nil and false.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeIDs returns all node ids in ascending order.
func (g *Graph) NodeIDs() []int { return slices.Sorted(maps.Keys(g.nodes)) }

// OutEdges returns a fresh dest→weight mapping of edges leaving id.
// Returns nil if id is absent.
func (g *Graph) OutEdges(id int) map[int]float64 { return weights(g.out, id) }

// InEdges returns a fresh src→weight mapping of edges entering id.
// Returns nil if id is absent.
func (g *Graph) InEdges(id int) map[int]float64 { return weights(g.in, id) }

func weights(index map[int]map[int]*Edge, id int) map[int]float64 {
	adj, ok := index[id]
	if !ok {
		return nil
	}
	m := make(map[int]float64, len(adj))
	for other, e := range adj {
		m[other] = e.Weight
	}
	return m
}

// Successors returns the ids that id has edges to, in ascending order.
// Returns nil if id is absent or has no outgoing edges.
func (g *Graph) Successors(id int) []int {
	if len(g.out[id]) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(g.out[id]))
}

// Predecessors returns the ids that have edges to id, in ascending order.
func (g *Graph) Predecessors(id int) []int {
	if len(g.in[id]) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(g.in[id]))
}

// OutDegree returns the number of edges leaving id.
func (g *Graph) OutDegree(id int) int { return len(g.out[id]) }

// InDegree returns the number of edges entering id.
func (g *Graph) InDegree(id int) int { return len(g.in[id]) }

// Edge returns the edge src→dest and true, or nil and false. The returned
// edge must be treated as read-only.
func (g *Graph) Edge(src, dest int) (*Edge, bool) {
	e, ok := g.out[src][dest]
	return e, ok
}

// Edges returns every edge ordered by (Src, Dest). The slice is fresh but
// the edges are shared with the graph and must be treated as read-only.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.edges)
	for _, adj := range g.out {
		for _, e := range adj {
			edges = append(edges, e)
		}
	}
	slices.SortFunc(edges, func(a, b *Edge) int {
		if c := cmp.Compare(a.Src, b.Src); c != 0 {
			return c
		}
		return cmp.Compare(a.Dest, b.Dest)
	})
	return edges
}

// Bounds returns the bounding rectangle of all positioned nodes and true,
// or the zero rectangle and false if no node has a position.
func (g *Graph) Bounds() (geo.Interval2D, bool) {
	var (
		r     geo.Interval2D
		found bool
	)
	for _, n := range g.nodes {
		if n.Position == nil {
			continue
		}
		p := *n.Position
		if !found {
			r = geo.Interval2D{X: geo.Interval{Min: p.X, Max: p.X}, Y: geo.Interval{Min: p.Y, Max: p.Y}}
			found = true
			continue
		}
		r.X = r.X.Extend(p.X)
		r.Y = r.Y.Extend(p.Y)
	}
	return r, found
}

// Positioned returns the positions of all placed nodes in ascending id order.
func (g *Graph) Positioned() []geo.Point {
	var pts []geo.Point
	for _, id := range g.NodeIDs() {
		if p := g.nodes[id].Position; p != nil {
			pts = append(pts, *p)
		}
	}
	return pts
}
