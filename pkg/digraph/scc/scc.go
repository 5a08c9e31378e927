// Package scc decomposes a [digraph.Graph] into strongly connected
// components with Tarjan's algorithm.
//
// The depth-first search runs on an explicit frame stack instead of the call
// stack, so long chains of nodes do not grow goroutine stack usage. Roots are
// tried in ascending id order and successors are expanded in ascending id
// order, which makes the output fully deterministic.
//
// Components are returned in the order their roots are finalized. That is a
// reverse topological order of the condensation: no component has an edge
// into a component that appears after it. Members of each component are
// listed in discovery order.
//
// [digraph.Graph]: github.com/matzehuels/geograph/pkg/digraph
package scc

import "github.com/matzehuels/geograph/pkg/digraph"

// Components partitions every vertex of g into strongly connected components.
// Returns nil for an empty graph.
func Components(g *digraph.Graph) [][]int {
	t := newTarjan(g)
	for _, id := range g.NodeIDs() {
		if _, seen := t.index[id]; !seen {
			t.run(id)
		}
	}
	return t.components
}

// ComponentOf returns the strongly connected component containing id, or nil
// if id is not in the graph. Only the part of the graph reachable from id is
// traversed.
func ComponentOf(g *digraph.Graph, id int) []int {
	if !g.HasNode(id) {
		return nil
	}
	t := newTarjan(g)
	t.run(id)
	// id is the traversal root, so its component is finalized last.
	return t.components[len(t.components)-1]
}

// frame is one level of the explicit depth-first search.
type frame struct {
	id   int
	succ []int
	next int
}

type tarjan struct {
	g          *digraph.Graph
	counter    int
	index      map[int]int // discovery number
	lowlink    map[int]int
	onStack    map[int]bool
	stack      []int
	frames     []frame
	components [][]int
}

func newTarjan(g *digraph.Graph) *tarjan {
	n := g.VertexCount()
	return &tarjan{
		g:       g,
		index:   make(map[int]int, n),
		lowlink: make(map[int]int, n),
		onStack: make(map[int]bool, n),
	}
}

func (t *tarjan) visit(id int) {
	t.index[id] = t.counter
	t.lowlink[id] = t.counter
	t.counter++
	t.stack = append(t.stack, id)
	t.onStack[id] = true
	t.frames = append(t.frames, frame{id: id, succ: t.g.Successors(id)})
}

func (t *tarjan) run(root int) {
	t.visit(root)
	for len(t.frames) > 0 {
		f := &t.frames[len(t.frames)-1]
		if f.next < len(f.succ) {
			w := f.succ[f.next]
			f.next++
			if _, seen := t.index[w]; !seen {
				t.visit(w)
				continue
			}
			if t.onStack[w] {
				t.lowlink[f.id] = min(t.lowlink[f.id], t.index[w])
			}
			continue
		}

		v := f.id
		t.frames = t.frames[:len(t.frames)-1]
		if t.lowlink[v] == t.index[v] {
			t.emit(v)
		}
		if len(t.frames) > 0 {
			parent := t.frames[len(t.frames)-1].id
			t.lowlink[parent] = min(t.lowlink[parent], t.lowlink[v])
		}
	}
}

// emit pops the Tarjan stack down to and including root as one component.
func (t *tarjan) emit(root int) {
	i := len(t.stack) - 1
	for t.stack[i] != root {
		i--
	}
	comp := make([]int, len(t.stack)-i)
	copy(comp, t.stack[i:])
	for _, id := range comp {
		t.onStack[id] = false
	}
	t.stack = t.stack[:i]
	t.components = append(t.components, comp)
}
