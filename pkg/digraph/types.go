package digraph

import "github.com/matzehuels/geograph/pkg/geo"

// InvalidTag is the scratch value of an edge that was created without one.
const InvalidTag = -1

// Node is a vertex in the graph.
//
// ID is fixed once the node is stored. Position is nil until a caller or the
// layout engine assigns one. Weight, Label and Scratch are payload owned by
// the caller: the graph stores and serializes them but no algorithm reads or
// writes them.
type Node struct {
	ID       int
	Position *geo.Point
	Weight   float64
	Label    string
	Scratch  int
}

// HasPosition reports whether the node has been placed.
func (n *Node) HasPosition() bool { return n.Position != nil }

// Edge is a directed, weighted arc between two stored nodes.
//
// Edges are immutable once stored: the graph never rewrites Src, Dest or
// Weight in place. To change a weight, remove the edge and add it again.
type Edge struct {
	Src     int
	Dest    int
	Weight  float64
	Label   string
	Scratch int
}
