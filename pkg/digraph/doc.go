// Package digraph provides the directed, weighted graph store that every
// algorithm in geograph operates on.
//
// # Overview
//
// A [Graph] owns its nodes and two adjacency indexes keyed by vertex id: one
// for outgoing edges and one for incoming edges. Both indexes hold the same
// [Edge] value for a given ordered pair, so a lookup from either side sees
// identical data. Nodes carry no references back into the adjacency indexes;
// all structure lives in the Graph.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode] and edges with
// [Graph.AddEdge]. Mutations report success with a bool rather than an error:
// a duplicate id, a missing endpoint, a self-loop or a repeated pair is a
// no-op that returns false.
//
//	g := digraph.New()
//	g.AddNode(0, nil)
//	g.AddNode(1, &geo.Point{X: 1, Y: 2})
//	g.AddEdge(0, 1, 1.5)
//
// # Modification Counter
//
// [Graph.ModCount] is a version stamp. It rises by exactly one on every
// successful AddNode, AddEdge, RemoveNode and RemoveEdge, and never on a
// failed call. Removing a node also removes its incident edges, but the whole
// call still counts once. Position updates via [Graph.SetPosition] are not
// structural and leave the counter alone. Consumers use the counter to
// invalidate derived results such as cached shortest paths.
//
// # Identifiers
//
// Node ids are arbitrary integers chosen by the caller. [Graph.AddNodeAuto]
// draws from an id generator owned by the graph instance, so independent
// graphs never share id state.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Algorithms in the
// path, scc and layout packages keep all traversal state in call-scoped
// tables and never write to nodes or edges (layout writes positions only), so
// read-only passes may overlap as long as nothing mutates the graph while
// they run.
package digraph
