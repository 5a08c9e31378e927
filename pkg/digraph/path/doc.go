// Package path computes single-source shortest paths with Dijkstra's
// algorithm over a [digraph.Graph].
//
// # Algorithm
//
// The search keeps a min-heap of (distance, node id) entries. Entries with
// equal distance are ordered by node id, so the traversal and therefore the
// chosen path among equal-cost alternatives are deterministic. Improved
// distances are pushed as new entries ("lazy decrease-key") and stale entries
// are skipped when popped. The search runs until the heap is exhausted.
//
// All working state (distances, predecessors, the visited set) is local to
// the call, so nothing is written to the graph and two searches over the
// same unmodified graph may run concurrently.
//
// Edge weights are expected to be non-negative. Negative weights do not break
// termination but the reported distances are then not guaranteed minimal.
//
// # Complexity
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the tables and the lazy heap
//
// # Usage
//
//	dist, route := path.ShortestPath(g, 0, 7)
//	if math.IsInf(dist, 1) {
//	    // unreachable, or an endpoint is absent
//	}
//
// Use [From] when several destinations share a source.
//
// [digraph.Graph]: github.com/matzehuels/geograph/pkg/digraph
package path
