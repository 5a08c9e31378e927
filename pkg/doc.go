// Package pkg provides the core libraries for geograph, a directed weighted
// graph engine with positioned nodes.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [geo] and [digraph] - Geometry primitives and the graph store
//  2. [digraph/path], [digraph/scc] and [layout] - Algorithms over the store
//  3. [graph] and [io] - The JSON document schema and file import/export
//  4. [algo], [cache], [observability] and [render] - The facade that ties
//     loading, querying and layout together, plus caching, hooks and drawing
//
// # Architecture
//
// The typical data flow:
//
//	JSON document
//	     ↓
//	[io] / [graph] (tolerant decode)
//	     ↓
//	[digraph] store
//	     ↓
//	[algo] (shortest paths, components, layout; cached)
//	     ↓
//	JSON / DOT / SVG output
//
// # Quick Start
//
//	a := algo.New(nil)
//	if !a.Load("roads.json") {
//	    return
//	}
//	dist, path := a.ShortestPath(0, 7)
//	comps := a.ConnectedComponents()
//	a.SetMissingPositions()
//	a.Save("roads.json")
//
// [geo]: github.com/matzehuels/geograph/pkg/geo
// [digraph]: github.com/matzehuels/geograph/pkg/digraph
// [digraph/path]: github.com/matzehuels/geograph/pkg/digraph/path
// [digraph/scc]: github.com/matzehuels/geograph/pkg/digraph/scc
// [layout]: github.com/matzehuels/geograph/pkg/layout
// [graph]: github.com/matzehuels/geograph/pkg/graph
// [io]: github.com/matzehuels/geograph/pkg/io
// [algo]: github.com/matzehuels/geograph/pkg/algo
// [cache]: github.com/matzehuels/geograph/pkg/cache
// [observability]: github.com/matzehuels/geograph/pkg/observability
// [render]: github.com/matzehuels/geograph/pkg/render
package pkg
