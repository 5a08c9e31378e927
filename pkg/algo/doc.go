// Package algo is the high-level entry point to geograph.
//
// An [Algo] manages one graph and exposes the whole engine through it:
// file loading and saving, shortest paths, strongly connected components
// and automatic layout.
//
//	a := algo.New(nil, algo.WithLogger(logger))
//	if !a.Load("data/A5.json") {
//	    // the cause was logged; a still holds its previous graph
//	}
//	dist, path := a.ShortestPath(0, 7)
//	comps := a.ConnectedComponents()
//	a.SetMissingPositions()
//	a.Save("out/A5.json")
//
// # Error Reporting
//
// Load and Save never return errors. Failures are logged with their error
// code and reported as false, and a failed Load leaves the current graph in
// place. Use pkg/io directly when the error itself is needed.
//
// # Caching
//
// Path and component results can be stored in a [cache.Cache] (see
// [WithCache]). Keys are built from a structural fingerprint that is
// recomputed whenever the graph's modification counter moves, so any
// mutation, whether through Algo or through [Algo.Graph], invalidates
// earlier results.
//
// # Concurrency
//
// Every method takes the same mutex, so an Algo may be shared between
// goroutines. The graph returned by [Algo.Graph] is not protected; callers
// that mutate it directly must not do so while other goroutines use the
// Algo.
package algo
