// Package render turns a positioned graph into Graphviz output.
//
// [ToDOT] emits a DOT document in which every placed node is pinned to its
// stored coordinates, so the neato engine draws the graph exactly where the
// layout put it. Nodes without a position are left for neato to place.
// [RenderSVG] runs the embedded Graphviz engine over a DOT document and
// returns SVG bytes.
//
//	layout.SetMissingPositions(g, layout.DefaultOptions())
//	svg, err := render.RenderSVG(ctx, render.ToDOT(g, render.Options{}))
package render
