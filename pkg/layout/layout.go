package layout

import (
	"math"

	"github.com/matzehuels/geograph/pkg/digraph"
	"github.com/matzehuels/geograph/pkg/digraph/scc"
	"github.com/matzehuels/geograph/pkg/geo"
)

const degrees = 360.0

// Result summarizes a layout pass.
type Result struct {
	Placed     int     // nodes that received a position
	Components int     // components processed
	Forced     int     // placements accepted because MaxRounds was hit
	Radius     float64 // initial search radius
	Separation float64 // minimum distance kept from positioned nodes
}

// WorldBounds returns the bounding rectangle of the positioned nodes of g,
// or the unit square if none are positioned. An axis on which all positions
// coincide is stretched to include 0.
func WorldBounds(g *digraph.Graph) geo.Interval2D {
	r, ok := g.Bounds()
	if !ok {
		return geo.UnitSquare
	}
	if r.X.Degenerate() {
		r.X = r.X.Extend(0)
	}
	if r.Y.Degenerate() {
		r.Y = r.Y.Extend(0)
	}
	return r
}

// SetMissingPositions places every node of g that lacks a position and
// leaves positioned nodes untouched.
func SetMissingPositions(g *digraph.Graph, opts Options) Result {
	o := opts.WithDefaults()
	bounds := WorldBounds(g)

	r0 := bounds.X.Length() / float64(o.NodesInXAxis)
	if r0 <= 0 {
		// Every position sits at x == 0; fall back to unit width.
		r0 = 1 / float64(o.NodesInXAxis)
	}

	p := &placer{
		g:       g,
		opts:    o,
		radius:  r0,
		sep:     r0 / o.RadiusDivider,
		visited: make(map[int]bool, g.VertexCount()),
	}

	comps := scc.Components(g)
	factor := 1.0
	for k, comp := range comps {
		var ratio geo.Point
		switch k % 3 {
		case 0:
			ratio = geo.Point{X: o.MultiplierX * factor, Y: o.MultiplierY * factor}
			factor += 0.5
		case 1:
			ratio = geo.Point{Y: o.MultiplierY * factor}
		default:
			ratio = geo.Point{X: o.MultiplierX * factor}
		}
		anchor := bounds.FromRatio(ratio)
		for _, id := range comp {
			p.walk(id, anchor)
		}
	}

	return Result{
		Placed:     p.placed,
		Components: len(comps),
		Forced:     p.forced,
		Radius:     r0,
		Separation: p.sep,
	}
}

type placer struct {
	g       *digraph.Graph
	opts    Options
	radius  float64
	sep     float64
	visited map[int]bool
	placed  int
	forced  int
}

// frame is one level of the depth-first placement walk.
type frame struct {
	id    int
	angle float64 // sweep start, in degrees
	succ  []int
	next  int
}

// walk positions root (at anchor, if it has no position) and then every
// unpositioned node reachable from it through unpositioned nodes.
func (p *placer) walk(root int, anchor geo.Point) {
	if p.visited[root] {
		return
	}
	n, _ := p.g.Node(root)
	if !n.HasPosition() {
		pos := anchor
		if !p.free(anchor) {
			pos, _ = p.search(anchor, 0)
		}
		p.place(root, pos)
	}

	p.visited[root] = true
	stack := []frame{{id: root, succ: p.g.Successors(root)}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.succ) {
			stack = stack[:len(stack)-1]
			continue
		}
		w := f.succ[f.next]
		f.next++

		nw, _ := p.g.Node(w)
		if nw.HasPosition() {
			continue
		}
		center, _ := p.g.Node(f.id)
		pos, angle := p.search(*center.Position, f.angle)
		p.place(w, pos)

		p.visited[w] = true
		stack = append(stack, frame{id: w, angle: angle, succ: p.g.Successors(w)})
	}
}

func (p *placer) place(id int, pos geo.Point) {
	p.g.SetPosition(id, pos)
	p.placed++
}

// search sweeps circles of growing radius around center, starting just past
// angle, and returns the first free point together with its angle.
func (p *placer) search(center geo.Point, angle float64) (geo.Point, float64) {
	n := p.opts.NodesInCircle
	step := degrees / float64(n)
	r := p.radius
	for round := 0; ; round++ {
		var (
			cand geo.Point
			deg  float64
		)
		for i := 1; i <= n; i++ {
			deg = math.Mod(angle+step*float64(i), degrees)
			rad := deg * math.Pi / 180
			cand = geo.Point{X: center.X + r*math.Cos(rad), Y: center.Y + r*math.Sin(rad)}
			if p.free(cand) {
				return cand, deg
			}
		}
		if p.opts.MaxRounds > 0 && round+1 >= p.opts.MaxRounds {
			p.forced++
			return cand, deg
		}
		r *= p.opts.RadiusGrowth
	}
}

// free reports whether c is farther than the separation radius from every
// positioned node.
func (p *placer) free(c geo.Point) bool {
	for _, n := range p.g.Nodes() {
		if n.Position != nil && c.Distance(*n.Position) <= p.sep {
			return false
		}
	}
	return true
}
