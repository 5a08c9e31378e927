package geo

import "fmt"

// Interval is the closed range [Min, Max] on one axis.
type Interval struct {
	Min float64
	Max float64
}

// Length returns Max - Min.
func (r Interval) Length() float64 { return r.Max - r.Min }

// Degenerate reports whether the interval has zero length. Ratio is
// undefined on a degenerate interval.
func (r Interval) Degenerate() bool { return r.Length() == 0 }

// Ratio maps v to its relative position in the interval: Min maps to 0 and
// Max maps to 1. Values outside the interval map outside [0, 1].
func (r Interval) Ratio(v float64) float64 { return (v - r.Min) / r.Length() }

// FromRatio is the inverse of Ratio.
func (r Interval) FromRatio(ratio float64) float64 { return r.Min + ratio*r.Length() }

// Contains reports whether v lies within [Min, Max].
func (r Interval) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Extend returns the smallest interval covering both r and v.
func (r Interval) Extend(v float64) Interval {
	return Interval{Min: min(r.Min, v), Max: max(r.Max, v)}
}

func (r Interval) String() string { return fmt.Sprintf("%g,%g", r.Min, r.Max) }

// Interval2D pairs an x and a y interval. Its mappings ignore z and always
// produce points with Z == 0.
type Interval2D struct {
	X Interval
	Y Interval
}

// UnitSquare is [0,1]×[0,1].
var UnitSquare = Interval2D{X: Interval{0, 1}, Y: Interval{0, 1}}

// Ratio maps p into normalized space.
func (r Interval2D) Ratio(p Point) Point {
	return Point{X: r.X.Ratio(p.X), Y: r.Y.Ratio(p.Y)}
}

// FromRatio maps a normalized point back into r.
func (r Interval2D) FromRatio(p Point) Point {
	return Point{X: r.X.FromRatio(p.X), Y: r.Y.FromRatio(p.Y)}
}

func (r Interval2D) String() string { return fmt.Sprintf("X: %s, Y: %s", r.X, r.Y) }
