package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a location in 3-space. Points are compared and copied by value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// String returns the comma-joined text form accepted by ParsePoint.
func (p Point) String() string {
	return strings.Join([]string{
		strconv.FormatFloat(p.X, 'g', -1, 64),
		strconv.FormatFloat(p.Y, 'g', -1, 64),
		strconv.FormatFloat(p.Z, 'g', -1, 64),
	}, ",")
}

// ParsePoint parses a "x,y,z" string. Surrounding whitespace around each
// component is ignored. Exactly three finite numeric components are required.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Point{}, fmt.Errorf("point %q: want 3 components, got %d", s, len(parts))
	}
	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Point{}, fmt.Errorf("point %q: component %d: %w", s, i, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Point{}, fmt.Errorf("point %q: component %d is not finite", s, i)
		}
		v[i] = f
	}
	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Finite reports whether every component of p is a finite number.
func (p Point) Finite() bool {
	for _, f := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
