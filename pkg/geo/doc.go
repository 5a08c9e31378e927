// Package geo provides the spatial value types used for node coordinates.
//
// # Types
//
//   - [Point]: an immutable x,y,z location
//   - [Interval]: a closed 1-D range with ratio mapping
//   - [Interval2D]: an x/y pair of intervals mapping into and out of the
//     normalized unit square
//
// Interval mappings divide by [Interval.Length]; callers are responsible for
// checking [Interval.Degenerate] before calling [Interval.Ratio].
//
// # Text Form
//
// Points have a comma-joined text form ("1.5,2,0") used by producers that
// encode positions as strings. [ParsePoint] reads it and [Point.String]
// writes it:
//
//	p, _ := geo.ParsePoint("35.19,32.10,0")
//	fmt.Println(p.Distance(geo.Point{}))
package geo
