// Package layout assigns positions to graph nodes that do not have one.
//
// # Algorithm
//
// [SetMissingPositions] works component by component, using the strongly
// connected components from the scc package:
//
//  1. The world bounds are the bounding rectangle of every node that already
//     has a position (the unit square if none do). See [WorldBounds].
//  2. Each component gets an anchor on an outward spiral through the bounds.
//     Anchors cycle through three offset patterns (diagonal, vertical,
//     horizontal) and the spiral factor grows by 0.5 every third component.
//  3. Starting from each member, a depth-first walk over outgoing edges
//     places every unpositioned successor on a circle around its
//     predecessor. Candidate points are tried at evenly spaced angles; a
//     candidate is accepted only if it is farther than the separation radius
//     from every positioned node in the graph. When the whole circle is
//     taken the radius grows and the sweep repeats.
//
// Nodes that already have a position are never moved. The walk uses an
// explicit stack, so deep chains do not recurse.
//
// # Termination
//
// The radius keeps growing until a free point is found. Free points always
// exist in the plane, but nothing bounds how many sweeps a dense neighbourhood
// may need. Set [Options.MaxRounds] to cap the growth; the last candidate is
// then accepted as is and counted in [Result.Forced].
//
// # Determinism
//
// Components, members and successors are visited in a fixed order, so the
// same graph always produces the same layout.
package layout
