// Package geom provides the 3D geometry kernel used by fracture network
// modeling: vectors, planes, planar polygons, axis-aligned boxes, and the
// intersection operations between them.
//
// The package is deliberately small and allocation-light. All types are
// plain values, safe to copy and to use concurrently for reads. Angles in
// the public API are degrees (structural-geology convention); internal math
// is radians.
//
// # Conventions
//
//   - Coordinates: X = east, Y = north, Z = up.
//   - Dip: angle between a plane and the horizontal, in [0°, 90°].
//   - Dip direction: azimuth of steepest descent, clockwise from north.
//
// # Intersections
//
// The two operations underlying network analysis are [IntersectPolygons],
// which yields the trace segment shared by two planar polygons, and
// [IntersectSegmentPolygon], which yields the point where a segment pierces
// a polygon. Both report degenerate configurations (parallel or coplanar
// inputs, grazing contacts) as "no intersection" rather than errors, since
// stochastic networks produce them routinely.
package geom
