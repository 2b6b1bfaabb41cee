package geom

import (
	"math"
	"sort"
)

// minTraceLength is the shortest polygon-polygon trace considered a real
// intersection. Shorter overlaps are grazing contacts produced by floating
// point noise.
const minTraceLength = 1e-7

// IntersectPolygons computes the trace segment where two planar polygons
// intersect. The trace lies on the line of intersection of the supporting
// planes, clipped to the interior of both polygons.
//
// The boolean result is false when the planes are parallel, the polygons are
// coplanar, or the clipped overlap is empty or degenerately short.
func IntersectPolygons(a, b Polygon) (Segment, bool) {
	line, err := IntersectPlanes(a.Plane(), b.Plane())
	if err != nil {
		return Segment{}, false
	}

	loA, hiA, ok := clipLineToPolygon(line, a)
	if !ok {
		return Segment{}, false
	}
	loB, hiB, ok := clipLineToPolygon(line, b)
	if !ok {
		return Segment{}, false
	}

	lo := math.Max(loA, loB)
	hi := math.Min(hiA, hiB)
	if hi-lo < minTraceLength {
		return Segment{}, false
	}
	return Segment{A: line.At(lo), B: line.At(hi)}, true
}

// IntersectSegmentPolygon returns the point where the segment pq pierces the
// polygon's interior. False when the segment misses the plane, only touches
// it, or crosses outside the boundary.
func IntersectSegmentPolygon(p, q Vec3, poly Polygon) (Vec3, bool) {
	pt, ok := IntersectSegmentPlane(p, q, poly.Plane())
	if !ok {
		return Vec3{}, false
	}
	if !poly.Contains(pt) {
		return Vec3{}, false
	}
	return pt, true
}

// clipLineToPolygon computes the parameter interval of line that lies inside
// poly. The line must lie in the polygon's plane (it is the plane-plane
// intersection line in practice). Crossing parameters against all boundary
// edges are collected; by the even-odd rule the interior is between the
// outermost crossings for convex polygons, and we conservatively return the
// full [min,max] hull for non-convex ones.
func clipLineToPolygon(line Line, poly Polygon) (lo, hi float64, ok bool) {
	n := poly.Normal()
	var ts []float64

	count := len(poly.Points)
	for i := 0; i < count; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%count]
		e := b.Sub(a)

		denom := line.Dir.Cross(e).Dot(n)
		if math.Abs(denom) < epsilon {
			continue // edge parallel to the line
		}
		w := a.Sub(line.Origin)
		t := w.Cross(e).Dot(n) / denom
		s := w.Cross(line.Dir).Dot(n) / denom
		if s < -epsilon || s > 1+epsilon {
			continue // crossing outside the edge
		}
		ts = append(ts, t)
	}

	if len(ts) < 2 {
		return 0, 0, false
	}
	sort.Float64s(ts)
	return ts[0], ts[len(ts)-1], true
}
