package geom

import "errors"

// epsilon is the tolerance used for degeneracy checks throughout the package.
// Coordinates in fracture models are meters at site scale, so 1e-9 is far
// below any meaningful geometric feature.
const epsilon = 1e-9

// ErrParallel is returned by intersection operations when the two inputs are
// parallel (or coplanar) and therefore have no unique intersection.
var ErrParallel = errors.New("parallel planes")

// Plane is an infinite plane in Hesse normal form: the set of points x with
// Normal·x = Offset. Normal is always unit length for planes built with
// NewPlane.
type Plane struct {
	Normal Vec3
	Offset float64
}

// NewPlane constructs the plane through point p with the given normal.
// The normal is normalized; it must be non-zero.
func NewPlane(p, normal Vec3) Plane {
	n := normal.Norm()
	return Plane{Normal: n, Offset: n.Dot(p)}
}

// SignedDist returns the signed distance from p to the plane, positive on the
// side the normal points to.
func (pl Plane) SignedDist(p Vec3) float64 {
	return pl.Normal.Dot(p) - pl.Offset
}

// Line is an infinite parameterized line: Origin + t*Dir. Dir is unit length
// for lines produced by this package.
type Line struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t along the line.
func (l Line) At(t float64) Vec3 {
	return l.Origin.Add(l.Dir.Scale(t))
}

// IntersectPlanes returns the line of intersection of two planes.
// Returns ErrParallel when the planes are parallel or coincident.
func IntersectPlanes(a, b Plane) (Line, error) {
	dir := a.Normal.Cross(b.Normal)
	d2 := dir.Dot(dir)
	if d2 < epsilon*epsilon {
		return Line{}, ErrParallel
	}
	// Point on both planes closest to the origin, from the standard
	// two-plane formula.
	p := b.Normal.Scale(a.Offset).Sub(a.Normal.Scale(b.Offset)).Cross(dir).Scale(1 / d2)
	return Line{Origin: p, Dir: dir.Norm()}, nil
}

// IntersectSegmentPlane returns the point where the segment from p to q
// crosses the plane. The boolean result is false when the segment lies on one
// side, only touches, or runs within the plane.
func IntersectSegmentPlane(p, q Vec3, pl Plane) (Vec3, bool) {
	fp := pl.SignedDist(p)
	fq := pl.SignedDist(q)
	if fp*fq >= 0 {
		return Vec3{}, false
	}
	t := fp / (fp - fq)
	return p.Lerp(q, t), true
}
