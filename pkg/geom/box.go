package geom

import "math"

// Box is an axis-aligned parallelepiped given by its two extreme corners.
// Min must be component-wise less than or equal to Max.
type Box struct {
	Min Vec3 `json:"min" bson:"min"`
	Max Vec3 `json:"max" bson:"max"`
}

// NewBoxCentered constructs the box with the given center and edge lengths.
func NewBoxCentered(center Vec3, lx, ly, lz float64) Box {
	half := Vec3{X: lx / 2, Y: ly / 2, Z: lz / 2}
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the box center.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extents returns the edge lengths along each axis.
func (b Box) Extents() Vec3 {
	return b.Max.Sub(b.Min)
}

// Volume returns the enclosed volume.
func (b Box) Volume() float64 {
	e := b.Extents()
	return e.X * e.Y * e.Z
}

// Contains reports whether p lies inside the box or on its boundary, within
// a small tolerance.
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X-epsilon && p.X <= b.Max.X+epsilon &&
		p.Y >= b.Min.Y-epsilon && p.Y <= b.Max.Y+epsilon &&
		p.Z >= b.Min.Z-epsilon && p.Z <= b.Max.Z+epsilon
}

// ContainsSegment reports whether both endpoints of s lie inside the box.
func (b Box) ContainsSegment(s Segment) bool {
	return b.Contains(s.A) && b.Contains(s.B)
}

// halfSpaces returns the six inward-facing bounding planes of the box.
func (b Box) halfSpaces() [6]Plane {
	return [6]Plane{
		{Normal: Vec3{X: 1}, Offset: b.Min.X},
		{Normal: Vec3{X: -1}, Offset: -b.Max.X},
		{Normal: Vec3{Y: 1}, Offset: b.Min.Y},
		{Normal: Vec3{Y: -1}, Offset: -b.Max.Y},
		{Normal: Vec3{Z: 1}, Offset: b.Min.Z},
		{Normal: Vec3{Z: -1}, Offset: -b.Max.Z},
	}
}

// ClipPolygon clips poly to the box with successive Sutherland-Hodgman
// passes against the six bounding half-spaces. The result may be empty when
// the polygon lies entirely outside.
func (b Box) ClipPolygon(poly Polygon) Polygon {
	out := poly
	for _, hs := range b.halfSpaces() {
		out = clipPolygonHalfSpace(out, hs)
		if len(out.Points) < 3 {
			return Polygon{}
		}
	}
	return out
}

// ClipSegment clips s to the box, returning false when no part of the
// segment lies inside.
func (b Box) ClipSegment(s Segment) (Segment, bool) {
	t0, t1 := 0.0, 1.0
	d := s.B.Sub(s.A)
	for _, hs := range b.halfSpaces() {
		fa := hs.SignedDist(s.A)
		dd := hs.Normal.Dot(d)
		if math.Abs(dd) < epsilon {
			if fa < 0 {
				return Segment{}, false
			}
			continue
		}
		t := -fa / dd
		if dd > 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return Segment{}, false
		}
	}
	return Segment{A: s.PointAt(t0), B: s.PointAt(t1)}, true
}

// clipPolygonHalfSpace keeps the part of poly on the non-negative side of hs.
func clipPolygonHalfSpace(poly Polygon, hs Plane) Polygon {
	var out Polygon
	count := len(poly.Points)
	for i := 0; i < count; i++ {
		cur := poly.Points[i]
		next := poly.Points[(i+1)%count]
		fc := hs.SignedDist(cur)
		fn := hs.SignedDist(next)

		if fc >= -epsilon {
			out.Append(cur)
		}
		if (fc < -epsilon && fn > epsilon) || (fc > epsilon && fn < -epsilon) {
			t := fc / (fc - fn)
			out.Append(cur.Lerp(next, t))
		}
	}
	return out
}
