package geom

import (
	"errors"
	"math"
)

var (
	// ErrTooFewPoints is returned by [Polygon.Validate] when the boundary has
	// fewer than three points.
	ErrTooFewPoints = errors.New("polygon needs at least 3 points")

	// ErrDegeneratePolygon is returned by [Polygon.Validate] when the points
	// are collinear or otherwise enclose no area.
	ErrDegeneratePolygon = errors.New("degenerate polygon")
)

// Polygon is an ordered planar boundary in 3D space. Points are appended in
// order; the boundary closes implicitly from the last point back to the
// first. Polygons are expected to be simple (non self-intersecting) and
// planar; Validate checks the cheap invariants.
//
// The zero value is an empty polygon ready for Append.
type Polygon struct {
	Points []Vec3 `json:"points" bson:"points"`
}

// NewPolygon constructs a polygon from the given boundary points.
func NewPolygon(points ...Vec3) Polygon {
	return Polygon{Points: append([]Vec3(nil), points...)}
}

// Append adds a point to the end of the boundary.
func (p *Polygon) Append(pt Vec3) {
	p.Points = append(p.Points, pt)
}

// Len returns the number of boundary points.
func (p Polygon) Len() int { return len(p.Points) }

// Validate reports whether the polygon is usable: at least three points and
// non-zero enclosed area.
func (p Polygon) Validate() error {
	if len(p.Points) < 3 {
		return ErrTooFewPoints
	}
	if p.newell().Length() < epsilon {
		return ErrDegeneratePolygon
	}
	return nil
}

// newell computes the Newell vector: its direction is the polygon normal and
// its length is twice the enclosed area. Robust for any simple planar
// polygon regardless of starting vertex.
func (p Polygon) newell() Vec3 {
	var sum Vec3
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum = sum.Add(a.Cross(b))
	}
	return sum
}

// Area returns the enclosed planar area.
func (p Polygon) Area() float64 {
	return p.newell().Length() / 2
}

// Normal returns the unit normal given by the winding order of the boundary.
// Returns the zero vector for degenerate polygons.
func (p Polygon) Normal() Vec3 {
	return p.newell().Norm()
}

// Centroid returns the arithmetic mean of the boundary points.
func (p Polygon) Centroid() Vec3 {
	var c Vec3
	if len(p.Points) == 0 {
		return c
	}
	for _, pt := range p.Points {
		c = c.Add(pt)
	}
	return c.Scale(1 / float64(len(p.Points)))
}

// Diagonal returns the largest distance between any two boundary points.
// For a rectangle this is the diagonal; it serves as the characteristic size
// of polygonal fractures.
func (p Polygon) Diagonal() float64 {
	var max float64
	for i := 0; i < len(p.Points); i++ {
		for j := i + 1; j < len(p.Points); j++ {
			if d := p.Points[i].Dist(p.Points[j]); d > max {
				max = d
			}
		}
	}
	return max
}

// Plane returns the supporting plane of the polygon.
func (p Polygon) Plane() Plane {
	return NewPlane(p.Centroid(), p.Normal())
}

// Contains reports whether the point q, assumed to lie in the polygon's
// plane, is inside the boundary. Uses the even-odd rule on the projection
// onto the dominant axis plane of the normal, so it works for any simple
// polygon. Points on the boundary may report either way.
func (p Polygon) Contains(q Vec3) bool {
	n := p.Normal()
	ax, ay := projectionAxes(n)

	px, py := component(q, ax), component(q, ay)
	inside := false
	count := len(p.Points)
	for i, j := 0, count-1; i < count; j, i = i, i+1 {
		xi, yi := component(p.Points[i], ax), component(p.Points[i], ay)
		xj, yj := component(p.Points[j], ax), component(p.Points[j], ay)
		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// projectionAxes picks the two coordinate axes spanning the plane most
// perpendicular to n, i.e. drops the dominant normal component.
func projectionAxes(n Vec3) (ax, ay int) {
	absX, absY, absZ := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case absZ >= absX && absZ >= absY:
		return 0, 1 // drop Z
	case absY >= absX:
		return 0, 2 // drop Y
	default:
		return 1, 2 // drop X
	}
}

func component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
