package dfn

import (
	"math"

	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// DiskSegments is the number of boundary segments used when a disk fracture
// is discretized for clipping and meshing. Size and area stay analytic; only
// boundary operations see the discretization.
const DiskSegments = 24

// FractureShape distinguishes the two fracture geometries.
type FractureShape int

const (
	// ShapeDisk is a circular fracture defined by center, diameter, and
	// orientation.
	ShapeDisk FractureShape = iota
	// ShapePolygon is a fracture bounded by an explicit planar polygon.
	ShapePolygon
)

// Fracture is a planar bounded discontinuity: either a disk or a polygon.
// Exactly one construction mode is used per instance; the derived Size and
// Area attributes are read-only and computed from the defining geometry.
//
// Fractures are immutable after construction and safe for concurrent reads.
type Fracture struct {
	id       int
	shape    FractureShape
	center   geom.Vec3
	diameter float64
	normal   geom.Vec3
	polygon  geom.Polygon

	boundary geom.Polygon // discretized boundary, cached at construction
}

// NewDiskFracture constructs a disk fracture from its center, diameter, and
// a dip / dip-direction orientation in degrees.
func NewDiskFracture(center geom.Vec3, diameter, dipDeg, dipDirDeg float64) (*Fracture, error) {
	return NewDiskFractureWithNormal(center, diameter, geom.NormalFromDipDirection(dipDeg, dipDirDeg))
}

// NewDiskFractureWithNormal constructs a disk fracture from its center,
// diameter, and plane normal. The normal need not be normalized.
func NewDiskFractureWithNormal(center geom.Vec3, diameter float64, normal geom.Vec3) (*Fracture, error) {
	if diameter <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFracture, "disk diameter must be positive, got %v", diameter)
	}
	n := normal.Norm()
	if n.IsZero() {
		return nil, errors.New(errors.ErrCodeInvalidFracture, "disk normal must be non-zero")
	}
	f := &Fracture{
		id:       -1,
		shape:    ShapeDisk,
		center:   center,
		diameter: diameter,
		normal:   n,
	}
	f.boundary = diskBoundary(center, diameter/2, n)
	return f, nil
}

// NewPolygonFracture constructs a fracture bounded by the given polygon.
// The polygon must have at least three non-collinear points.
func NewPolygonFracture(poly geom.Polygon) (*Fracture, error) {
	if err := poly.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFracture, err, "invalid fracture polygon")
	}
	return &Fracture{
		id:       -1,
		shape:    ShapePolygon,
		center:   poly.Centroid(),
		normal:   poly.Normal(),
		polygon:  poly,
		boundary: poly,
	}, nil
}

// ID returns the fracture's identifier within its network, or -1 if the
// fracture has not been added to a network yet.
func (f *Fracture) ID() int { return f.id }

// Shape returns the fracture's construction shape.
func (f *Fracture) Shape() FractureShape { return f.shape }

// Center returns the fracture center (disk center or polygon centroid).
func (f *Fracture) Center() geom.Vec3 { return f.center }

// Normal returns the unit normal of the fracture plane.
func (f *Fracture) Normal() geom.Vec3 { return f.normal }

// Size returns the characteristic size: the diameter for disks, the longest
// vertex-pair distance for polygons.
func (f *Fracture) Size() float64 {
	if f.shape == ShapeDisk {
		return f.diameter
	}
	return f.polygon.Diagonal()
}

// Area returns the fracture surface area. Disk areas are analytic (πr²),
// not the area of the discretized boundary.
func (f *Fracture) Area() float64 {
	if f.shape == ShapeDisk {
		r := f.diameter / 2
		return math.Pi * r * r
	}
	return f.polygon.Area()
}

// Orientation returns the dip and dip direction of the fracture plane in
// degrees.
func (f *Fracture) Orientation() (dipDeg, dipDirDeg float64) {
	return geom.DipDirectionFromNormal(f.normal)
}

// Boundary returns the fracture boundary polygon used for intersection and
// clipping operations. For disks this is a regular [DiskSegments]-gon
// inscribed in the disk; for polygon fractures it is the defining polygon.
func (f *Fracture) Boundary() geom.Polygon { return f.boundary }

// Plane returns the supporting plane of the fracture.
func (f *Fracture) Plane() geom.Plane {
	return geom.NewPlane(f.center, f.normal)
}

// diskBoundary builds the regular polygon inscribed in the disk of the given
// center, radius, and unit normal. The in-plane basis is deterministic, so
// repeated runs produce identical meshes.
func diskBoundary(center geom.Vec3, radius float64, n geom.Vec3) geom.Polygon {
	u, v := geom.PlaneBasis(n)
	var poly geom.Polygon
	for i := 0; i < DiskSegments; i++ {
		theta := 2 * math.Pi * float64(i) / DiskSegments
		pt := center.
			Add(u.Scale(radius * math.Cos(theta))).
			Add(v.Scale(radius * math.Sin(theta)))
		poly.Append(pt)
	}
	return poly
}
