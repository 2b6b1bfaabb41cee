package dfn

import "github.com/matzehuels/fracnet/pkg/geom"

// IntersectionKind selects a category of intersections. The numeric values
// are part of the public API (kind selectors in stats and serialization).
type IntersectionKind int

const (
	// KindFractureFracture selects fracture-fracture intersections.
	KindFractureFracture IntersectionKind = 0
	// KindFractureWell selects fracture-well intersections.
	KindFractureWell IntersectionKind = 1
)

// String returns a short label for the kind.
func (k IntersectionKind) String() string {
	switch k {
	case KindFractureFracture:
		return "fracture-fracture"
	case KindFractureWell:
		return "fracture-well"
	default:
		return "unknown"
	}
}

// Intersection is one computed intersection in a network.
//
// For fracture-fracture intersections, A and B are the fracture ids
// (A < B) and Trace is the shared trace segment. For fracture-well
// intersections, A is the fracture id, B is the well id, and Trace is the
// degenerate segment at the piercing point.
type Intersection struct {
	Kind  IntersectionKind `json:"kind" bson:"kind"`
	A     int              `json:"a" bson:"a"`
	B     int              `json:"b" bson:"b"`
	Trace geom.Segment     `json:"trace" bson:"trace"`
}

// Point returns the representative point of the intersection: the piercing
// point for fracture-well intersections, the trace midpoint otherwise.
func (i Intersection) Point() geom.Vec3 {
	return i.Trace.Midpoint()
}
