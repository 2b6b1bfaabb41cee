package geom

// Segment is a bounded line segment between two points.
type Segment struct {
	A Vec3 `json:"a" bson:"a"`
	B Vec3 `json:"b" bson:"b"`
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.Dist(s.B)
}

// PointAt returns the point at fraction t along the segment (0 = A, 1 = B).
func (s Segment) PointAt(t float64) Vec3 {
	return s.A.Lerp(s.B, t)
}

// Midpoint returns the segment's midpoint.
func (s Segment) Midpoint() Vec3 {
	return s.PointAt(0.5)
}
