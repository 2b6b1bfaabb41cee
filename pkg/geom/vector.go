package geom

import "math"

// Vec3 is a vector (or point) in 3-dimensional space.
// The zero value is the origin and is ready to use.
type Vec3 struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// V constructs a Vec3 from its components.
func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns the sum of vectors a and b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of the vectors a and b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of the vector a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Norm returns the normalized form of the vector a.
// Normalizing a zero vector returns the zero vector.
func (a Vec3) Norm() Vec3 {
	l := a.Length()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// IsZero reports whether all components of a are exactly zero.
func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

// Rotate returns the vector a rotated theta radians around the (normalized)
// axis b, using Rodrigues' rotation formula.
func (a Vec3) Rotate(b Vec3, theta float64) Vec3 {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return a.Scale(cos).
		Add(b.Cross(a).Scale(sin)).
		Add(b.Scale(b.Dot(a) * (1 - cos)))
}

// Dist returns the Euclidean distance between the points a and b.
func (a Vec3) Dist(b Vec3) float64 {
	return a.Sub(b).Length()
}

// Lerp returns the point at fraction t along the segment from a to b.
// t=0 yields a, t=1 yields b; values outside [0,1] extrapolate.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}
