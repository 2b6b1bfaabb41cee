package geom

import "math"

// Orientation conversions between structural-geology angles and unit normals.
//
// The coordinate convention is X = east, Y = north, Z = up. Dip is the angle
// between the fracture plane and the horizontal (0° = horizontal plane,
// 90° = vertical plane). Dip direction is the azimuth of the steepest descent
// line, measured clockwise from north. Both are given in degrees.

// NormalFromDipDirection converts a dip / dip-direction pair (degrees) to the
// upward-pointing unit normal of the plane.
//
// A horizontal plane (dip 0) has normal (0,0,1) regardless of dip direction.
// A vertical plane dipping due east (dip 90, dip direction 90) has normal
// (1,0,0).
func NormalFromDipDirection(dipDeg, dipDirDeg float64) Vec3 {
	dip := dipDeg * math.Pi / 180
	az := dipDirDeg * math.Pi / 180
	return Vec3{
		X: math.Sin(dip) * math.Sin(az),
		Y: math.Sin(dip) * math.Cos(az),
		Z: math.Cos(dip),
	}
}

// DipDirectionFromNormal is the inverse of NormalFromDipDirection. It returns
// the dip and dip direction (degrees) of the plane with the given normal.
// The normal need not be normalized or upward-pointing; it must be non-zero.
//
// For a horizontal plane the dip direction is indeterminate and 0 is returned.
// The returned dip is in [0,90] and the dip direction in [0,360).
func DipDirectionFromNormal(n Vec3) (dipDeg, dipDirDeg float64) {
	u := n.Norm()
	if u.Z < 0 {
		u = u.Scale(-1)
	}
	dip := math.Acos(math.Min(1, math.Max(-1, u.Z)))
	horiz := math.Hypot(u.X, u.Y)
	if horiz < epsilon {
		return 0, 0
	}
	az := math.Atan2(u.X, u.Y)
	if az < 0 {
		az += 2 * math.Pi
	}
	return dip * 180 / math.Pi, az * 180 / math.Pi
}

// PlaneBasis returns two orthonormal vectors spanning the plane with unit
// normal n. The basis is deterministic for a given normal, which keeps disk
// discretizations and exports reproducible.
func PlaneBasis(n Vec3) (u, v Vec3) {
	ref := Vec3{Z: 1}
	if math.Abs(n.Z) > 0.9 {
		ref = Vec3{X: 1}
	}
	u = ref.Cross(n).Norm()
	v = n.Cross(u)
	return u, v
}
