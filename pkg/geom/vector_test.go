package geom

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= floatTol
}

func vecApprox(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestVecOps(t *testing.T) {
	a := V(1, 2, 3)
	b := V(4, -5, 6)

	if got := a.Add(b); !vecApprox(got, V(5, -3, 9)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !vecApprox(got, V(-3, 7, -3)) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); !vecApprox(got, V(2, 4, 6)) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); !approx(got, 4-10+18) {
		t.Errorf("Dot = %v", got)
	}
	if got := V(1, 0, 0).Cross(V(0, 1, 0)); !vecApprox(got, V(0, 0, 1)) {
		t.Errorf("Cross = %v", got)
	}
	if got := V(3, 4, 0).Length(); !approx(got, 5) {
		t.Errorf("Length = %v", got)
	}
}

func TestVecNorm(t *testing.T) {
	n := V(0, 3, 4).Norm()
	if !vecApprox(n, V(0, 0.6, 0.8)) {
		t.Errorf("Norm = %v", n)
	}

	// Normalizing the zero vector must not produce NaNs.
	z := Vec3{}.Norm()
	if !z.IsZero() {
		t.Errorf("Norm of zero = %v, want zero", z)
	}
}

func TestVecRotate(t *testing.T) {
	// Quarter turn of +X around +Z lands on +Y.
	got := V(1, 0, 0).Rotate(V(0, 0, 1), math.Pi/2)
	if !vecApprox(got, V(0, 1, 0)) {
		t.Errorf("Rotate = %v, want (0,1,0)", got)
	}

	// Rotation preserves length.
	v := V(1, 2, 3)
	if r := v.Rotate(V(0, 1, 0).Norm(), 1.234); !approx(r.Length(), v.Length()) {
		t.Errorf("Rotate changed length: %v -> %v", v.Length(), r.Length())
	}
}

func TestVecLerp(t *testing.T) {
	a, b := V(0, 0, 0), V(2, 4, 6)
	if got := a.Lerp(b, 0.5); !vecApprox(got, V(1, 2, 3)) {
		t.Errorf("Lerp = %v", got)
	}
	if got := a.Lerp(b, 0); !vecApprox(got, a) {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); !vecApprox(got, b) {
		t.Errorf("Lerp(1) = %v", got)
	}
}
