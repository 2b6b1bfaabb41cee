package geom

import (
	"errors"
	"math"
	"testing"
)

// unitSquare is the 4x4 square in the XY plane used across the package tests.
func unitSquare() Polygon {
	return NewPolygon(V(0, 0, 0), V(4, 0, 0), V(4, 4, 0), V(0, 4, 0))
}

func TestPolygonValidate(t *testing.T) {
	tests := []struct {
		name    string
		poly    Polygon
		wantErr error
	}{
		{"square", unitSquare(), nil},
		{"empty", Polygon{}, ErrTooFewPoints},
		{"two points", NewPolygon(V(0, 0, 0), V(1, 0, 0)), ErrTooFewPoints},
		{"collinear", NewPolygon(V(0, 0, 0), V(1, 0, 0), V(2, 0, 0)), ErrDegeneratePolygon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.poly.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPolygonArea(t *testing.T) {
	if got := unitSquare().Area(); !approx(got, 16) {
		t.Errorf("square area = %v, want 16", got)
	}

	tri := NewPolygon(V(0, 0, 0), V(2, 0, 0), V(0, 2, 0))
	if got := tri.Area(); !approx(got, 2) {
		t.Errorf("triangle area = %v, want 2", got)
	}

	// Area is independent of the plane the polygon lives in.
	tilted := NewPolygon(V(0, 0, 0), V(2, 0, 2), V(0, 2, 2))
	want := tilted.newell().Length() / 2
	if got := tilted.Area(); !approx(got, want) {
		t.Errorf("tilted area = %v, want %v", got, want)
	}
}

func TestPolygonDiagonal(t *testing.T) {
	if got := unitSquare().Diagonal(); !approx(got, 4*math.Sqrt2) {
		t.Errorf("square diagonal = %v, want %v", got, 4*math.Sqrt2)
	}
}

func TestPolygonNormal(t *testing.T) {
	got := unitSquare().Normal()
	if !vecApprox(got, V(0, 0, 1)) {
		t.Errorf("square normal = %v, want (0,0,1)", got)
	}

	// Reversed winding flips the normal.
	rev := NewPolygon(V(0, 4, 0), V(4, 4, 0), V(4, 0, 0), V(0, 0, 0))
	if got := rev.Normal(); !vecApprox(got, V(0, 0, -1)) {
		t.Errorf("reversed normal = %v, want (0,0,-1)", got)
	}
}

func TestPolygonCentroid(t *testing.T) {
	if got := unitSquare().Centroid(); !vecApprox(got, V(2, 2, 0)) {
		t.Errorf("centroid = %v, want (2,2,0)", got)
	}
}

func TestPolygonContains(t *testing.T) {
	sq := unitSquare()

	tests := []struct {
		name string
		pt   Vec3
		want bool
	}{
		{"center", V(2, 2, 0), true},
		{"near corner inside", V(0.1, 0.1, 0), true},
		{"outside x", V(5, 2, 0), false},
		{"outside y", V(2, -1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sq.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}

	// A vertical polygon exercises the axis-dropping projection.
	vert := NewPolygon(V(0, 0, 0), V(0, 4, 0), V(0, 4, 4), V(0, 0, 4))
	if !vert.Contains(V(0, 2, 2)) {
		t.Error("vertical polygon should contain its center")
	}
	if vert.Contains(V(0, 5, 2)) {
		t.Error("vertical polygon should not contain outside point")
	}
}

func TestPolygonAppend(t *testing.T) {
	var p Polygon
	p.Append(V(0, 0, 0))
	p.Append(V(1, 0, 0))
	p.Append(V(0, 1, 0))
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate after Append: %v", err)
	}
}
