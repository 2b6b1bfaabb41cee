package geom

import "testing"

func TestBoxBasics(t *testing.T) {
	b := NewBoxCentered(V(2.5, 2.5, 2.5), 5, 5, 5)

	if !vecApprox(b.Min, V(0, 0, 0)) || !vecApprox(b.Max, V(5, 5, 5)) {
		t.Fatalf("corners = %v %v", b.Min, b.Max)
	}
	if !approx(b.Volume(), 125) {
		t.Errorf("volume = %v, want 125", b.Volume())
	}
	if !vecApprox(b.Center(), V(2.5, 2.5, 2.5)) {
		t.Errorf("center = %v", b.Center())
	}
	if !b.Contains(V(2.5, 2.5, 2.5)) || !b.Contains(V(0, 0, 0)) {
		t.Error("Contains should accept interior and boundary points")
	}
	if b.Contains(V(6, 0, 0)) {
		t.Error("Contains should reject outside points")
	}
}

func TestBoxClipPolygon(t *testing.T) {
	b := NewBoxCentered(V(2.5, 2.5, 2.5), 5, 5, 5)

	// Fully inside: unchanged area.
	inside := NewPolygon(V(1, 1, 2), V(4, 1, 2), V(4, 4, 2), V(1, 4, 2))
	if got := b.ClipPolygon(inside).Area(); !approx(got, 9) {
		t.Errorf("inside clip area = %v, want 9", got)
	}

	// Half outside along x: area halves.
	straddle := NewPolygon(V(3, 1, 2), V(7, 1, 2), V(7, 3, 2), V(3, 3, 2))
	if got := b.ClipPolygon(straddle).Area(); !approx(got, 4) {
		t.Errorf("straddling clip area = %v, want 4", got)
	}

	// Entirely outside: empty result.
	outside := NewPolygon(V(6, 6, 6), V(8, 6, 6), V(8, 8, 6), V(6, 8, 6))
	if got := b.ClipPolygon(outside); got.Len() != 0 {
		t.Errorf("outside clip = %d points, want 0", got.Len())
	}
}

func TestBoxClipSegment(t *testing.T) {
	b := NewBoxCentered(V(2.5, 2.5, 2.5), 5, 5, 5)

	// Crossing the whole box along x.
	s, ok := b.ClipSegment(Segment{A: V(-5, 2, 2), B: V(10, 2, 2)})
	if !ok {
		t.Fatal("expected clipped segment")
	}
	if !approx(s.Length(), 5) {
		t.Errorf("clipped length = %v, want 5", s.Length())
	}

	// Entirely outside.
	if _, ok := b.ClipSegment(Segment{A: V(-5, -5, -5), B: V(-1, -1, -1)}); ok {
		t.Error("expected no clip for outside segment")
	}

	// Entirely inside: unchanged.
	in := Segment{A: V(1, 1, 1), B: V(4, 4, 4)}
	s, ok = b.ClipSegment(in)
	if !ok || !vecApprox(s.A, in.A) || !vecApprox(s.B, in.B) {
		t.Errorf("inside clip = %v %v, want unchanged", s.A, s.B)
	}
}
