package dfn

import (
	"math"
	"testing"

	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// demoSystem builds the 5x5x5 box used by the documentation example, with a
// vertical well through its center.
func demoSystem(t *testing.T) *System {
	t.Helper()
	sys := NewSystem()
	if err := sys.BuildParallelepiped(geom.V(2.5, 2.5, 2.5), 5, 5, 5); err != nil {
		t.Fatalf("BuildParallelepiped: %v", err)
	}
	w, err := NewNamedWell("central", geom.V(2.5, 2.5, 0), geom.V(2.5, 2.5, 5))
	if err != nil {
		t.Fatalf("NewNamedWell: %v", err)
	}
	if err := sys.AddWellTunnel(w); err != nil {
		t.Fatalf("AddWellTunnel: %v", err)
	}
	return sys
}

// demoFractures returns three mutually intersecting fractures centered on
// the box center: a horizontal disk, a 45°-dipping disk, and a 45°-dipping
// square. All three also cross the central well.
func demoFractures(t *testing.T) []*Fracture {
	t.Helper()
	c := geom.V(2.5, 2.5, 2.5)

	horizontal, err := NewDiskFracture(c, 2, 0, 0)
	if err != nil {
		t.Fatalf("horizontal disk: %v", err)
	}
	dipping, err := NewDiskFractureWithNormal(c, 2, geom.NormalFromDipDirection(45, 90))
	if err != nil {
		t.Fatalf("dipping disk: %v", err)
	}

	// A 3x3 square dipping 45° toward north, centered on c.
	s := 1.5 * math.Sqrt2 / 2
	square, err := NewPolygonFracture(geom.NewPolygon(
		geom.V(1.0, 2.5-s, 2.5+s),
		geom.V(4.0, 2.5-s, 2.5+s),
		geom.V(4.0, 2.5+s, 2.5-s),
		geom.V(1.0, 2.5+s, 2.5-s),
	))
	if err != nil {
		t.Fatalf("square: %v", err)
	}

	return []*Fracture{horizontal, dipping, square}
}

func TestNetworkExample(t *testing.T) {
	sys := demoSystem(t)
	net, err := NewNetwork(sys)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	if err := net.AddFractures(demoFractures(t)); err != nil {
		t.Fatalf("AddFractures: %v", err)
	}
	if net.NbFractures() != 3 {
		t.Fatalf("NbFractures = %d, want 3", net.NbFractures())
	}

	net.ComputeIntersections()

	if got := net.NbIntersections(KindFractureFracture); got != 3 {
		t.Errorf("fracture-fracture intersections = %d, want 3", got)
	}
	if got := net.NbIntersections(KindFractureWell); got != 3 {
		t.Errorf("fracture-well intersections = %d, want 3", got)
	}

	// All fractures lie inside the box, so the density is the analytic
	// total area over the volume: (π + π + 9) / 125.
	want := (2*math.Pi + 9) / 125
	if got := net.Density(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Density = %v, want %v", got, want)
	}
}

func TestNetworkIntersectionDetails(t *testing.T) {
	sys := demoSystem(t)
	net, err := NewNetwork(sys)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	if err := net.AddFractures(demoFractures(t)); err != nil {
		t.Fatalf("AddFractures: %v", err)
	}

	// Every fracture-well intersection pierces at the box center.
	for _, ix := range net.Intersections(KindFractureWell) {
		if d := ix.Point().Dist(geom.V(2.5, 2.5, 2.5)); d > 1e-9 {
			t.Errorf("well crossing for fracture %d at %v, want box center", ix.A, ix.Point())
		}
		if ix.B != 0 {
			t.Errorf("well id = %d, want 0", ix.B)
		}
	}

	// Fracture-fracture traces are ordered by (A, B) with A < B.
	ff := net.Intersections(KindFractureFracture)
	wantPairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	if len(ff) != len(wantPairs) {
		t.Fatalf("got %d FF intersections, want %d", len(ff), len(wantPairs))
	}
	for i, ix := range ff {
		if ix.A != wantPairs[i][0] || ix.B != wantPairs[i][1] {
			t.Errorf("FF[%d] = (%d,%d), want %v", i, ix.A, ix.B, wantPairs[i])
		}
		if ix.Trace.Length() <= 0 {
			t.Errorf("FF[%d] has empty trace", i)
		}
	}
}

func TestNetworkInvalidation(t *testing.T) {
	sys := demoSystem(t)
	net, err := NewNetwork(sys)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	fs := demoFractures(t)
	if err := net.AddFractures(fs[:2]); err != nil {
		t.Fatalf("AddFractures: %v", err)
	}
	net.ComputeIntersections()
	if got := net.NbIntersections(KindFractureFracture); got != 1 {
		t.Fatalf("two fractures: FF = %d, want 1", got)
	}

	// Adding a fracture invalidates the computed set; the accessors must
	// recompute and see the new fracture.
	if err := net.AddFracture(fs[2]); err != nil {
		t.Fatalf("AddFracture: %v", err)
	}
	if got := net.NbIntersections(KindFractureFracture); got != 3 {
		t.Errorf("after add: FF = %d, want 3", got)
	}
}

func TestNetworkDensityClipsToSystem(t *testing.T) {
	sys := NewSystem()
	if err := sys.BuildParallelepiped(geom.V(2.5, 2.5, 2.5), 5, 5, 5); err != nil {
		t.Fatalf("BuildParallelepiped: %v", err)
	}
	net, err := NewNetwork(sys)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	// A 4x2 rectangle with half its area beyond the x=5 face: only the
	// inside half counts toward density.
	f, err := NewPolygonFracture(geom.NewPolygon(
		geom.V(3, 1, 2.5), geom.V(7, 1, 2.5), geom.V(7, 3, 2.5), geom.V(3, 3, 2.5),
	))
	if err != nil {
		t.Fatalf("NewPolygonFracture: %v", err)
	}
	if err := net.AddFracture(f); err != nil {
		t.Fatalf("AddFracture: %v", err)
	}

	want := 4.0 / 125
	if got := net.Density(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Density = %v, want %v", got, want)
	}
}

func TestNetworkClusters(t *testing.T) {
	sys := demoSystem(t)
	net, err := NewNetwork(sys)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	// Three connected fractures plus one isolated disk far in a corner.
	if err := net.AddFractures(demoFractures(t)); err != nil {
		t.Fatalf("AddFractures: %v", err)
	}
	lone, err := NewDiskFracture(geom.V(0.5, 0.5, 0.5), 0.5, 10, 10)
	if err != nil {
		t.Fatalf("lone disk: %v", err)
	}
	if err := net.AddFracture(lone); err != nil {
		t.Fatalf("AddFracture: %v", err)
	}

	clusters := net.Clusters()
	if len(clusters) != 2 {
		t.Fatalf("clusters = %v, want 2 components", clusters)
	}
	if len(clusters[0]) != 3 || clusters[0][0] != 0 {
		t.Errorf("largest cluster = %v, want [0 1 2]", clusters[0])
	}
	if len(clusters[1]) != 1 || clusters[1][0] != 3 {
		t.Errorf("singleton cluster = %v, want [3]", clusters[1])
	}
}

func TestNetworkErrors(t *testing.T) {
	if _, err := NewNetwork(nil); !errors.Is(err, errors.ErrCodeInvalidSystem) {
		t.Errorf("nil system: err = %v", err)
	}

	if _, err := NewNetwork(NewSystem()); !errors.Is(err, errors.ErrCodeSystemNotBuilt) {
		t.Errorf("unbuilt system: err = %v", err)
	}

	sys := demoSystem(t)
	net, err := NewNetwork(sys)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	if err := net.AddFracture(nil); !errors.Is(err, errors.ErrCodeInvalidFracture) {
		t.Errorf("nil fracture: err = %v", err)
	}

	// A fracture cannot join two networks.
	f, _ := NewDiskFracture(geom.V(2.5, 2.5, 2.5), 1, 0, 0)
	if err := net.AddFracture(f); err != nil {
		t.Fatalf("AddFracture: %v", err)
	}
	other, _ := NewNetwork(sys)
	if err := other.AddFracture(f); !errors.Is(err, errors.ErrCodeInvalidFracture) {
		t.Errorf("double membership: err = %v", err)
	}
}
