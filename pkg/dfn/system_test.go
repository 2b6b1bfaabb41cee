package dfn

import (
	"testing"

	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/geom"
)

func TestSystemBuildParallelepiped(t *testing.T) {
	sys := NewSystem()
	if sys.Built() {
		t.Fatal("new system should not be built")
	}

	if err := sys.BuildParallelepiped(geom.V(2.5, 2.5, 2.5), 5, 5, 5); err != nil {
		t.Fatalf("BuildParallelepiped: %v", err)
	}
	if !sys.Built() {
		t.Error("system should be built")
	}
	if got := sys.Volume(); !approx(got, 125) {
		t.Errorf("Volume = %v, want 125", got)
	}
}

func TestSystemBuildErrors(t *testing.T) {
	sys := NewSystem()
	for _, ext := range [][3]float64{{0, 5, 5}, {5, -1, 5}, {5, 5, 0}} {
		err := sys.BuildParallelepiped(geom.V(0, 0, 0), ext[0], ext[1], ext[2])
		if !errors.Is(err, errors.ErrCodeInvalidSystem) {
			t.Errorf("extents %v: err = %v, want INVALID_SYSTEM", ext, err)
		}
	}
}

func TestSystemWells(t *testing.T) {
	sys := NewSystem()
	if err := sys.BuildParallelepiped(geom.V(2.5, 2.5, 2.5), 5, 5, 5); err != nil {
		t.Fatalf("BuildParallelepiped: %v", err)
	}

	w1, err := NewWell(geom.V(2.5, 2.5, 0), geom.V(2.5, 2.5, 5))
	if err != nil {
		t.Fatalf("NewWell: %v", err)
	}
	w2, err := NewNamedWell("obs-1", geom.V(0, 2.5, 2.5), geom.V(5, 2.5, 2.5))
	if err != nil {
		t.Fatalf("NewNamedWell: %v", err)
	}

	if err := sys.AddWellTunnel(w1); err != nil {
		t.Fatalf("AddWellTunnel: %v", err)
	}
	if err := sys.AddWellTunnel(w2); err != nil {
		t.Fatalf("AddWellTunnel: %v", err)
	}

	if sys.NbWells() != 2 {
		t.Fatalf("NbWells = %d, want 2", sys.NbWells())
	}
	if w1.ID() != 0 || w2.ID() != 1 {
		t.Errorf("well ids = %d, %d; want 0, 1", w1.ID(), w2.ID())
	}
	if w2.Name() != "obs-1" {
		t.Errorf("well name = %q", w2.Name())
	}
	if !approx(w1.Length(), 5) {
		t.Errorf("well length = %v, want 5", w1.Length())
	}

	if err := sys.AddWellTunnel(nil); !errors.Is(err, errors.ErrCodeInvalidWell) {
		t.Errorf("nil well: err = %v", err)
	}
}

func TestNewWellErrors(t *testing.T) {
	if _, err := NewWell(geom.V(1, 1, 1), geom.V(1, 1, 1)); !errors.Is(err, errors.ErrCodeInvalidWell) {
		t.Errorf("coincident endpoints: err = %v", err)
	}
}

func TestSystemClipFracture(t *testing.T) {
	sys := NewSystem()
	if err := sys.BuildParallelepiped(geom.V(2.5, 2.5, 2.5), 5, 5, 5); err != nil {
		t.Fatalf("BuildParallelepiped: %v", err)
	}

	// A square straddling the x=5 face keeps half its area.
	poly := geom.NewPolygon(
		geom.V(3, 1, 2.5), geom.V(7, 1, 2.5), geom.V(7, 3, 2.5), geom.V(3, 3, 2.5),
	)
	f, err := NewPolygonFracture(poly)
	if err != nil {
		t.Fatalf("NewPolygonFracture: %v", err)
	}

	clipped := sys.ClipFracture(f)
	if got := clipped.Area(); !approx(got, 4) {
		t.Errorf("clipped area = %v, want 4", got)
	}
}
