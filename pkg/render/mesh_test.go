package render

import (
	"reflect"
	"testing"

	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// demoNetwork builds a 5x5x5 system with one vertical well and two disk
// fractures through the box center: one horizontal, one dipping 45 degrees.
// Both fractures cross the well and each other.
func demoNetwork(t *testing.T) *dfn.Network {
	t.Helper()

	sys := dfn.NewSystem()
	if err := sys.BuildParallelepiped(geom.V(2.5, 2.5, 2.5), 5, 5, 5); err != nil {
		t.Fatalf("build system: %v", err)
	}
	well, err := dfn.NewNamedWell("central", geom.V(2.5, 2.5, 0), geom.V(2.5, 2.5, 5))
	if err != nil {
		t.Fatalf("new well: %v", err)
	}
	if err := sys.AddWellTunnel(well); err != nil {
		t.Fatalf("add well: %v", err)
	}

	net, err := dfn.NewNetwork(sys)
	if err != nil {
		t.Fatalf("new network: %v", err)
	}
	flat, err := dfn.NewDiskFracture(geom.V(2.5, 2.5, 2.5), 2, 0, 0)
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	dipping, err := dfn.NewDiskFracture(geom.V(2.5, 2.5, 2.5), 2, 45, 0)
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	if err := net.AddFractures([]*dfn.Fracture{flat, dipping}); err != nil {
		t.Fatalf("add fractures: %v", err)
	}
	return net
}

func TestBuildMeshFaces(t *testing.T) {
	net := demoNetwork(t)
	m := BuildMesh(net, Options{})

	if got := len(m.Faces); got != 2 {
		t.Fatalf("faces = %d, want 2", got)
	}
	if got := len(m.Lines); got != 0 {
		t.Fatalf("lines = %d, want 0", got)
	}
	for i, f := range m.Faces {
		if len(f) != dfn.DiskSegments {
			t.Errorf("face %d has %d vertices, want %d", i, len(f), dfn.DiskSegments)
		}
	}
	want := []float64{0, 1}
	if !reflect.DeepEqual(m.FaceScalars, want) {
		t.Errorf("face scalars = %v, want %v", m.FaceScalars, want)
	}
}

func TestBuildMeshWellsAndTraces(t *testing.T) {
	net := demoNetwork(t)
	m := BuildMesh(net, Options{Wells: true, Traces: true})

	// One well line plus one fracture-fracture trace.
	if got := len(m.Lines); got != 2 {
		t.Fatalf("lines = %d, want 2", got)
	}
	want := []float64{scalarWell, scalarTrace}
	if !reflect.DeepEqual(m.LineScalars, want) {
		t.Errorf("line scalars = %v, want %v", m.LineScalars, want)
	}
	if got := m.NbCells(); got != 4 {
		t.Errorf("NbCells = %d, want 4", got)
	}
}

func TestBuildMeshClipDropsOutside(t *testing.T) {
	net := demoNetwork(t)
	outside, err := dfn.NewDiskFracture(geom.V(20, 20, 20), 2, 0, 0)
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}
	if err := net.AddFracture(outside); err != nil {
		t.Fatalf("add fracture: %v", err)
	}

	unclipped := BuildMesh(net, Options{})
	if got := len(unclipped.Faces); got != 3 {
		t.Fatalf("unclipped faces = %d, want 3", got)
	}

	clipped := BuildMesh(net, Options{ClipToSystem: true})
	if got := len(clipped.Faces); got != 2 {
		t.Fatalf("clipped faces = %d, want 2", got)
	}
}

func TestBuildMeshDeterministic(t *testing.T) {
	net := demoNetwork(t)
	a := BuildMesh(net, Options{Wells: true, Traces: true})
	b := BuildMesh(net, Options{Wells: true, Traces: true})
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated builds differ")
	}
}
