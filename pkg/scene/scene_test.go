package scene

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/generate"
	"github.com/matzehuels/fracnet/pkg/geom"
)

func f64(v float64) *float64 { return &v }

// demoScene mirrors the documentation example: three fractures and one well
// in a 5x5x5 box.
func demoScene() *Scene {
	s := 1.5 * math.Sqrt2 / 2
	return &Scene{
		Name:   "demo",
		System: SystemDef{Center: geom.V(2.5, 2.5, 2.5), LX: 5, LY: 5, LZ: 5},
		Wells: []WellDef{
			{Name: "central", A: geom.V(2.5, 2.5, 0), B: geom.V(2.5, 2.5, 5)},
		},
		Fractures: []FractureDef{
			{Center: geom.V(2.5, 2.5, 2.5), Diameter: 2, Dip: f64(0), DipDir: f64(0)},
			{Center: geom.V(2.5, 2.5, 2.5), Diameter: 2, Normal: vecPtr(geom.NormalFromDipDirection(45, 90))},
			{Polygon: []geom.Vec3{
				geom.V(1.0, 2.5-s, 2.5+s),
				geom.V(4.0, 2.5-s, 2.5+s),
				geom.V(4.0, 2.5+s, 2.5-s),
				geom.V(1.0, 2.5+s, 2.5-s),
			}},
		},
	}
}

func vecPtr(v geom.Vec3) *geom.Vec3 { return &v }

func TestFractureDefMode(t *testing.T) {
	tests := []struct {
		name     string
		def      FractureDef
		wantMode string
		wantErr  bool
	}{
		{"angles", FractureDef{Diameter: 2, Dip: f64(30), DipDir: f64(90)}, ModeDiskAngles, false},
		{"normal", FractureDef{Diameter: 2, Normal: vecPtr(geom.V(0, 0, 1))}, ModeDiskNormal, false},
		{"polygon", FractureDef{Polygon: []geom.Vec3{geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(0, 1, 0)}}, ModePolygon, false},
		{"empty", FractureDef{}, "", true},
		{"angles and normal", FractureDef{Dip: f64(1), DipDir: f64(2), Normal: vecPtr(geom.V(0, 0, 1))}, "", true},
		{"dip without dip_dir", FractureDef{Diameter: 2, Dip: f64(30)}, "", true},
		{"polygon with disk fields", FractureDef{Diameter: 2, Polygon: []geom.Vec3{geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(0, 1, 0)}}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := tt.def.Mode()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Mode() err = %v, wantErr %v", err, tt.wantErr)
			}
			if mode != tt.wantMode {
				t.Errorf("Mode() = %q, want %q", mode, tt.wantMode)
			}
		})
	}
}

func TestSceneBuild(t *testing.T) {
	net, err := demoScene().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if net.NbFractures() != 3 {
		t.Fatalf("NbFractures = %d, want 3", net.NbFractures())
	}
	if net.System().NbWells() != 1 {
		t.Fatalf("NbWells = %d, want 1", net.System().NbWells())
	}

	net.ComputeIntersections()
	if got := net.NbIntersections(dfn.KindFractureFracture); got != 3 {
		t.Errorf("FF intersections = %d, want 3", got)
	}
	if got := net.NbIntersections(dfn.KindFractureWell); got != 3 {
		t.Errorf("FW intersections = %d, want 3", got)
	}
}

func TestSceneBuildWithGeneration(t *testing.T) {
	s := &Scene{
		System:   SystemDef{Center: geom.V(0, 0, 0), LX: 20, LY: 20, LZ: 20},
		Generate: &generate.Options{Count: 15, Seed: 11, SizeMin: 1, SizeMax: 4},
	}

	net, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if net.NbFractures() != 15 {
		t.Errorf("NbFractures = %d, want 15", net.NbFractures())
	}

	// Building the same scene twice yields identical populations.
	again, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range net.Fractures() {
		if net.Fracture(i).Center() != again.Fracture(i).Center() {
			t.Fatalf("fracture %d differs between builds", i)
		}
	}
}

func TestSceneValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
	}{
		{"no system", Scene{}},
		{"negative extent", Scene{System: SystemDef{LX: -1, LY: 5, LZ: 5}}},
		{"bad fracture", Scene{
			System:    SystemDef{LX: 5, LY: 5, LZ: 5},
			Fractures: []FractureDef{{}},
		}},
		{"bad well", Scene{
			System: SystemDef{LX: 5, LY: 5, LZ: 5},
			Wells:  []WellDef{{A: geom.V(1, 1, 1), B: geom.V(1, 1, 1)}},
		}},
		{"bad generate", Scene{
			System:   SystemDef{LX: 5, LY: 5, LZ: 5},
			Generate: &generate.Options{Count: -1},
		}},
		{"bad name", Scene{
			Name:   "../evil",
			System: SystemDef{LX: 5, LY: 5, LZ: 5},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.scene.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestSceneJSONRoundTrip(t *testing.T) {
	orig := demoScene()

	data, err := MarshalScene(orig)
	if err != nil {
		t.Fatalf("MarshalScene: %v", err)
	}
	back, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}

	if back.Name != orig.Name || len(back.Fractures) != len(orig.Fractures) || len(back.Wells) != len(orig.Wells) {
		t.Fatal("round trip lost structure")
	}

	// The rebuilt networks agree on the statistics.
	a, err := orig.Build()
	if err != nil {
		t.Fatalf("Build orig: %v", err)
	}
	b, err := back.Build()
	if err != nil {
		t.Fatalf("Build back: %v", err)
	}
	if a.Density() != b.Density() {
		t.Errorf("density differs after round trip: %v vs %v", a.Density(), b.Density())
	}
}

func TestFromNetwork(t *testing.T) {
	net, err := demoScene().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	back := FromNetwork(net)
	if len(back.Fractures) != 3 || len(back.Wells) != 1 {
		t.Fatalf("FromNetwork: %d fractures, %d wells", len(back.Fractures), len(back.Wells))
	}

	rebuilt, err := back.Build()
	if err != nil {
		t.Fatalf("Build rebuilt: %v", err)
	}
	if got, want := rebuilt.Density(), net.Density(); math.Abs(got-want) > 1e-12 {
		t.Errorf("density after network round trip = %v, want %v", got, want)
	}
}

func TestReadSceneFileTOML(t *testing.T) {
	content := `
name = "toml-demo"

[system]
lx = 5.0
ly = 5.0
lz = 5.0

[system.center]
x = 2.5
y = 2.5
z = 2.5

[[wells]]
name = "central"
a = { x = 2.5, y = 2.5, z = 0.0 }
b = { x = 2.5, y = 2.5, z = 5.0 }

[[fractures]]
diameter = 2.0
dip = 45.0
dip_dir = 90.0
center = { x = 2.5, y = 2.5, z = 2.5 }

[generate]
count = 5
seed = 3
size_min = 0.5
size_max = 2.0
`
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadSceneFile(path)
	if err != nil {
		t.Fatalf("ReadSceneFile: %v", err)
	}
	if s.Name != "toml-demo" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Generate == nil || s.Generate.Count != 5 {
		t.Errorf("Generate = %+v", s.Generate)
	}

	net, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if net.NbFractures() != 6 {
		t.Errorf("NbFractures = %d, want 1 explicit + 5 generated", net.NbFractures())
	}
}

func TestWriteSceneFileRoundTrip(t *testing.T) {
	for _, ext := range []string{"toml", "json"} {
		t.Run(ext, func(t *testing.T) {
			in := demoScene()
			in.Generate = &generate.Options{Count: 5, Seed: 3, SizeMin: 0.5, SizeMax: 2}

			path := filepath.Join(t.TempDir(), "scene."+ext)
			if err := WriteSceneFile(in, path); err != nil {
				t.Fatalf("WriteSceneFile: %v", err)
			}

			out, err := ReadSceneFile(path)
			if err != nil {
				t.Fatalf("ReadSceneFile: %v", err)
			}

			if out.Name != in.Name {
				t.Errorf("Name = %q, want %q", out.Name, in.Name)
			}
			if out.System != in.System {
				t.Errorf("System = %+v, want %+v", out.System, in.System)
			}
			if len(out.Fractures) != len(in.Fractures) || len(out.Wells) != len(in.Wells) {
				t.Fatalf("got %d fractures / %d wells, want %d / %d",
					len(out.Fractures), len(out.Wells), len(in.Fractures), len(in.Wells))
			}
			for i := range in.Fractures {
				wantMode, _ := in.Fractures[i].Mode()
				gotMode, err := out.Fractures[i].Mode()
				if err != nil || gotMode != wantMode {
					t.Errorf("fracture %d mode = %q (%v), want %q", i, gotMode, err, wantMode)
				}
			}
			if out.Generate == nil || *out.Generate != *in.Generate {
				t.Errorf("Generate = %+v, want %+v", out.Generate, in.Generate)
			}
		})
	}
}

func TestReadSceneRejectsInvalid(t *testing.T) {
	if _, err := ReadScene(bytes.NewReader([]byte(`{"system":{"lx":0,"ly":5,"lz":5}}`))); !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("invalid scene: err = %v", err)
	}
	if _, err := ReadScene(bytes.NewReader([]byte(`not json`))); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := ReadSceneFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}
