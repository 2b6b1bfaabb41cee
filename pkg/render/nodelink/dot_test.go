package nodelink

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// nodeNames returns the DOT node names in declaration order.
func nodeNames(dot string) []string {
	var names []string
	for _, line := range strings.Split(dot, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, `"`) || !strings.Contains(line, "[") || strings.Contains(line, "--") {
			continue
		}
		end := strings.Index(line[1:], `"`)
		if end >= 0 {
			names = append(names, line[1:1+end])
		}
	}
	return names
}

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

func TestToDOT(t *testing.T) {
	dot := ToDOT(demoNetwork(t), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Fatalf("not an undirected graph:\n%s", dot)
	}
	want := []string{"F0", "F1", "central"}
	if got := nodeNames(dot); !reflect.DeepEqual(got, want) {
		t.Errorf("nodes = %v, want %v", got, want)
	}
	if !strings.Contains(dot, `"F0" -- "F1";`) {
		t.Errorf("missing fracture-fracture edge:\n%s", dot)
	}
	for _, edge := range []string{`"F0" -- "central" [style=dashed];`, `"F1" -- "central" [style=dashed];`} {
		if !strings.Contains(dot, edge) {
			t.Errorf("missing well edge %q:\n%s", edge, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(demoNetwork(t), Options{Detailed: true})
	if !strings.Contains(dot, "size: 2") {
		t.Errorf("detailed labels missing size:\n%s", dot)
	}
	if !strings.Contains(dot, "area:") {
		t.Errorf("detailed labels missing area:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(demoNetwork(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, "<svg") {
		t.Errorf("output is not SVG: %.100s", s)
	}
	if !strings.Contains(s, "F0") {
		t.Errorf("output missing node label: %.200s", s)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if strings.Contains(out, "pt") {
		t.Errorf("point units survived: %s", out)
	}
}
