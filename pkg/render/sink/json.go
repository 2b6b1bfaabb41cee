package sink

import (
	"encoding/json"

	"github.com/matzehuels/fracnet/pkg/geom"
	"github.com/matzehuels/fracnet/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	stats *NetworkStats
}

// NetworkStats carries the derived statistics of a computed network for
// inclusion in JSON output.
type NetworkStats struct {
	Fractures        int     `json:"fractures"`
	Wells            int     `json:"wells"`
	FractureFracture int     `json:"fracture_fracture"`
	FractureWell     int     `json:"fracture_well"`
	Density          float64 `json:"density"`
	Clusters         int     `json:"clusters,omitempty"`
}

// WithJSONStats includes network statistics in the JSON output.
func WithJSONStats(s NetworkStats) JSONOption {
	return func(r *jsonRenderer) { r.stats = &s }
}

type jsonOutput struct {
	Vertices    []geom.Vec3   `json:"vertices"`
	Faces       [][]int       `json:"faces,omitempty"`
	Lines       [][]int       `json:"lines,omitempty"`
	FaceScalars []float64     `json:"face_scalars,omitempty"`
	LineScalars []float64     `json:"line_scalars,omitempty"`
	Stats       *NetworkStats `json:"stats,omitempty"`
}

// RenderJSON exports the mesh and optional statistics as a pretty-printed
// JSON document. This is the primary data interchange format for fracnet,
// enabling integration with external tools and cached re-rendering without
// recomputation.
//
// RenderJSON does not modify the mesh and is safe to call concurrently.
func RenderJSON(m *render.Mesh, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Vertices:    m.Vertices,
		Faces:       m.Faces,
		Lines:       m.Lines,
		FaceScalars: m.FaceScalars,
		LineScalars: m.LineScalars,
		Stats:       r.stats,
	}
	return json.MarshalIndent(out, "", "  ")
}
