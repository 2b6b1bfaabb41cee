// Package render turns computed fracture networks into exportable geometry.
//
// [BuildMesh] converts a network into a flat [Mesh] of polygon faces
// (fractures), polylines (wells and intersection traces), and per-cell
// scalars. The sink subpackage serializes meshes to viewer formats (VTK,
// OBJ, JSON); the nodelink subpackage renders the connectivity graph
// through Graphviz.
package render

import (
	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// Cell scalar values identifying the source of a line cell.
const (
	scalarWell  = -1.0
	scalarTrace = -2.0
)

// Options configures mesh construction.
type Options struct {
	// ClipToSystem clips fracture faces to the bounding system, dropping
	// fractures that lie entirely outside.
	ClipToSystem bool

	// Wells includes well trajectories as line cells.
	Wells bool

	// Traces includes intersection traces as line cells. Requires computed
	// intersections; BuildMesh computes them if needed.
	Traces bool
}

// Mesh is viewer-ready geometry: a vertex pool with polygon faces and
// polyline cells indexing into it. FaceScalars carries one value per face
// (the fracture id); LineScalars one value per line (negative markers for
// wells and traces).
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][]int
	Lines    [][]int

	FaceScalars []float64
	LineScalars []float64
}

// NbCells returns the total number of cells (faces plus lines).
func (m *Mesh) NbCells() int {
	return len(m.Faces) + len(m.Lines)
}

// addVertex appends a vertex and returns its index. Vertices are not
// deduplicated; viewers handle shared coordinates fine and meshes stay
// small at network scale.
func (m *Mesh) addVertex(p geom.Vec3) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

func (m *Mesh) addFace(poly geom.Polygon, scalar float64) {
	face := make([]int, 0, poly.Len())
	for _, p := range poly.Points {
		face = append(face, m.addVertex(p))
	}
	m.Faces = append(m.Faces, face)
	m.FaceScalars = append(m.FaceScalars, scalar)
}

func (m *Mesh) addLine(s geom.Segment, scalar float64) {
	a := m.addVertex(s.A)
	b := m.addVertex(s.B)
	m.Lines = append(m.Lines, []int{a, b})
	m.LineScalars = append(m.LineScalars, scalar)
}

// BuildMesh converts a network into a mesh. Face order follows fracture id
// order and line order follows well registration then intersection order,
// so output is deterministic.
func BuildMesh(net *dfn.Network, opts Options) *Mesh {
	m := &Mesh{}

	for _, f := range net.Fractures() {
		boundary := f.Boundary()
		if opts.ClipToSystem {
			boundary = net.System().ClipFracture(f)
			if boundary.Len() < 3 {
				continue
			}
		}
		m.addFace(boundary, float64(f.ID()))
	}

	if opts.Wells {
		for _, w := range net.System().Wells() {
			m.addLine(w.Segment(), scalarWell)
		}
	}

	if opts.Traces {
		for _, ix := range net.Intersections(dfn.KindFractureFracture) {
			m.addLine(ix.Trace, scalarTrace)
		}
	}

	return m
}
