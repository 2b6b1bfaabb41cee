// Package sink serializes meshes to file formats consumed by external
// viewers. Each sink takes a [render.Mesh] plus functional options and
// returns the encoded bytes; writing to disk is the caller's concern.
package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/fracnet/pkg/render"
)

// VTKOption configures VTK rendering via [RenderVTK].
type VTKOption func(*vtkRenderer)

type vtkRenderer struct {
	title   string
	scalars bool
}

// WithVTKTitle sets the dataset title line (default "fracnet network").
// VTK truncates titles beyond 255 characters; shorter is better.
func WithVTKTitle(title string) VTKOption {
	return func(r *vtkRenderer) { r.title = title }
}

// WithVTKScalars includes per-cell scalar data (fracture ids on faces,
// negative markers on well and trace lines), which viewers use for
// coloring.
func WithVTKScalars() VTKOption {
	return func(r *vtkRenderer) { r.scalars = true }
}

// RenderVTK serializes the mesh as a legacy ASCII VTK PolyData file, the
// lowest common denominator read by ParaView, VisIt, and PyVista. Cells are
// emitted lines first, then polygons, matching VTK's fixed cell ordering,
// and scalar data follows the same order.
func RenderVTK(m *render.Mesh, opts ...VTKOption) ([]byte, error) {
	r := vtkRenderer{title: "fracnet network"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString("# vtk DataFile Version 3.0\n")
	fmt.Fprintf(&buf, "%s\n", r.title)
	buf.WriteString("ASCII\n")
	buf.WriteString("DATASET POLYDATA\n")

	fmt.Fprintf(&buf, "POINTS %d float\n", len(m.Vertices))
	for _, v := range m.Vertices {
		fmt.Fprintf(&buf, "%g %g %g\n", v.X, v.Y, v.Z)
	}

	if len(m.Lines) > 0 {
		size := 0
		for _, l := range m.Lines {
			size += len(l) + 1
		}
		fmt.Fprintf(&buf, "LINES %d %d\n", len(m.Lines), size)
		for _, l := range m.Lines {
			writeCell(&buf, l)
		}
	}

	if len(m.Faces) > 0 {
		size := 0
		for _, f := range m.Faces {
			size += len(f) + 1
		}
		fmt.Fprintf(&buf, "POLYGONS %d %d\n", len(m.Faces), size)
		for _, f := range m.Faces {
			writeCell(&buf, f)
		}
	}

	if r.scalars && m.NbCells() > 0 {
		fmt.Fprintf(&buf, "CELL_DATA %d\n", m.NbCells())
		buf.WriteString("SCALARS fracture float 1\n")
		buf.WriteString("LOOKUP_TABLE default\n")
		for _, s := range m.LineScalars {
			fmt.Fprintf(&buf, "%g\n", s)
		}
		for _, s := range m.FaceScalars {
			fmt.Fprintf(&buf, "%g\n", s)
		}
	}

	return buf.Bytes(), nil
}

func writeCell(buf *bytes.Buffer, indices []int) {
	fmt.Fprintf(buf, "%d", len(indices))
	for _, i := range indices {
		fmt.Fprintf(buf, " %d", i)
	}
	buf.WriteByte('\n')
}
