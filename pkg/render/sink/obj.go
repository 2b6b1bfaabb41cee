package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/fracnet/pkg/render"
)

// OBJOption configures OBJ rendering via [RenderOBJ].
type OBJOption func(*objRenderer)

type objRenderer struct {
	object string
}

// WithOBJObject sets the object name emitted in the header (default
// "network").
func WithOBJObject(name string) OBJOption {
	return func(r *objRenderer) { r.object = name }
}

// RenderOBJ serializes the mesh as a Wavefront OBJ document: fracture
// faces as polygon faces, wells and traces as line elements. OBJ indices
// are 1-based.
func RenderOBJ(m *render.Mesh, opts ...OBJOption) ([]byte, error) {
	r := objRenderer{object: "network"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "o %s\n", r.object)

	for _, v := range m.Vertices {
		fmt.Fprintf(&buf, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, f := range m.Faces {
		buf.WriteString("f")
		for _, i := range f {
			fmt.Fprintf(&buf, " %d", i+1)
		}
		buf.WriteByte('\n')
	}
	for _, l := range m.Lines {
		buf.WriteString("l")
		for _, i := range l {
			fmt.Fprintf(&buf, " %d", i+1)
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}
