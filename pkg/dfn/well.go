package dfn

import (
	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// Well is a borehole modeled as a straight line segment between two points.
// Wells are immutable after construction.
type Well struct {
	id   int
	name string
	a, b geom.Vec3
}

// NewWell constructs a well from its two endpoints. The endpoints must be
// distinct.
func NewWell(a, b geom.Vec3) (*Well, error) {
	if a.Dist(b) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidWell, "well endpoints must be distinct")
	}
	return &Well{id: -1, a: a, b: b}, nil
}

// NewNamedWell constructs a well with a display name, used in exports and
// connectivity graphs.
func NewNamedWell(name string, a, b geom.Vec3) (*Well, error) {
	w, err := NewWell(a, b)
	if err != nil {
		return nil, err
	}
	w.name = name
	return w, nil
}

// ID returns the well's identifier within its system, or -1 if the well has
// not been registered yet.
func (w *Well) ID() int { return w.id }

// Name returns the well's display name, which may be empty.
func (w *Well) Name() string { return w.name }

// A returns the first endpoint.
func (w *Well) A() geom.Vec3 { return w.a }

// B returns the second endpoint.
func (w *Well) B() geom.Vec3 { return w.b }

// Segment returns the well trajectory as a segment.
func (w *Well) Segment() geom.Segment {
	return geom.Segment{A: w.a, B: w.b}
}

// Length returns the well length.
func (w *Well) Length() float64 {
	return w.a.Dist(w.b)
}
