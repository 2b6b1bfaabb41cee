package dfn

import (
	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// System is the bounding polyhedron containing a fracture network. A System
// starts empty; its geometry is defined by one of the Build methods. Wells
// ("tunnels") are registered on the system and participate in intersection
// computation of any network built on it.
//
// System is not safe for concurrent mutation.
type System struct {
	box   geom.Box
	built bool
	wells []*Well
}

// NewSystem creates an empty, unbuilt system.
func NewSystem() *System {
	return &System{}
}

// BuildParallelepiped defines the system as an axis-aligned box with the
// given center and edge lengths. All extents must be positive. Rebuilding a
// system replaces its previous geometry but keeps registered wells.
func (s *System) BuildParallelepiped(center geom.Vec3, lx, ly, lz float64) error {
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return errors.New(errors.ErrCodeInvalidSystem,
			"parallelepiped extents must be positive, got (%v, %v, %v)", lx, ly, lz)
	}
	s.box = geom.NewBoxCentered(center, lx, ly, lz)
	s.built = true
	return nil
}

// BuildBox defines the system directly from a box.
func (s *System) BuildBox(box geom.Box) error {
	if box.Volume() <= 0 {
		return errors.New(errors.ErrCodeInvalidSystem, "system box must have positive volume")
	}
	s.box = box
	s.built = true
	return nil
}

// Built reports whether the system geometry has been defined.
func (s *System) Built() bool { return s.built }

// Box returns the bounding box. The zero box is returned for unbuilt
// systems.
func (s *System) Box() geom.Box { return s.box }

// Volume returns the volume of the bounding polyhedron.
func (s *System) Volume() float64 { return s.box.Volume() }

// AddWellTunnel registers a well on the system and assigns its id.
func (s *System) AddWellTunnel(w *Well) error {
	if w == nil {
		return errors.New(errors.ErrCodeInvalidWell, "well must not be nil")
	}
	w.id = len(s.wells)
	s.wells = append(s.wells, w)
	return nil
}

// NbWells returns the number of registered wells.
func (s *System) NbWells() int { return len(s.wells) }

// Wells returns the registered wells in registration order. The slice is a
// copy; the wells themselves are shared.
func (s *System) Wells() []*Well {
	return append([]*Well(nil), s.wells...)
}

// ClipFracture clips a fracture's boundary to the system, returning the
// contained part of the boundary polygon. The result may be empty when the
// fracture lies entirely outside.
func (s *System) ClipFracture(f *Fracture) geom.Polygon {
	return s.box.ClipPolygon(f.Boundary())
}
