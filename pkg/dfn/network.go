package dfn

import (
	"sort"

	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// Network is a discrete fracture network: a population of fractures situated
// within one System, together with the computed set of pairwise
// intersections and derived statistics.
//
// Intersections are not maintained incrementally. Adding a fracture marks
// the computed set stale; ComputeIntersections rebuilds it, and the stats
// accessors recompute lazily when stale. Insertion order of fractures is not
// semantically significant, but ids and all derived outputs are
// deterministic for a given population.
//
// Network is not safe for concurrent mutation.
type Network struct {
	system    *System
	fractures []*Fracture

	intersections []Intersection
	computed      bool
}

// NewNetwork creates an empty network on the given system. The system must
// be built before a network can be created on it.
func NewNetwork(system *System) (*Network, error) {
	if system == nil {
		return nil, errors.New(errors.ErrCodeInvalidSystem, "network requires a system")
	}
	if !system.Built() {
		return nil, errors.New(errors.ErrCodeSystemNotBuilt, "system geometry must be built before creating a network")
	}
	return &Network{system: system}, nil
}

// System returns the bounding system of the network.
func (n *Network) System() *System { return n.system }

// AddFracture appends a fracture to the population, assigns its id, and
// invalidates computed intersections. A fracture belongs to at most one
// network.
func (n *Network) AddFracture(f *Fracture) error {
	if f == nil {
		return errors.New(errors.ErrCodeInvalidFracture, "fracture must not be nil")
	}
	if f.id >= 0 {
		return errors.New(errors.ErrCodeInvalidFracture, "fracture %d already belongs to a network", f.id)
	}
	f.id = len(n.fractures)
	n.fractures = append(n.fractures, f)
	n.computed = false
	return nil
}

// AddFractures appends all given fractures, stopping at the first error.
func (n *Network) AddFractures(fractures []*Fracture) error {
	for _, f := range fractures {
		if err := n.AddFracture(f); err != nil {
			return err
		}
	}
	return nil
}

// NbFractures returns the number of fractures in the population.
func (n *Network) NbFractures() int { return len(n.fractures) }

// Fractures returns the population in id order. The slice is a copy; the
// fractures themselves are shared.
func (n *Network) Fractures() []*Fracture {
	return append([]*Fracture(nil), n.fractures...)
}

// Fracture returns the fracture with the given id, or nil.
func (n *Network) Fracture(id int) *Fracture {
	if id < 0 || id >= len(n.fractures) {
		return nil
	}
	return n.fractures[id]
}

// ComputeIntersections computes all pairwise fracture-fracture and
// fracture-well intersections. Calling it when the computed set is current
// is a no-op. Results are ordered by (kind, A, B), so repeated runs on the
// same population are identical.
func (n *Network) ComputeIntersections() {
	if n.computed {
		return
	}
	n.intersections = n.intersections[:0]

	for i := 0; i < len(n.fractures); i++ {
		for j := i + 1; j < len(n.fractures); j++ {
			trace, ok := geom.IntersectPolygons(n.fractures[i].Boundary(), n.fractures[j].Boundary())
			if !ok {
				continue
			}
			n.intersections = append(n.intersections, Intersection{
				Kind:  KindFractureFracture,
				A:     n.fractures[i].id,
				B:     n.fractures[j].id,
				Trace: trace,
			})
		}
	}

	for _, f := range n.fractures {
		for _, w := range n.system.wells {
			pt, ok := geom.IntersectSegmentPolygon(w.a, w.b, f.Boundary())
			if !ok {
				continue
			}
			n.intersections = append(n.intersections, Intersection{
				Kind:  KindFractureWell,
				A:     f.id,
				B:     w.id,
				Trace: geom.Segment{A: pt, B: pt},
			})
		}
	}

	sort.Slice(n.intersections, func(a, b int) bool {
		x, y := n.intersections[a], n.intersections[b]
		if x.Kind != y.Kind {
			return x.Kind < y.Kind
		}
		if x.A != y.A {
			return x.A < y.A
		}
		return x.B < y.B
	})
	n.computed = true
}

// NbIntersections returns the number of computed intersections of the given
// kind, recomputing first if the set is stale.
func (n *Network) NbIntersections(kind IntersectionKind) int {
	return len(n.Intersections(kind))
}

// Intersections returns the computed intersections of the given kind in
// deterministic (A, B) order, recomputing first if the set is stale.
func (n *Network) Intersections(kind IntersectionKind) []Intersection {
	n.ComputeIntersections()
	var out []Intersection
	for _, ix := range n.intersections {
		if ix.Kind == kind {
			out = append(out, ix)
		}
	}
	return out
}

// AllIntersections returns every computed intersection, recomputing first if
// the set is stale.
func (n *Network) AllIntersections() []Intersection {
	n.ComputeIntersections()
	return append([]Intersection(nil), n.intersections...)
}

// Density returns the P32 fracture intensity: total fracture surface area
// contained in the system divided by the system volume. Fracture parts
// outside the bounding polyhedron do not count; for disks the clipped area
// is evaluated on the discretized boundary, while fully interior fractures
// use their analytic area.
func (n *Network) Density() float64 {
	vol := n.system.Volume()
	if vol <= 0 {
		return 0
	}
	var total float64
	for _, f := range n.fractures {
		total += n.containedArea(f)
	}
	return total / vol
}

// containedArea returns the fracture area inside the system.
func (n *Network) containedArea(f *Fracture) float64 {
	boundary := f.Boundary()
	inside := true
	for _, p := range boundary.Points {
		if !n.system.box.Contains(p) {
			inside = false
			break
		}
	}
	if inside {
		return f.Area()
	}
	return n.system.box.ClipPolygon(boundary).Area()
}

// Clusters returns the connected components of the fracture population
// under fracture-fracture intersections, as sorted id slices, largest
// component first (ties broken by smallest id). Isolated fractures form
// singleton clusters.
func (n *Network) Clusters() [][]int {
	n.ComputeIntersections()

	parent := make([]int, len(n.fractures))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for _, ix := range n.intersections {
		if ix.Kind == KindFractureFracture {
			union(ix.A, ix.B)
		}
	}

	groups := make(map[int][]int)
	for i := range n.fractures {
		root := find(i)
		groups[root] = append(groups[root], i)
	}

	out := make([][]int, 0, len(groups))
	for _, g := range groups {
		sort.Ints(g)
		out = append(out, g)
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a]) != len(out[b]) {
			return len(out[a]) > len(out[b])
		}
		return out[a][0] < out[b][0]
	})
	return out
}
