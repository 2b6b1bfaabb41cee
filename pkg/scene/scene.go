// Package scene defines the canonical serialization format for fracture
// network scenarios. A Scene captures everything needed to rebuild a
// network: the bounding system, explicit fractures, wells, and an optional
// stochastic generation block.
//
// The format is human-readable and designed for round-trip fidelity:
// build → serialize → re-read produces an identical network. Scenes are
// stored as JSON (API, cache, store) or authored by hand as TOML.
package scene

import (
	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/generate"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// Fracture construction modes as reported by [FractureDef.Mode].
const (
	ModeDiskAngles = "disk-angles"
	ModeDiskNormal = "disk-normal"
	ModePolygon    = "polygon"
)

// Scene is the serializable definition of a fracture network scenario.
type Scene struct {
	Name      string            `json:"name,omitempty" bson:"name,omitempty" toml:"name"`
	System    SystemDef         `json:"system" bson:"system" toml:"system"`
	Fractures []FractureDef     `json:"fractures,omitempty" bson:"fractures,omitempty" toml:"fractures"`
	Wells     []WellDef         `json:"wells,omitempty" bson:"wells,omitempty" toml:"wells"`
	Generate  *generate.Options `json:"generate,omitempty" bson:"generate,omitempty" toml:"generate"`
}

// SystemDef describes the bounding parallelepiped.
type SystemDef struct {
	Center geom.Vec3 `json:"center" bson:"center" toml:"center"`
	LX     float64   `json:"lx" bson:"lx" toml:"lx"`
	LY     float64   `json:"ly" bson:"ly" toml:"ly"`
	LZ     float64   `json:"lz" bson:"lz" toml:"lz"`
}

// FractureDef describes one explicit fracture. Exactly one construction
// mode must be populated:
//
//   - disk by angles: Center, Diameter, Dip, DipDir
//   - disk by normal: Center, Diameter, Normal
//   - polygon: Polygon
type FractureDef struct {
	Center   geom.Vec3   `json:"center,omitempty" bson:"center,omitempty" toml:"center"`
	Diameter float64     `json:"diameter,omitempty" bson:"diameter,omitempty" toml:"diameter"`
	Dip      *float64    `json:"dip,omitempty" bson:"dip,omitempty" toml:"dip"`
	DipDir   *float64    `json:"dip_dir,omitempty" bson:"dip_dir,omitempty" toml:"dip_dir"`
	Normal   *geom.Vec3  `json:"normal,omitempty" bson:"normal,omitempty" toml:"normal"`
	Polygon  []geom.Vec3 `json:"polygon,omitempty" bson:"polygon,omitempty" toml:"polygon"`
}

// WellDef describes one well tunnel by its endpoints.
type WellDef struct {
	Name string    `json:"name,omitempty" bson:"name,omitempty" toml:"name"`
	A    geom.Vec3 `json:"a" bson:"a" toml:"a"`
	B    geom.Vec3 `json:"b" bson:"b" toml:"b"`
}

// Mode returns the construction mode of the definition, or an error when
// the populated fields do not select exactly one mode.
func (d FractureDef) Mode() (string, error) {
	hasPolygon := len(d.Polygon) > 0
	hasAngles := d.Dip != nil || d.DipDir != nil
	hasNormal := d.Normal != nil

	switch {
	case hasPolygon && (hasAngles || hasNormal || d.Diameter != 0):
		return "", errors.New(errors.ErrCodeInvalidFracture, "polygon fracture must not set disk fields")
	case hasPolygon:
		return ModePolygon, nil
	case hasAngles && hasNormal:
		return "", errors.New(errors.ErrCodeInvalidFracture, "disk fracture must set either angles or normal, not both")
	case hasNormal:
		return ModeDiskNormal, nil
	case hasAngles:
		if d.Dip == nil || d.DipDir == nil {
			return "", errors.New(errors.ErrCodeInvalidFracture, "disk fracture needs both dip and dip_dir")
		}
		return ModeDiskAngles, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFracture, "fracture definition is empty")
	}
}

// build constructs the fracture described by the definition.
func (d FractureDef) build() (*dfn.Fracture, error) {
	mode, err := d.Mode()
	if err != nil {
		return nil, err
	}
	switch mode {
	case ModePolygon:
		return dfn.NewPolygonFracture(geom.NewPolygon(d.Polygon...))
	case ModeDiskNormal:
		return dfn.NewDiskFractureWithNormal(d.Center, d.Diameter, *d.Normal)
	default:
		return dfn.NewDiskFracture(d.Center, d.Diameter, *d.Dip, *d.DipDir)
	}
}

// Validate checks the scene without building it.
func (s *Scene) Validate() error {
	if s.Name != "" {
		if err := errors.ValidateSceneName(s.Name); err != nil {
			return err
		}
	}
	if s.System.LX <= 0 || s.System.LY <= 0 || s.System.LZ <= 0 {
		return errors.New(errors.ErrCodeInvalidScene,
			"system extents must be positive, got (%v, %v, %v)", s.System.LX, s.System.LY, s.System.LZ)
	}
	for i, d := range s.Fractures {
		if _, err := d.Mode(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "fracture %d", i)
		}
	}
	for i, w := range s.Wells {
		if w.A == w.B {
			return errors.New(errors.ErrCodeInvalidScene, "well %d has coincident endpoints", i)
		}
	}
	if s.Generate != nil {
		g := *s.Generate
		if err := g.ValidateAndSetDefaults(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "generate block")
		}
	}
	return nil
}

// Build assembles the network described by the scene: system, wells,
// explicit fractures, then the stochastic population if a generate block is
// present. The result has no computed intersections yet.
func (s *Scene) Build() (*dfn.Network, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sys := dfn.NewSystem()
	if err := sys.BuildParallelepiped(s.System.Center, s.System.LX, s.System.LY, s.System.LZ); err != nil {
		return nil, err
	}
	for i, wd := range s.Wells {
		w, err := dfn.NewNamedWell(wd.Name, wd.A, wd.B)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "well %d", i)
		}
		if err := sys.AddWellTunnel(w); err != nil {
			return nil, err
		}
	}

	net, err := dfn.NewNetwork(sys)
	if err != nil {
		return nil, err
	}
	for i, fd := range s.Fractures {
		f, err := fd.build()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "fracture %d", i)
		}
		if err := net.AddFracture(f); err != nil {
			return nil, err
		}
	}

	if s.Generate != nil {
		generated, err := generate.Fractures(sys.Box(), *s.Generate)
		if err != nil {
			return nil, err
		}
		if err := net.AddFractures(generated); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// FromNetwork converts a network back to its scene definition. Disk
// fractures serialize with their normal (the authoritative orientation);
// polygon fractures with their boundary. Generated fractures appear as
// explicit definitions, so the round trip does not depend on the generator.
func FromNetwork(net *dfn.Network) *Scene {
	box := net.System().Box()
	e := box.Extents()
	s := &Scene{
		System: SystemDef{Center: box.Center(), LX: e.X, LY: e.Y, LZ: e.Z},
	}

	for _, w := range net.System().Wells() {
		s.Wells = append(s.Wells, WellDef{Name: w.Name(), A: w.A(), B: w.B()})
	}
	for _, f := range net.Fractures() {
		if f.Shape() == dfn.ShapeDisk {
			n := f.Normal()
			s.Fractures = append(s.Fractures, FractureDef{
				Center:   f.Center(),
				Diameter: f.Size(),
				Normal:   &n,
			})
			continue
		}
		s.Fractures = append(s.Fractures, FractureDef{Polygon: f.Boundary().Points})
	}
	return s
}
