// Package generate produces stochastic fracture populations for network
// assembly. Generation is fully deterministic for a given seed, so scenarios
// are reproducible across runs and machines.
//
// Centers are sampled uniformly in the system box, diameters from a bounded
// power law (the standard size model for natural fracture networks), and
// orientations from a Fisher distribution around a mean dip / dip-direction
// pole. A non-positive concentration produces uniformly random orientations.
package generate

import (
	"math"
	"math/rand"

	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/geom"
)

// Default parameter values applied by [Options.ValidateAndSetDefaults].
const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultSizeExponent is the default power-law exponent for diameters.
	// Field surveys typically report exponents between 2.5 and 3.5.
	DefaultSizeExponent = 3.0
)

// Options configures stochastic fracture generation.
// The zero value is not usable; call ValidateAndSetDefaults first.
type Options struct {
	// Count is the number of fractures to generate. Required.
	Count int `json:"count" toml:"count"`

	// Seed drives the random stream. Zero selects DefaultSeed.
	Seed uint64 `json:"seed,omitempty" toml:"seed"`

	// SizeMin and SizeMax bound the power-law diameter distribution.
	// Both are required and must satisfy 0 < SizeMin <= SizeMax.
	SizeMin float64 `json:"size_min" toml:"size_min"`
	SizeMax float64 `json:"size_max" toml:"size_max"`

	// SizeExponent is the power-law exponent. Zero selects
	// DefaultSizeExponent.
	SizeExponent float64 `json:"size_exponent,omitempty" toml:"size_exponent"`

	// MeanDip and MeanDipDir define the mean orientation pole (degrees).
	MeanDip    float64 `json:"mean_dip" toml:"mean_dip"`
	MeanDipDir float64 `json:"mean_dip_dir" toml:"mean_dip_dir"`

	// FisherKappa is the Fisher concentration around the mean pole.
	// Values <= 0 select uniformly random orientations.
	FisherKappa float64 `json:"fisher_kappa,omitempty" toml:"fisher_kappa"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Count <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "generation count must be positive, got %d", o.Count)
	}
	if o.SizeMin <= 0 || o.SizeMax < o.SizeMin {
		return errors.New(errors.ErrCodeInvalidInput,
			"size bounds must satisfy 0 < min <= max, got [%v, %v]", o.SizeMin, o.SizeMax)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.SizeExponent == 0 {
		o.SizeExponent = DefaultSizeExponent
	}
	return nil
}

// Fractures generates a fracture population inside the given box according
// to opts. The same options always produce the same population.
func Fractures(box geom.Box, opts Options) ([]*dfn.Fracture, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(int64(opts.Seed)))

	out := make([]*dfn.Fracture, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		center := uniformInBox(rng, box)
		diameter := powerLaw(rng, opts.SizeMin, opts.SizeMax, opts.SizeExponent)
		normal := sampleOrientation(rng, opts)

		f, err := dfn.NewDiskFractureWithNormal(center, diameter, normal)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "generated fracture %d", i)
		}
		out = append(out, f)
	}
	return out, nil
}

// uniformInBox samples a point uniformly inside the box.
func uniformInBox(rng *rand.Rand, box geom.Box) geom.Vec3 {
	e := box.Extents()
	return geom.Vec3{
		X: box.Min.X + rng.Float64()*e.X,
		Y: box.Min.Y + rng.Float64()*e.Y,
		Z: box.Min.Z + rng.Float64()*e.Z,
	}
}

// powerLaw samples from a bounded Pareto distribution with the given
// exponent via inverse transform sampling.
func powerLaw(rng *rand.Rand, min, max, exponent float64) float64 {
	if min == max {
		return min
	}
	u := rng.Float64()
	if math.Abs(exponent-1) < 1e-12 {
		// The a=1 case degenerates to a log-uniform distribution.
		return min * math.Exp(u*math.Log(max/min))
	}
	a := 1 - exponent
	lo := math.Pow(min, a)
	hi := math.Pow(max, a)
	return math.Pow(lo+u*(hi-lo), 1/a)
}

// sampleOrientation draws a unit normal: Fisher-distributed around the mean
// pole for positive kappa, uniform on the sphere otherwise.
func sampleOrientation(rng *rand.Rand, opts Options) geom.Vec3 {
	if opts.FisherKappa <= 0 {
		return uniformOnSphere(rng)
	}

	mean := geom.NormalFromDipDirection(opts.MeanDip, opts.MeanDipDir)

	// Angular distance from the mean pole, by inverting the Fisher CDF.
	kappa := opts.FisherKappa
	u := rng.Float64()
	cosTheta := 1 + math.Log(1-u*(1-math.Exp(-2*kappa)))/kappa
	theta := math.Acos(math.Min(1, math.Max(-1, cosTheta)))
	phi := 2 * math.Pi * rng.Float64()

	// Tilt the mean pole by theta in a uniformly random in-plane azimuth.
	u1, v1 := geom.PlaneBasis(mean)
	axis := u1.Scale(math.Cos(phi)).Add(v1.Scale(math.Sin(phi)))
	return mean.Rotate(axis, theta)
}

// uniformOnSphere samples a direction uniformly on the unit sphere.
func uniformOnSphere(rng *rand.Rand) geom.Vec3 {
	z := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	r := math.Sqrt(1 - z*z)
	return geom.Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}
