package planet

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

// Weight curve names accepted by Args.WeightCurve.
const (
	WeightCurvePow   = "pow"   // x^WeightGamma
	WeightCurveBlend = "blend" // inverse-smoothstep / square blend
)

// Args holds the generator configuration. Every field is validated once,
// up front; after Validate passes, generation cannot fail.
type Args struct {
	Seed           rng.Seed
	Width          int     // face side length in pixels, >= 2
	ContinentCount int     // tectonic plates, >= 1
	KernelRadius   float64 // drift influence radius in pixels, >= 1

	FractalMainLayer int     // octave receiving weight 1
	FractalWeight    float64 // scale of the fractal sum vs the continent field (=1)

	ErosionBrushRadius            int // erode footprint radius in pixels, >= 1
	ErosionIterations             int // full one-droplet-per-pixel sweeps, >= 0
	ErosionMaxLifetime            int // droplet step cap, >= 1
	ErosionStartSpeed             float64
	ErosionStartWater             float64
	ErosionInertia                float64 // [0,1]: 0 follows the gradient, 1 goes straight
	ErosionMinSedimentCapacity    float64
	ErosionSedimentCapacityFactor float64
	ErosionErodeSpeed             float64 // [0,1]
	ErosionDepositSpeed           float64 // [0,1]
	ErosionGravity                float64
	ErosionEvaporateSpeed         float64 // [0,1]

	WeightCurve string  // "pow" or "blend"
	WeightGamma float64 // exponent for the "pow" curve, > 0

	// OnlyGenerateFirstFace limits the fractal and erosion stages to face
	// L for quick inspection; the other five faces come back as zeros.
	OnlyGenerateFirstFace bool
}

// DefaultArgs returns the configuration the generator ships with. A
// width of (1<<12)+1 produces print-quality maps; the default stays at
// (1<<6)+1 so a default run finishes in seconds.
func DefaultArgs() Args {
	width := (1 << 6) + 1
	return Args{
		Seed:           rng.DefaultSeed(),
		Width:          width,
		ContinentCount: 6,
		KernelRadius:   float64(width) * 0.75,

		FractalMainLayer: 1,
		FractalWeight:    0.25,

		ErosionBrushRadius:            3,
		ErosionIterations:             1,
		ErosionMaxLifetime:            30,
		ErosionStartSpeed:             1.0,
		ErosionStartWater:             1.0,
		ErosionInertia:                0.3,
		ErosionMinSedimentCapacity:    0.01,
		ErosionSedimentCapacityFactor: 3.0,
		ErosionErodeSpeed:             0.3,
		ErosionDepositSpeed:           0.3,
		ErosionGravity:                4.0,
		ErosionEvaporateSpeed:         0.01,

		WeightCurve: WeightCurvePow,
		WeightGamma: 2.0,
	}
}

// InvalidArgumentError reports the first Args precondition found violated.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// Validate checks every precondition and returns an
// *InvalidArgumentError naming the first offending field, or nil.
func (a Args) Validate() error {
	fail := func(field, reason string) error {
		return &InvalidArgumentError{Field: field, Reason: reason}
	}

	if a.Width < 2 {
		return fail("width", "must be at least 2")
	}
	if a.ContinentCount < 1 {
		return fail("continent_count", "must be at least 1")
	}
	// Distinct physical surface locations, counting duplicated edge and
	// corner pixels once: 6(w-2)^2 interior + 12(w-2) edge + 8 corner.
	if surface := 6*a.Width*a.Width - 12*a.Width + 8; a.ContinentCount > surface {
		return fail("continent_count", fmt.Sprintf("more continents (%d) than surface pixels (%d)", a.ContinentCount, surface))
	}
	if a.KernelRadius < 1 {
		return fail("kernel_radius", "must be at least 1")
	}
	maxLayer := int(math.Ceil(math.Log2(float64(a.Width))))
	if a.FractalMainLayer < 0 || a.FractalMainLayer > maxLayer {
		return fail("fractal_main_layer", fmt.Sprintf("must be in [0, %d] for width %d", maxLayer, a.Width))
	}
	if a.FractalWeight < 0 {
		return fail("fractal_weight", "must not be negative")
	}
	if a.ErosionBrushRadius < 1 {
		return fail("erosion_brush_radius", "must be at least 1")
	}
	if a.ErosionIterations < 0 {
		return fail("erosion_iterations", "must not be negative")
	}
	if a.ErosionMaxLifetime < 1 {
		return fail("erosion_max_lifetime", "must be at least 1")
	}
	if a.ErosionStartSpeed < 0 {
		return fail("erosion_start_speed", "must not be negative")
	}
	if a.ErosionStartWater < 0 {
		return fail("erosion_start_water", "must not be negative")
	}
	if a.ErosionInertia < 0 || a.ErosionInertia > 1 {
		return fail("erosion_inertia", "must be in [0, 1]")
	}
	if a.ErosionMinSedimentCapacity < 0 {
		return fail("erosion_min_sediment_capacity", "must not be negative")
	}
	if a.ErosionSedimentCapacityFactor < 0 {
		return fail("erosion_sediment_capacity_factor", "must not be negative")
	}
	if a.ErosionErodeSpeed < 0 || a.ErosionErodeSpeed > 1 {
		return fail("erosion_erode_speed", "must be in [0, 1]")
	}
	if a.ErosionDepositSpeed < 0 || a.ErosionDepositSpeed > 1 {
		return fail("erosion_deposit_speed", "must be in [0, 1]")
	}
	if a.ErosionGravity < 0 {
		return fail("erosion_gravity", "must not be negative")
	}
	if a.ErosionEvaporateSpeed < 0 || a.ErosionEvaporateSpeed > 1 {
		return fail("erosion_evaporate_speed", "must be in [0, 1]")
	}
	switch a.WeightCurve {
	case WeightCurvePow:
		if a.WeightGamma <= 0 {
			return fail("weight_gamma", "must be positive")
		}
	case WeightCurveBlend:
	default:
		return fail("weight_curve", fmt.Sprintf("unknown curve %q", a.WeightCurve))
	}
	return nil
}
