// Package planet generates planetary heightmaps as the six faces of a
// cube, meant to be wrapped onto a sphere by the consumer. The output is
// a deterministic function of the seed and parameters: continents are
// grown by a randomized flood fill, plate drift raises and sinks the
// boundaries, seam-consistent fractal noise adds relief, and hydraulic
// erosion carves it.
package planet

import (
	"io"
	"log/slog"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/continent"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/erosion"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/noise"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/post"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

// Surface is the generator's result: six width x width heightmaps in
// canonical face order (L, B, R, F, U, D), every value in [0, 1], with
// duplicated edge pixels equal across adjacent faces.
type Surface = cube.Surface[float64]

// Run generates the heightmap for the given configuration. Two calls
// with equal Args return bit-identical surfaces. The logger only
// receives stage progress; pass nil to stay quiet.
func Run(args Args, log *slog.Logger) (*Surface, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	root := rng.New(args.Seed)
	width := args.Width

	var onlyFace *cube.Face
	if args.OnlyGenerateFirstFace {
		f := cube.Faces[0]
		onlyFace = &f
	}

	log.Info("generating continents", "width", width, "count", args.ContinentCount)
	continentStream := root.Sub("continent")
	heights, err := continent.Generate(width, args.ContinentCount, args.KernelRadius, &continentStream)
	if err != nil {
		return nil, err
	}
	post.Normalize(heights)

	log.Info("adding fractal noise", "main_layer", args.FractalMainLayer, "weight", args.FractalWeight)
	noiseStream := root.Sub("noise")
	lattice := noise.NewLattice(&noiseStream)
	if err := noise.Fractal(heights, lattice, args.FractalMainLayer, args.FractalWeight, onlyFace); err != nil {
		return nil, err
	}
	post.Normalize(heights)

	log.Info("reshaping height distribution", "curve", args.WeightCurve)
	switch args.WeightCurve {
	case WeightCurveBlend:
		post.Weight(heights, post.WeightBlend)
	default:
		post.Weight(heights, post.WeightPow(args.WeightGamma))
	}

	log.Info("eroding", "iterations", args.ErosionIterations)
	erosionStream := root.Sub("erosion")
	erosion.Simulate(heights, erosion.Params{
		Iterations:             args.ErosionIterations,
		MaxLifetime:            args.ErosionMaxLifetime,
		StartSpeed:             args.ErosionStartSpeed,
		StartWater:             args.ErosionStartWater,
		Inertia:                args.ErosionInertia,
		MinSedimentCapacity:    args.ErosionMinSedimentCapacity,
		SedimentCapacityFactor: args.ErosionSedimentCapacityFactor,
		ErodeSpeed:             args.ErosionErodeSpeed,
		DepositSpeed:           args.ErosionDepositSpeed,
		Gravity:                args.ErosionGravity,
		EvaporateSpeed:         args.ErosionEvaporateSpeed,
		BrushRadius:            args.ErosionBrushRadius,
	}, &erosionStream, onlyFace)

	post.Normalize(heights)

	if onlyFace != nil {
		// The continent stage needed the whole cube for its topology, and
		// stray droplets may have deposited off-face; everything but the
		// first face is returned as exact zeros. Zeroing after the rescale
		// keeps these grids at 0 even when the eroded face dipped negative
		// before normalization.
		for _, f := range cube.Faces[1:] {
			g := heights.Face(f)
			for i := range g.Values {
				g.Values[i] = 0
			}
		}
	}

	log.Info("done")
	return heights, nil
}
