// Command planetgen runs the heightmap generator and writes one raw
// binary file per cube face into the current directory: width*width
// little-endian float32 values in row-major order. Existing files with
// the same names are overwritten.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
	"github.com/OCharnyshevich/cubeplanet/pkg/planet"
)

func main() {
	args := planet.DefaultArgs()

	newSeed := flag.Bool("new-seed", false, "draw the seed from OS entropy instead of the fixed default")
	seedHi := flag.Uint64("seed-hi", args.Seed.Hi, "high 64 bits of the seed")
	seedLo := flag.Uint64("seed-lo", args.Seed.Lo, "low 64 bits of the seed")
	prefix := flag.String("out", "height_map", "output file prefix; files are named <prefix>_<face>.f32")

	flag.IntVar(&args.Width, "width", args.Width, "face side length in pixels")
	flag.IntVar(&args.ContinentCount, "continents", args.ContinentCount, "number of tectonic plates")
	flag.Float64Var(&args.KernelRadius, "kernel-radius", args.KernelRadius, "plate drift influence radius in pixels")
	flag.IntVar(&args.FractalMainLayer, "fractal-main-layer", args.FractalMainLayer, "octave receiving full weight")
	flag.Float64Var(&args.FractalWeight, "fractal-weight", args.FractalWeight, "fractal noise scale relative to the continent field")
	flag.IntVar(&args.ErosionIterations, "erosion-iterations", args.ErosionIterations, "one-droplet-per-pixel erosion sweeps")
	flag.IntVar(&args.ErosionMaxLifetime, "erosion-max-lifetime", args.ErosionMaxLifetime, "droplet step cap")
	flag.StringVar(&args.WeightCurve, "weight-curve", args.WeightCurve, `height reshaping curve ("pow" or "blend")`)
	flag.Float64Var(&args.WeightGamma, "weight-gamma", args.WeightGamma, "exponent for the pow curve")
	flag.BoolVar(&args.OnlyGenerateFirstFace, "only-first-face", args.OnlyGenerateFirstFace, "generate terrain on face l only (debug)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *newSeed {
		seed, err := rng.NewSeed()
		if err != nil {
			log.Error("draw seed", "error", err)
			os.Exit(1)
		}
		args.Seed = seed
	} else {
		args.Seed = rng.Seed{Hi: *seedHi, Lo: *seedLo}
	}
	log.Info("seed", "hi", args.Seed.Hi, "lo", args.Seed.Lo)

	surface, err := planet.Run(args, log)
	if err != nil {
		log.Error("generate", "error", err)
		os.Exit(1)
	}

	var failed bool
	surface.ForEachFace(func(f cube.Face, g *cube.Grid[float64]) {
		path := fmt.Sprintf("%s_%s.f32", *prefix, f)
		if err := writeRaw(path, g); err != nil {
			log.Error("write face", "face", f.String(), "path", path, "error", err)
			failed = true
			return
		}
		log.Info("wrote face", "face", f.String(), "path", path, "bytes", 4*len(g.Values))
	})
	if failed {
		os.Exit(1)
	}
}

// writeRaw serializes one face grid as little-endian float32, row-major,
// overwriting path if it exists.
func writeRaw(path string, g *cube.Grid[float64]) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	var buf [4]byte
	for _, v := range g.Values {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return file.Close()
}
