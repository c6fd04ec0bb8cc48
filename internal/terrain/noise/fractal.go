package noise

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
)

const octaveFalloff = 0.5

// OctaveCount is the smallest octave count such that the highest-frequency
// lattice cell is at most one pixel wide: ⌈log2(width)⌉.
func OctaveCount(width int) int {
	return int(math.Ceil(math.Log2(float64(width))))
}

// Fractal adds weight * Σ w_o·noise(p·2^o, o) into surface, for octaves
// 0..OctaveCount(width)-1, with w_o = 1 at o == mainLayer and α^|o-mainLayer|
// (α=0.5) elsewhere. Each face is computed by its own goroutine; the
// lattice's gradients are a pure function of (i,j,k,octave) so there is no
// shared mutable state besides each goroutine's own destination face.
func Fractal(surface *cube.Surface[float64], lattice *Lattice, mainLayer int, weight float64, onlyFace *cube.Face) error {
	octaves := OctaveCount(surface.Width)
	width := surface.Width

	var g errgroup.Group
	for _, f := range cube.Faces {
		if onlyFace != nil && f != *onlyFace {
			continue
		}
		f := f
		g.Go(func() error {
			dst := surface.Face(f)
			for y := 0; y < width; y++ {
				for x := 0; x < width; x++ {
					// The sampling domain is the cube surface itself, not its
					// spherical projection: cube corners then scale to integer
					// lattice vertices at every octave, where the gradient is
					// pinned to zero and the noise vanishes exactly.
					s, t := cube.FaceLocal(x, y, width)
					p := cube.PositionOnCube(f, s, t)

					sum := 0.0
					for o := 0; o < octaves; o++ {
						freq := 1 << o
						w := 1.0
						if o != mainLayer {
							w = math.Pow(octaveFalloff, math.Abs(float64(o-mainLayer)))
						}
						sum += w * lattice.Sample(p, o, freq)
					}
					dst.Set(x, y, dst.Get(x, y)+weight*sum)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
