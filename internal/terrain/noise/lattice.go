// Package noise implements the seamless fractal Perlin field: gradients
// hashed on a 3-space integer lattice so that two faces sampling the same
// physical surface point always agree, with no explicit seam bookkeeping
// needed in this package.
package noise

import (
	"fmt"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

// Lattice hands out a deterministic pseudo-random unit gradient for any
// integer 3-space lattice vertex, keyed through the rng sub-stream
// primitive
// so the whole field depends only on the run's seed.
type Lattice struct {
	root *rng.Stream
}

// NewLattice wraps a root stream; every gradient is drawn from an
// independent sub-stream keyed on (i, j, k, octave), so lookups commute
// and can run from any number of goroutines.
func NewLattice(root *rng.Stream) *Lattice {
	return &Lattice{root: root}
}

// Gradient returns the unit gradient vector at lattice vertex (i, j, k)
// for the given octave and frequency. Vertices where all three
// coordinates sit at ±freq are the eight singular corners of the cube
// itself (shared by three faces); the gradient there is pinned to zero,
// since no continuous tangent field exists at those points.
func (l *Lattice) Gradient(i, j, k, octave, freq int) cube.Vec3 {
	if abs(i) == freq && abs(j) == freq && abs(k) == freq {
		return cube.Vec3{}
	}
	child := l.root.Sub(fmt.Sprintf("lattice/%d/%d/%d/%d", i, j, k, octave))
	v := child.NextUnitVec3()
	return cube.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// fade is Perlin's quintic smootherstep, 6t^5-15t^4+10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
