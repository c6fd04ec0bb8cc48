package noise

import (
	"math"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
)

// Sample returns the classical Perlin value at 3-space point p scaled by
// freq, for the given octave. Two calls with the same p (regardless of
// which face's local coordinates produced it) return the same value,
// since the lattice cell and its gradients only depend on p.
func (l *Lattice) Sample(p cube.Vec3, octave, freq int) float64 {
	fx := p.X * float64(freq)
	fy := p.Y * float64(freq)
	fz := p.Z * float64(freq)

	i0, j0, k0 := int(math.Floor(fx)), int(math.Floor(fy)), int(math.Floor(fz))
	tx, ty, tz := fx-float64(i0), fy-float64(j0), fz-float64(k0)
	u, v, w := fade(tx), fade(ty), fade(tz)

	dotGrad := func(i, j, k int) float64 {
		g := l.Gradient(i, j, k, octave, freq)
		d := cube.Vec3{X: fx - float64(i), Y: fy - float64(j), Z: fz - float64(k)}
		return g.Dot(d)
	}

	c000 := dotGrad(i0, j0, k0)
	c100 := dotGrad(i0+1, j0, k0)
	c010 := dotGrad(i0, j0+1, k0)
	c110 := dotGrad(i0+1, j0+1, k0)
	c001 := dotGrad(i0, j0, k0+1)
	c101 := dotGrad(i0+1, j0, k0+1)
	c011 := dotGrad(i0, j0+1, k0+1)
	c111 := dotGrad(i0+1, j0+1, k0+1)

	x00 := lerp(c000, c100, u)
	x10 := lerp(c010, c110, u)
	x01 := lerp(c001, c101, u)
	x11 := lerp(c011, c111, u)
	y0 := lerp(x00, x10, v)
	y1 := lerp(x01, x11, v)
	return lerp(y0, y1, w)
}
