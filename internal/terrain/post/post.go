// Package post holds the whole-surface passes that run between the
// terrain stages: min/max normalization into [0,1] and the monotonic
// reshaping that biases the height distribution toward ocean.
package post

import (
	"math"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
)

// Normalize rescales the surface into [0,1] in place. The min/max
// reduction walks faces and pixels in canonical order, left to right, so
// the result does not depend on how the surface was produced. A constant
// surface is left untouched.
func Normalize(s *cube.Surface[float64]) {
	mi := math.MaxFloat64
	ma := -math.MaxFloat64
	s.ForEachFace(func(_ cube.Face, g *cube.Grid[float64]) {
		for _, v := range g.Values {
			mi = math.Min(mi, v)
			ma = math.Max(ma, v)
		}
	})

	if mi >= ma {
		return
	}
	span := ma - mi
	s.ForEachFace(func(_ cube.Face, g *cube.Grid[float64]) {
		for i := range g.Values {
			g.Values[i] = (g.Values[i] - mi) / span
		}
	})
}

// WeightFn reshapes a normalized height. Implementations must be
// monotonic with w(0)=0 and w(1)=1; anything else would break the output
// range guarantee and the seam equality of already-equal pixels.
type WeightFn func(float64) float64

// WeightPow returns the power-curve reshape x^gamma. Gamma above 1 pushes
// mass toward low values, drowning more of the surface.
func WeightPow(gamma float64) WeightFn {
	return func(x float64) float64 {
		return math.Pow(x, gamma)
	}
}

// WeightBlend is the blend of an inverse smoothstep with a squared term,
// mixed by 1-h: low heights take the square (flattened ocean floors),
// high heights approach the inverse smoothstep (sharpened ridges).
func WeightBlend(h float64) float64 {
	inverseSmoothstep := 0.5 - math.Sin(math.Asin(1-2*h)/3)
	power := h * h
	return mix(inverseSmoothstep, power, 1-h)
}

// Weight applies fn to every pixel in place.
func Weight(s *cube.Surface[float64], fn WeightFn) {
	s.ForEachFace(func(_ cube.Face, g *cube.Grid[float64]) {
		for i := range g.Values {
			g.Values[i] = fn(g.Values[i])
		}
	})
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
