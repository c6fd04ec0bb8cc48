package post

import (
	"math"
	"testing"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
)

func TestNormalizeHitsBothEndpoints(t *testing.T) {
	w := 3
	s := cube.NewSurface[float64](w)
	s.Face(cube.B).Set(1, 1, 5)
	s.Face(cube.U).Set(0, 2, -3)
	Normalize(s)

	sawZero, sawOne := false, false
	s.ForEachFace(func(_ cube.Face, g *cube.Grid[float64]) {
		for _, v := range g.Values {
			if v < 0 || v > 1 {
				t.Fatalf("normalized value out of range: %v", v)
			}
			if v == 0 {
				sawZero = true
			}
			if v == 1 {
				sawOne = true
			}
		}
	})
	if !sawZero || !sawOne {
		t.Fatalf("normalization should reach both endpoints, got zero=%v one=%v", sawZero, sawOne)
	}
}

func TestNormalizeConstantSurfaceUnchanged(t *testing.T) {
	w := 3
	s := cube.NewSurface[float64](w)
	s.ForEachFace(func(_ cube.Face, g *cube.Grid[float64]) {
		for i := range g.Values {
			g.Values[i] = 0.4
		}
	})
	Normalize(s)
	s.ForEachFace(func(f cube.Face, g *cube.Grid[float64]) {
		for i, v := range g.Values {
			if v != 0.4 {
				t.Fatalf("face %v pixel %d: constant surface changed to %v", f, i, v)
			}
		}
	})
}

func TestWeightFnEndpointsAndMonotonicity(t *testing.T) {
	fns := map[string]WeightFn{
		"pow2":  WeightPow(2),
		"blend": WeightBlend,
	}
	for name, fn := range fns {
		if got := fn(0); math.Abs(got) > 1e-12 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			x := float64(i) / 100
			cur := fn(x)
			if cur < prev-1e-12 {
				t.Errorf("%s not monotonic at %v: %v < %v", name, x, cur, prev)
			}
			prev = cur
		}
	}
}

func TestWeightPushesMassDown(t *testing.T) {
	w := 4
	s := cube.NewSurface[float64](w)
	s.ForEachFace(func(_ cube.Face, g *cube.Grid[float64]) {
		for i := range g.Values {
			g.Values[i] = 0.5
		}
	})
	Weight(s, WeightPow(2))
	if got := s.Face(cube.L).Get(0, 0); got != 0.25 {
		t.Fatalf("0.5^2 should be 0.25, got %v", got)
	}
}
