package noise

import (
	"testing"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

func TestSampleDeterministic(t *testing.T) {
	root := rng.New(rng.DefaultSeed())
	l := NewLattice(&root)
	p := cube.Vec3{X: 0.3, Y: -0.6, Z: 0.2}
	a := l.Sample(p, 2, 4)
	b := l.Sample(p, 2, 4)
	if a != b {
		t.Fatalf("repeated sample at the same point diverged: %f != %f", a, b)
	}
}

func TestGradientZeroAtCubeCorner(t *testing.T) {
	root := rng.New(rng.DefaultSeed())
	l := NewLattice(&root)
	g := l.Gradient(4, 4, 4, 0, 4)
	if g != (cube.Vec3{}) {
		t.Fatalf("cube corner lattice vertex should have zero gradient, got %+v", g)
	}
}

func TestGradientNonzeroAwayFromCorner(t *testing.T) {
	root := rng.New(rng.DefaultSeed())
	l := NewLattice(&root)
	g := l.Gradient(1, 2, 0, 0, 4)
	if g.Length() == 0 {
		t.Fatal("interior lattice vertex unexpectedly has a zero gradient")
	}
}

func TestOctaveCount(t *testing.T) {
	cases := map[int]int{2: 1, 4: 2, 5: 3, 8: 3, 9: 4, 16: 4}
	for width, want := range cases {
		if got := OctaveCount(width); got != want {
			t.Errorf("OctaveCount(%d) = %d, want %d", width, got, want)
		}
	}
}

// TestFractalSeamConsistency checks the property the fractal relies on for
// seamlessness: L's right edge (s=1) and B's left edge (s=-1) are the same
// physical boundary of the unit cube, so a noise function of 3-space
// position alone is automatically seam-consistent with no explicit
// bookkeeping in this package.
func TestFractalSeamConsistency(t *testing.T) {
	for _, tt := range []float64{-1, -0.4, 0, 0.6, 1} {
		viaL := cube.PositionOnCube(cube.L, 1, tt)
		viaB := cube.PositionOnCube(cube.B, -1, tt)
		if viaL.Sub(viaB).Length() > 1e-12 {
			t.Fatalf("t=%f: L's right edge and B's left edge disagree: %+v vs %+v", tt, viaL, viaB)
		}
	}
}

func TestFractalOnlyFaceLeavesOthersZero(t *testing.T) {
	width := 4
	root := rng.New(rng.DefaultSeed())
	l := NewLattice(&root)
	surface := cube.NewSurface[float64](width)
	only := cube.L
	if err := Fractal(surface, l, 0, 1.0, &only); err != nil {
		t.Fatal(err)
	}
	for _, f := range cube.Faces {
		if f == cube.L {
			continue
		}
		g := surface.Face(f)
		for _, v := range g.Values {
			if v != 0 {
				t.Fatalf("face %v should be untouched, got %f", f, v)
			}
		}
	}
}

// TestFractalCornerZero: the four corner pixels of every face sit on cube
// corners, which scale to lattice vertices at every octave. The sample
// offset there is the zero vector, so the fractal contribution vanishes
// exactly, octave weights and all.
func TestFractalCornerZero(t *testing.T) {
	width := 5
	root := rng.New(rng.DefaultSeed())
	l := NewLattice(&root)
	surface := cube.NewSurface[float64](width)
	if err := Fractal(surface, l, 1, 0.7, nil); err != nil {
		t.Fatal(err)
	}
	for _, f := range cube.Faces {
		g := surface.Face(f)
		for _, c := range [][2]int{{0, 0}, {0, width - 1}, {width - 1, 0}, {width - 1, width - 1}} {
			if v := g.Get(c[0], c[1]); v != 0 {
				t.Fatalf("face %v corner (%d,%d): got %v, want exactly 0", f, c[0], c[1], v)
			}
		}
	}
}

// TestFractalSeamEquality: duplicated edge pixels on adjacent faces map to
// bit-identical 3-space points, so the noise written into them must be
// bit-identical too, with no tolerance.
func TestFractalSeamEquality(t *testing.T) {
	width := 6
	root := rng.New(rng.Seed{Hi: 21, Lo: 87})
	l := NewLattice(&root)
	surface := cube.NewSurface[float64](width)
	if err := Fractal(surface, l, 1, 1.0, nil); err != nil {
		t.Fatal(err)
	}
	for _, f := range cube.Faces {
		for y := 0; y < width; y++ {
			for x := 0; x < width; x++ {
				own := surface.Face(f).Get(x, y)
				for _, d := range cube.Duplicates(f, x, y, width) {
					if got := surface.Face(d.Face).Get(d.X, d.Y); got != own {
						t.Fatalf("%v(%d,%d)=%v but duplicate %v(%d,%d)=%v",
							f, x, y, own, d.Face, d.X, d.Y, got)
					}
				}
			}
		}
	}
}

func TestSampleMatchesAcrossFaceParameterizations(t *testing.T) {
	root := rng.New(rng.DefaultSeed())
	l := NewLattice(&root)
	// L's right edge and B's left edge parameterize the same physical line.
	for _, tt := range []float64{-1, -0.4, 0, 0.6, 1} {
		pa := cube.PositionOnCube(cube.L, 1, tt)
		pb := cube.PositionOnCube(cube.B, -1, tt)
		if a, b := l.Sample(pa, 2, 4), l.Sample(pb, 2, 4); a != b {
			t.Fatalf("t=%f: %v != %v", tt, a, b)
		}
	}
}
