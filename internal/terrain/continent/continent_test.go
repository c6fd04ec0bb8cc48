package continent

import (
	"testing"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

func TestFloodAssignsEveryPixel(t *testing.T) {
	width := 6
	stream := rng.New(rng.DefaultSeed())
	seeds := PlaceSeeds(width, 3, &stream)
	ids := Flood(width, seeds, &stream)

	ids.ForEachFace(func(f cube.Face, g *cube.Grid[ID]) {
		for i, v := range g.Values {
			if v == unassigned {
				t.Fatalf("face %v pixel %d left unassigned", f, i)
			}
			if int(v) < 0 || int(v) >= len(seeds) {
				t.Fatalf("face %v pixel %d has out-of-range id %d", f, i, v)
			}
		}
	})
}

func TestFloodDeterministic(t *testing.T) {
	width := 5
	run := func() *cube.Surface[ID] {
		stream := rng.New(rng.Seed{Hi: 7, Lo: 11})
		seeds := PlaceSeeds(width, 2, &stream)
		return Flood(width, seeds, &stream)
	}
	a, b := run(), run()
	a.ForEachFace(func(f cube.Face, g *cube.Grid[ID]) {
		gb := b.Face(f)
		for i := range g.Values {
			if g.Values[i] != gb.Values[i] {
				t.Fatalf("face %v pixel %d: %d != %d", f, i, g.Values[i], gb.Values[i])
			}
		}
	})
}

func TestFloodSeedPixelKeepsOwnID(t *testing.T) {
	width := 6
	stream := rng.New(rng.DefaultSeed())
	seeds := PlaceSeeds(width, 3, &stream)
	ids := Flood(width, seeds, &stream)

	for i, s := range seeds {
		got := ids.Face(s.Face).Get(s.X, s.Y)
		if got != ID(i) {
			t.Fatalf("seed %d's own pixel has id %d, want %d", i, got, i)
		}
	}
}

func TestBoundaryEmptyForSingleContinent(t *testing.T) {
	width := 4
	stream := rng.New(rng.DefaultSeed())
	seeds := PlaceSeeds(width, 1, &stream)
	ids := Flood(width, seeds, &stream)
	boundary, err := Boundary(ids, width)
	if err != nil {
		t.Fatal(err)
	}
	boundary.ForEachFace(func(f cube.Face, g *cube.Grid[bool]) {
		for i, v := range g.Values {
			if v {
				t.Fatalf("single continent should have no boundary, face %v pixel %d is marked", f, i)
			}
		}
	})
}

func TestDriftZeroWithoutBoundary(t *testing.T) {
	width := 4
	stream := rng.New(rng.DefaultSeed())
	seeds := PlaceSeeds(width, 1, &stream)
	ids := Flood(width, seeds, &stream)
	boundary, err := Boundary(ids, width)
	if err != nil {
		t.Fatal(err)
	}
	touching, dist, dir := NearestBoundary(ids, boundary, width)
	elevation := Drift(width, seeds, ids, touching, dist, dir, 1)

	elevation.ForEachFace(func(f cube.Face, g *cube.Grid[float64]) {
		for i, v := range g.Values {
			if v != 0 {
				t.Fatalf("no-boundary case should yield zero elevation, face %v pixel %d = %f", f, i, v)
			}
		}
	})
}

func TestNearestBoundaryZeroAtBoundaryItself(t *testing.T) {
	width := 6
	stream := rng.New(rng.Seed{Hi: 3, Lo: 9})
	seeds := PlaceSeeds(width, 2, &stream)
	ids := Flood(width, seeds, &stream)
	boundary, err := Boundary(ids, width)
	if err != nil {
		t.Fatal(err)
	}
	_, dist, _ := NearestBoundary(ids, boundary, width)

	boundary.ForEachFace(func(f cube.Face, g *cube.Grid[bool]) {
		dg := dist.Face(f)
		for i, isBoundary := range g.Values {
			if isBoundary && dg.Values[i] != 0 {
				t.Fatalf("boundary pixel should have distance 0, face %v pixel %d has %d", f, i, dg.Values[i])
			}
		}
	})
}

func TestGenerateDeterministic(t *testing.T) {
	width := 5
	run := func() *cube.Surface[float64] {
		stream := rng.New(rng.Seed{Hi: 42, Lo: 99})
		out, err := Generate(width, 2, 1, &stream)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}
	a, b := run(), run()
	a.ForEachFace(func(f cube.Face, g *cube.Grid[float64]) {
		gb := b.Face(f)
		for i := range g.Values {
			if g.Values[i] != gb.Values[i] {
				t.Fatalf("face %v pixel %d: %f != %f", f, i, g.Values[i], gb.Values[i])
			}
		}
	})
}

// TestFloodDuplicatesConsistent: an edge pixel lives on two faces and a
// corner pixel on three; the flood fill must give every copy of a
// physical location the same continent id.
func TestFloodDuplicatesConsistent(t *testing.T) {
	width := 6
	stream := rng.New(rng.Seed{Hi: 1, Lo: 2})
	seeds := PlaceSeeds(width, 4, &stream)
	ids := Flood(width, seeds, &stream)

	for _, f := range cube.Faces {
		for y := 0; y < width; y++ {
			for x := 0; x < width; x++ {
				own := ids.Face(f).Get(x, y)
				for _, d := range cube.Duplicates(f, x, y, width) {
					if got := ids.Face(d.Face).Get(d.X, d.Y); got != own {
						t.Fatalf("%v(%d,%d)=%d but duplicate %v(%d,%d)=%d",
							f, x, y, own, d.Face, d.X, d.Y, got)
					}
				}
			}
		}
	}
}

// TestDriftSeamEquality: the elevation contribution is a pure function of
// physical location and the mirrored nearest-boundary fields, so edge
// duplicates must come out bit-identical.
func TestDriftSeamEquality(t *testing.T) {
	width := 6
	stream := rng.New(rng.Seed{Hi: 5, Lo: 13})
	elevation, err := Generate(width, 3, 2, &stream)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range cube.Faces {
		for y := 0; y < width; y++ {
			for x := 0; x < width; x++ {
				own := elevation.Face(f).Get(x, y)
				for _, d := range cube.Duplicates(f, x, y, width) {
					if got := elevation.Face(d.Face).Get(d.X, d.Y); got != own {
						t.Fatalf("%v(%d,%d)=%v but duplicate %v(%d,%d)=%v",
							f, x, y, own, d.Face, d.X, d.Y, got)
					}
				}
			}
		}
	}
}

// TestFloodRegionsAreConnected: the set of pixels carrying one continent
// id must be 4-connected under cube-surface adjacency. Each region is
// re-flooded from its seed without crossing ids; every cell of the id
// must be reached.
func TestFloodRegionsAreConnected(t *testing.T) {
	width := 6
	stream := rng.New(rng.Seed{Hi: 9, Lo: 27})
	seeds := PlaceSeeds(width, 4, &stream)
	ids := Flood(width, seeds, &stream)

	for id, seed := range seeds {
		reached := cube.NewSurface[bool](width)
		queue := [][3]int{{int(seed.Face), seed.X, seed.Y}}
		reached.Face(seed.Face).Set(seed.X, seed.Y, true)
		for _, d := range cube.Duplicates(seed.Face, seed.X, seed.Y, width) {
			reached.Face(d.Face).Set(d.X, d.Y, true)
		}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range cube.Neighbors4(cube.Face(cur[0]), cur[1], cur[2], width) {
				if reached.Face(n.Face).Get(n.X, n.Y) || ids.Face(n.Face).Get(n.X, n.Y) != ID(id) {
					continue
				}
				reached.Face(n.Face).Set(n.X, n.Y, true)
				for _, d := range cube.Duplicates(n.Face, n.X, n.Y, width) {
					reached.Face(d.Face).Set(d.X, d.Y, true)
				}
				queue = append(queue, [3]int{int(n.Face), n.X, n.Y})
			}
		}

		for _, f := range cube.Faces {
			for y := 0; y < width; y++ {
				for x := 0; x < width; x++ {
					if ids.Face(f).Get(x, y) == ID(id) && !reached.Face(f).Get(x, y) {
						t.Fatalf("continent %d: pixel %v(%d,%d) is disconnected from its seed", id, f, x, y)
					}
				}
			}
		}
	}
}
