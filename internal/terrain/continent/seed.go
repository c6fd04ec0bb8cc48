// Package continent builds the tectonic-plate field: a randomized
// multi-source flood fill over the cube surface, boundary and
// nearest-touching-continent extraction, and a drift-driven elevation
// pass along plate boundaries.
package continent

import (
	"fmt"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

// ID identifies a continent. Continents are referenced by this small
// integer, never by pointer, so the field can live in a plain array.
type ID int32

// Seed is a continent's immutable origin: the pixel it grew from and the
// rotation axis used by the drift pass.
type Seed struct {
	Face cube.Face
	X, Y int
	Axis cube.Vec3
}

// PlaceSeeds draws count distinct (face, x, y) pixels uniformly at random
// by rejection sampling, and a uniform-on-the-sphere rotation axis for
// each.
func PlaceSeeds(width, count int, stream *rng.Stream) []Seed {
	seen := make(map[[3]int]bool, count)
	seeds := make([]Seed, 0, count)
	for i := 0; i < count; i++ {
		s := stream.Sub(fmt.Sprintf("continent-seed/%d", i))
		for {
			face := cube.Faces[s.NextIntBetween(0, int32(cube.NumFaces-1))]
			x := int(s.NextIntBetween(0, int32(width-1)))
			y := int(s.NextIntBetween(0, int32(width-1)))
			key := [3]int{int(face), x, y}
			if seen[key] {
				continue
			}
			seen[key] = true
			// An edge or corner pixel exists on more than one face; record
			// every copy so two continents can't seed the same physical
			// location through different faces.
			for _, d := range cube.Duplicates(face, x, y, width) {
				seen[[3]int{int(d.Face), d.X, d.Y}] = true
			}
			axisStream := s.Sub("axis")
			v := axisStream.NextUnitVec3()
			axis := cube.Vec3{X: v.X, Y: v.Y, Z: v.Z}
			seeds = append(seeds, Seed{Face: face, X: x, Y: y, Axis: axis})
			break
		}
	}
	return seeds
}
