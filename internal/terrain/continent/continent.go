package continent

import (
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

// Generate runs the full continent pipeline (seed placement, flood fill,
// boundary extraction, nearest-boundary BFS, drift elevation) and
// returns the resulting heightmap contribution, not yet normalized.
func Generate(width, continentCount int, kernelRadius float64, stream *rng.Stream) (*cube.Surface[float64], error) {
	seedStream := stream.Sub("continents")
	seeds := PlaceSeeds(width, continentCount, &seedStream)

	floodStream := stream.Sub("flood")
	ids := Flood(width, seeds, &floodStream)

	boundary, err := Boundary(ids, width)
	if err != nil {
		return nil, err
	}
	touching, dist, dir := NearestBoundary(ids, boundary, width)

	return Drift(width, seeds, ids, touching, dist, dir, kernelRadius), nil
}
