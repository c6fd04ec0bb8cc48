package continent

import (
	"math"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
)

// Drift computes the boundary-driven elevation contribution: at each
// pixel, the relative tangential drift between its own
// continent and the touching continent across the nearest boundary,
// projected toward the boundary and attenuated by a Gaussian falloff of
// the geodesic distance. Converging continents (relative < 0 along the
// boundary-ward direction) raise elevation; diverging ones lower it.
// Pixels the boundary BFS never reached (no boundary exists at all, e.g.
// continent_count=1) get zero contribution.
func Drift(width int, seeds []Seed, ids, touching *cube.Surface[ID], dist *cube.Surface[int], dir *cube.Surface[cube.Vec2], kernelRadius float64) *cube.Surface[float64] {
	sigma := kernelRadius / 2
	out := cube.NewSurface[float64](width)

	for _, f := range cube.Faces {
		idg := ids.Face(f)
		tg := touching.Face(f)
		dg := dist.Face(f)
		vg := dir.Face(f)
		og := out.Face(f)

		for y := 0; y < width; y++ {
			for x := 0; x < width; x++ {
				touch := tg.Get(x, y)
				if touch == unassigned {
					continue
				}
				// An edge pixel's tangent plane is ambiguous: its copies sit
				// on faces meeting at a right angle. Evaluate each physical
				// location once, in the frame of its first copy in canonical
				// face order, and share the scalar with the other copies.
				rank := flatIndex(f, x, y, width)
				canonical := true
				for _, d := range cube.Duplicates(f, x, y, width) {
					if flatIndex(d.Face, d.X, d.Y, width) < rank {
						canonical = false
						break
					}
				}
				if !canonical {
					continue
				}
				own := idg.Get(x, y)

				s, t := cube.FaceLocal(x, y, width)
				pos := cube.PositionOnCube(f, s, t)

				ownDrift := cube.ProjectTangent(f, seeds[own].Axis.Cross(pos))
				touchDrift := cube.ProjectTangent(f, seeds[touch].Axis.Cross(pos))
				relative := touchDrift.Sub(ownDrift)

				boundaryDir := vg.Get(x, y)
				projection := relative.Dot(boundaryDir)

				d := float64(dg.Get(x, y))
				falloff := math.Exp(-(d * d) / (2 * sigma * sigma))

				elevation := -projection * falloff
				og.Set(x, y, elevation)
				for _, d := range cube.Duplicates(f, x, y, width) {
					out.Face(d.Face).Set(d.X, d.Y, elevation)
				}
			}
		}
	}
	return out
}
