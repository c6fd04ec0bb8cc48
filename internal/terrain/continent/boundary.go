package continent

import (
	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
)

// dirVecs are the local 2-vectors pointing from a pixel toward its four
// grid neighbors, in the same left/right/up/down order cube.Neighbors4
// returns them.
var dirVecs = [4]cube.Vec2{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// Boundary marks every pixel that has at least one 4-neighbor with a
// different continent id. It's a read-only scan over
// the finished id field, so the six faces run concurrently: no draw from
// the PRNG is involved, so goroutine completion order can't affect the
// result.
func Boundary(ids *cube.Surface[ID], width int) (*cube.Surface[bool], error) {
	out := cube.NewSurface[bool](width)
	var g errgroup.Group
	for _, f := range cube.Faces {
		f := f
		g.Go(func() error {
			src := ids.Face(f)
			dst := out.Face(f)
			for y := 0; y < width; y++ {
				for x := 0; x < width; x++ {
					own := src.Get(x, y)
					isBoundary := false
					for _, n := range cube.Neighbors4(f, x, y, width) {
						if ids.Face(n.Face).Get(n.X, n.Y) != own {
							isBoundary = true
							break
						}
					}
					dst.Set(x, y, isBoundary)
				}
			}
			return nil
		})
	}
	return out, g.Wait()
}

type boundaryQueueItem struct {
	face cube.Face
	x, y int
}

// NearestBoundary runs a second multi-source BFS seeded from every
// boundary pixel, assigning each pixel on the whole
// surface the id of the touching continent across the nearest boundary,
// the geodesic distance to it, and the local unit direction pointing back
// toward that boundary (used by Drift as the projection axis). Ties at
// equal distance are broken by whichever neighbor is visited first in
// cube.Neighbors4's left/right/up/down order; nothing downstream depends
// on which.
func NearestBoundary(ids *cube.Surface[ID], boundary *cube.Surface[bool], width int) (touching *cube.Surface[ID], dist *cube.Surface[int], dir *cube.Surface[cube.Vec2]) {
	touching = cube.NewSurface[ID](width)
	dist = cube.NewSurface[int](width)
	dir = cube.NewSurface[cube.Vec2](width)

	touching.ForEachFace(func(_ cube.Face, g *cube.Grid[ID]) {
		for i := range g.Values {
			g.Values[i] = unassigned
		}
	})
	dist.ForEachFace(func(_ cube.Face, g *cube.Grid[int]) {
		for i := range g.Values {
			g.Values[i] = -1
		}
	})

	// Writes go to the cell and to its seam duplicates, with the stored
	// direction re-expressed in each duplicate's frame, so every copy of a
	// physical location carries the same answer.
	assign := func(f cube.Face, x, y int, touch ID, d int, v cube.Vec2) {
		touching.Face(f).Set(x, y, touch)
		dist.Face(f).Set(x, y, d)
		dir.Face(f).Set(x, y, v)
		for _, dup := range cube.Duplicates(f, x, y, width) {
			touching.Face(dup.Face).Set(dup.X, dup.Y, touch)
			dist.Face(dup.Face).Set(dup.X, dup.Y, d)
			dir.Face(dup.Face).Set(dup.X, dup.Y, cube.TransportVector(v, dup.Rotation))
		}
	}

	var queue []boundaryQueueItem
	for _, f := range cube.Faces {
		bg := boundary.Face(f)
		ig := ids.Face(f)
		for y := 0; y < width; y++ {
			for x := 0; x < width; x++ {
				if !bg.Get(x, y) || dist.Face(f).Get(x, y) != -1 {
					continue
				}
				own := ig.Get(x, y)
				neighbors := cube.Neighbors4(f, x, y, width)
				for i, n := range neighbors {
					nid := ids.Face(n.Face).Get(n.X, n.Y)
					if nid != own {
						assign(f, x, y, nid, 0, dirVecs[i])
						queue = append(queue, boundaryQueueItem{face: f, x: x, y: y})
						break
					}
				}
			}
		}
	}

	head := 0
	for head < len(queue) {
		cur := queue[head]
		head++

		curDist := dist.Face(cur.face).Get(cur.x, cur.y)
		curTouch := touching.Face(cur.face).Get(cur.x, cur.y)
		neighbors := cube.Neighbors4(cur.face, cur.x, cur.y, width)
		for i, n := range neighbors {
			if dist.Face(n.Face).Get(n.X, n.Y) != -1 {
				continue
			}
			// The direction from cur to n, transported into n's local
			// frame and reversed, points from n back toward cur (i.e.
			// toward the boundary).
			backward := cube.TransportVector(dirVecs[i], n.Rotation).Scale(-1)
			assign(n.Face, n.X, n.Y, curTouch, curDist+1, backward)
			queue = append(queue, boundaryQueueItem{face: n.Face, x: n.X, y: n.Y})
		}
	}

	return touching, dist, dir
}
