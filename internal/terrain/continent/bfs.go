package continent

import (
	"fmt"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

const unassigned ID = -1

func flatIndex(face cube.Face, x, y, width int) int {
	return int(face)*width*width + y*width + x
}

type bfsItem struct {
	face cube.Face
	x, y int
	id   ID
}

// shuffledDirs returns a permutation of {left, right, up, down} drawn from
// a sub-stream keyed on the popped pixel's flat index, so the visitation
// order is deterministic given the seed but independent of how many other
// draws happened elsewhere.
func shuffledDirs(stream *rng.Stream, flat int) [4]int {
	s := stream.Sub(fmt.Sprintf("bfs-order/%d", flat))
	order := [4]int{0, 1, 2, 3}
	for i := 3; i > 0; i-- {
		j := int(s.NextIntBetween(0, int32(i)))
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// Flood runs the multi-source randomized flood fill: every seed starts
// its own continent, first writer wins at contested pixels,
// and neighbor visitation order is shuffled per pop so the resulting
// boundaries are irregular rather than Voronoi-straight.
func Flood(width int, seeds []Seed, stream *rng.Stream) *cube.Surface[ID] {
	ids := cube.NewSurface[ID](width)
	ids.ForEachFace(func(_ cube.Face, g *cube.Grid[ID]) {
		for i := range g.Values {
			g.Values[i] = unassigned
		}
	})

	queue := make([]bfsItem, 0, len(seeds)*4)
	for i, s := range seeds {
		queue = append(queue, bfsItem{face: s.Face, x: s.X, y: s.Y, id: ID(i)})
	}

	head := 0
	for head < len(queue) {
		cur := queue[head]
		head++

		g := ids.Face(cur.face)
		if g.Get(cur.x, cur.y) != unassigned {
			continue
		}
		g.Set(cur.x, cur.y, cur.id)
		// Edge and corner cells exist on two or three faces; assigning one
		// copy assigns them all, so the partition stays a function of
		// physical location rather than of which face's copy was popped.
		for _, d := range cube.Duplicates(cur.face, cur.x, cur.y, width) {
			ids.Face(d.Face).Set(d.X, d.Y, cur.id)
		}

		neighbors := cube.Neighbors4(cur.face, cur.x, cur.y, width)
		order := shuffledDirs(stream, flatIndex(cur.face, cur.x, cur.y, width))
		for _, d := range order {
			n := neighbors[d]
			if ids.Face(n.Face).Get(n.X, n.Y) == unassigned {
				queue = append(queue, bfsItem{face: n.Face, x: n.X, y: n.Y, id: cur.id})
			}
		}
	}
	return ids
}
