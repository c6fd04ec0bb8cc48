package erosion

import "math"

// brushTap is one cell of the circular erosion footprint: an integer
// offset from the droplet's cell and its share of the eroded mass.
type brushTap struct {
	dx, dy int
	weight float64
}

// newBrush builds the radial-falloff footprint: every offset strictly
// inside the radius, weighted by 1 - d/radius and normalized so the
// weights sum to one. Radius 1 degenerates to the single center cell.
func newBrush(radius int) []brushTap {
	if radius < 1 {
		radius = 1
	}
	var taps []brushTap
	sum := 0.0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := dist(dx, dy)
			if d >= float64(radius) {
				continue
			}
			w := 1 - d/float64(radius)
			taps = append(taps, brushTap{dx: dx, dy: dy, weight: w})
			sum += w
		}
	}
	for i := range taps {
		taps[i].weight /= sum
	}
	return taps
}

func dist(dx, dy int) float64 {
	x, y := float64(dx), float64(dy)
	return math.Sqrt(x*x + y*y)
}
