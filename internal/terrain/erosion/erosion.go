// Package erosion implements particle-based hydraulic erosion over the
// cube surface: droplets spawn on every pixel, roll downhill carrying
// sediment, and may cross face seams, with their position and velocity
// transported into the neighbor face's frame as they do.
package erosion

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/cubeplanet/internal/terrain/cube"
	"github.com/OCharnyshevich/cubeplanet/internal/terrain/rng"
)

// A droplet whose water drops below this is considered dried up.
const waterEpsilon = 1e-4

// Params holds the erosion constants. Zero iterations disables the stage.
type Params struct {
	Iterations             int
	MaxLifetime            int
	StartSpeed             float64
	StartWater             float64
	Inertia                float64
	MinSedimentCapacity    float64
	SedimentCapacityFactor float64
	ErodeSpeed             float64
	DepositSpeed           float64
	Gravity                float64
	EvaporateSpeed         float64
	BrushRadius            int
}

// droplet is one transient particle. Position is continuous in the face's
// local pixel coordinates; dir lives in the same frame and is rotated
// whenever the droplet crosses a seam.
type droplet struct {
	face     cube.Face
	pos      cube.Vec2
	dir      cube.Vec2
	speed    float64
	water    float64
	sediment float64
}

// Simulate runs the full erosion pass in place. One iteration spawns one
// droplet per pixel, visiting faces and pixels in canonical order;
// droplets interact through the shared heightmap, so the whole pass is
// strictly sequential. When onlyFace is non-nil droplets spawn only on
// that face (they may still wander off it).
func Simulate(h *cube.Surface[float64], p Params, stream *rng.Stream, onlyFace *cube.Face) {
	if p.Iterations <= 0 {
		return
	}
	width := h.Width
	// A brush wider than a face would need taps that walk more than one
	// seam; cap it so every tap resolves with a single crossing.
	brush := newBrush(min(p.BrushRadius, width))

	for it := 0; it < p.Iterations; it++ {
		for _, f := range cube.Faces {
			if onlyFace != nil && f != *onlyFace {
				continue
			}
			for y := 0; y < width; y++ {
				for x := 0; x < width; x++ {
					flat := int(f)*width*width + y*width + x
					s := stream.Sub(fmt.Sprintf("droplet/%d/%d", it, flat))
					angle := 2 * math.Pi * s.NextFloat64()
					d := droplet{
						face:  f,
						pos:   cube.Vec2{X: float64(x), Y: float64(y)},
						dir:   cube.Vec2{X: math.Cos(angle), Y: math.Sin(angle)},
						speed: p.StartSpeed,
						water: p.StartWater,
					}
					simulateDroplet(h, &d, p, brush)
				}
			}
		}
	}
}

func simulateDroplet(h *cube.Surface[float64], d *droplet, p Params, brush []brushTap) {
	width := h.Width

	// Whatever ends the droplet, its load goes back to the surface: the
	// cube is closed, so erosion moves mass around but never destroys it.
	defer func() {
		deposit(h, d.face, d.pos, d.sediment)
	}()

	for lifetime := 0; lifetime < p.MaxLifetime; lifetime++ {
		height, grad := cube.SampleBilinearGradient(h, d.face, d.pos.X, d.pos.Y)

		d.dir = d.dir.Scale(p.Inertia).Sub(grad.Scale(1 - p.Inertia))
		if d.dir.X == 0 && d.dir.Y == 0 {
			return // stationary on a flat
		}
		d.dir = d.dir.Normalize()

		next := d.pos.Add(d.dir)
		nextFace, nx, ny, rot, ok := cube.TransportPosition(d.face, next.X, next.Y, width)
		if !ok {
			return // stepped past a cube corner; no frame to continue in
		}

		newHeight := cube.SampleBilinear(h, nextFace, nx, ny)
		dh := newHeight - height

		capacity := math.Max(-dh*d.speed*d.water*p.SedimentCapacityFactor, p.MinSedimentCapacity)

		if d.sediment > capacity || dh > 0 {
			// Moving uphill fills the pit behind the droplet; otherwise
			// shed the excess over capacity.
			var amount float64
			if dh > 0 {
				amount = math.Min(dh, d.sediment)
			} else {
				amount = (d.sediment - capacity) * p.DepositSpeed
			}
			d.sediment -= amount
			deposit(h, d.face, d.pos, amount)
		} else {
			amount := math.Min((capacity-d.sediment)*p.ErodeSpeed, -dh)
			d.sediment += erode(h, d.face, d.pos, amount, brush)
		}

		d.speed = math.Sqrt(math.Max(0, d.speed*d.speed-dh*p.Gravity))
		d.water *= 1 - p.EvaporateSpeed
		if d.water <= waterEpsilon {
			return
		}

		d.face = nextFace
		d.pos = cube.Vec2{X: nx, Y: ny}
		d.dir = cube.TransportVector(d.dir, rot)
	}
}

// deposit spreads amount over the four bilinear taps of pos, so sediment
// lands exactly where the droplet's height was read from. A tap past a
// cube corner has no cell of its own; its share goes to the corner pixel,
// keeping the total deposited mass equal to amount.
func deposit(h *cube.Surface[float64], face cube.Face, pos cube.Vec2, amount float64) {
	if amount == 0 {
		return
	}
	width := h.Width
	x0 := int(math.Floor(pos.X))
	y0 := int(math.Floor(pos.Y))
	tx := pos.X - float64(x0)
	ty := pos.Y - float64(y0)

	taps := [4]struct {
		x, y   int
		weight float64
	}{
		{x0, y0, (1 - tx) * (1 - ty)},
		{x0 + 1, y0, tx * (1 - ty)},
		{x0, y0 + 1, (1 - tx) * ty},
		{x0 + 1, y0 + 1, tx * ty},
	}

	for _, tap := range taps {
		if tap.weight == 0 {
			continue
		}
		f, x, y, ok := cube.Resolve(face, tap.x, tap.y, width)
		if !ok {
			f, x, y = face, clamp(tap.x, 0, width-1), clamp(tap.y, 0, width-1)
		}
		cube.AddMirrored(h, f, x, y, amount*tap.weight)
	}
}

// erode removes up to amount from the brush footprint around pos and
// returns the mass actually removed. Taps past a cube corner are skipped
// (three faces meet there; the footprint simply loses that sliver), so
// the return value is what keeps the droplet's sediment in balance with
// the heightmap.
func erode(h *cube.Surface[float64], face cube.Face, pos cube.Vec2, amount float64, brush []brushTap) float64 {
	if amount == 0 {
		return 0
	}
	width := h.Width
	cx := int(math.Round(pos.X))
	cy := int(math.Round(pos.Y))

	removed := 0.0
	for _, tap := range brush {
		f, x, y, ok := cube.Resolve(face, cx+tap.dx, cy+tap.dy, width)
		if !ok {
			continue
		}
		delta := amount * tap.weight
		cube.AddMirrored(h, f, x, y, -delta)
		removed += delta
	}
	return removed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
