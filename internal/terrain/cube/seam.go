package cube

// Rotation is the angle, in degrees, a local 2-vector undergoes when
// transported across a seam. Always a multiple of 90.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

// TransportVector rotates a local 2-vector by the given seam rotation.
func TransportVector(v Vec2, r Rotation) Vec2 {
	switch r {
	case Rot90:
		return Vec2{X: -v.Y, Y: v.X}
	case Rot180:
		return Vec2{X: -v.X, Y: -v.Y}
	case Rot270:
		return Vec2{X: v.Y, Y: -v.X}
	default:
		return v
	}
}

// direction identifies which edge of a face a query fell off.
type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
)

// edgeRule describes how an out-of-range local coordinate on one face's
// edge resolves onto its neighbor: the destination face, the vector
// rotation a transported 2-vector undergoes, and the coordinate remap.
//
// The cube's edge pixels are duplicated: the last column/row of one face
// and the first column/row of its neighbor are the same physical
// locations. Each remap below therefore sends the shared coordinate
// itself onto the neighbor's copy of that same coordinate, and an
// overflow of k pixels onto the pixel k steps past the shared line. The
// maps are affine with integer coefficients, so they are equally valid
// for continuous positions (droplet transport).
//
// Each rule was derived by writing out the two faces' shared-edge
// parameterizations in 3-space and solving for the index map; the
// topology tests verify every entry against the embedding exhaustively.
type edgeRule struct {
	dst      Face
	rotation Rotation
	remap    func(rawX, rawY, w float64) (float64, float64)
}

var edgeTable = [NumFaces][4]edgeRule{
	L: {
		dirLeft:  {dst: F, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return w - 1 + x, y }},
		dirRight: {dst: B, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x - w + 1, y }},
		dirUp:    {dst: U, rotation: Rot90, remap: func(x, y, w float64) (float64, float64) { return -y, x }},
		dirDown:  {dst: D, rotation: Rot270, remap: func(x, y, w float64) (float64, float64) { return y - w + 1, w - 1 - x }},
	},
	B: {
		dirLeft:  {dst: L, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return w - 1 + x, y }},
		dirRight: {dst: R, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x - w + 1, y }},
		dirUp:    {dst: U, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x, w - 1 + y }},
		dirDown:  {dst: D, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x, y - w + 1 }},
	},
	R: {
		dirLeft:  {dst: B, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return w - 1 + x, y }},
		dirRight: {dst: F, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x - w + 1, y }},
		dirUp:    {dst: U, rotation: Rot270, remap: func(x, y, w float64) (float64, float64) { return w - 1 + y, w - 1 - x }},
		dirDown:  {dst: D, rotation: Rot90, remap: func(x, y, w float64) (float64, float64) { return 2*w - 2 - y, x }},
	},
	F: {
		dirLeft:  {dst: R, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return w - 1 + x, y }},
		dirRight: {dst: L, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x - w + 1, y }},
		dirUp:    {dst: U, rotation: Rot180, remap: func(x, y, w float64) (float64, float64) { return w - 1 - x, -y }},
		dirDown:  {dst: D, rotation: Rot180, remap: func(x, y, w float64) (float64, float64) { return w - 1 - x, 2*w - 2 - y }},
	},
	U: {
		dirLeft:  {dst: L, rotation: Rot270, remap: func(x, y, w float64) (float64, float64) { return y, -x }},
		dirRight: {dst: R, rotation: Rot90, remap: func(x, y, w float64) (float64, float64) { return w - 1 - y, x - w + 1 }},
		dirUp:    {dst: F, rotation: Rot180, remap: func(x, y, w float64) (float64, float64) { return w - 1 - x, -y }},
		dirDown:  {dst: B, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x, y - w + 1 }},
	},
	D: {
		dirLeft:  {dst: L, rotation: Rot90, remap: func(x, y, w float64) (float64, float64) { return w - 1 - y, w - 1 + x }},
		dirRight: {dst: R, rotation: Rot270, remap: func(x, y, w float64) (float64, float64) { return y, 2*w - 2 - x }},
		dirUp:    {dst: B, rotation: Rot0, remap: func(x, y, w float64) (float64, float64) { return x, w - 1 + y }},
		dirDown:  {dst: F, rotation: Rot180, remap: func(x, y, w float64) (float64, float64) { return w - 1 - x, 2*w - 2 - y }},
	},
}

// resolveOffFace maps a possibly out-of-range local coordinate (x, y) on
// face on a width-w grid to its correct (face, x, y) and reports the
// rotation a vector would undergo crossing that seam. ok is false when both
// x and y are simultaneously out of range: the query fell past one of the
// eight singular cube corners, which must be handled by the caller's own
// corner rule.
func resolveOffFace(face Face, x, y, w int) (dst Face, nx, ny int, rot Rotation, ok bool) {
	outX := x < 0 || x >= w
	outY := y < 0 || y >= w

	switch {
	case !outX && !outY:
		return face, x, y, Rot0, true
	case outX && outY:
		return face, 0, 0, Rot0, false
	case outX:
		dir := dirLeft
		if x >= w {
			dir = dirRight
		}
		rule := edgeTable[face][dir]
		fx, fy := rule.remap(float64(x), float64(y), float64(w))
		return rule.dst, int(fx), int(fy), rule.rotation, true
	default:
		dir := dirUp
		if y >= w {
			dir = dirDown
		}
		rule := edgeTable[face][dir]
		fx, fy := rule.remap(float64(x), float64(y), float64(w))
		return rule.dst, int(fx), int(fy), rule.rotation, true
	}
}

// isCorner reports whether (x, y) on a width-w face falls simultaneously
// off two edges (past one of the eight singular cube corners).
func isCorner(x, y, w int) bool {
	return (x < 0 || x >= w) && (y < 0 || y >= w)
}

// TransportPosition resolves a continuous position that stepped off its
// face onto the correct neighbor face, reporting the rotation the mover's
// local direction vector must undergo. ok is false when the position fell
// past a singular cube corner (off two edges at once); callers decide
// what to do with such movers (the erosion simulator terminates them).
func TransportPosition(face Face, fx, fy float64, w int) (Face, float64, float64, Rotation, bool) {
	wf := float64(w)
	outX := fx < 0 || fx > wf-1
	outY := fy < 0 || fy > wf-1

	switch {
	case !outX && !outY:
		return face, fx, fy, Rot0, true
	case outX && outY:
		return face, fx, fy, Rot0, false
	case outX:
		dir := dirLeft
		if fx > wf-1 {
			dir = dirRight
		}
		rule := edgeTable[face][dir]
		nx, ny := rule.remap(fx, fy, wf)
		return rule.dst, nx, ny, rule.rotation, true
	default:
		dir := dirUp
		if fy > wf-1 {
			dir = dirDown
		}
		rule := edgeTable[face][dir]
		nx, ny := rule.remap(fx, fy, wf)
		return rule.dst, nx, ny, rule.rotation, true
	}
}

// Duplicates returns the other cells that represent the same physical
// surface location as (x, y): one for an edge pixel, two for a corner
// pixel, none for an interior pixel. Each entry carries the rotation a
// local 2-vector undergoes when re-expressed in the duplicate's frame.
// Every write into an edge or corner cell must be replayed into its
// duplicates to keep the surface's duplicated-edge invariant intact.
func Duplicates(face Face, x, y, width int) []Neighbor {
	var out []Neighbor
	w := float64(width)

	appendVia := func(dir direction) {
		rule := edgeTable[face][dir]
		nx, ny := rule.remap(float64(x), float64(y), w)
		out = append(out, Neighbor{Face: rule.dst, X: int(nx), Y: int(ny), Rotation: rule.rotation})
	}

	if x == 0 {
		appendVia(dirLeft)
	} else if x == width-1 {
		appendVia(dirRight)
	}
	if y == 0 {
		appendVia(dirUp)
	} else if y == width-1 {
		appendVia(dirDown)
	}
	return out
}

// AddMirrored adds delta to the cell at (x, y) and to every duplicate of
// it across seams, so edge and corner cells on all incident faces receive
// identical totals.
func AddMirrored(s *Surface[float64], face Face, x, y int, delta float64) {
	s.Face(face).Values[x+y*s.Width] += delta
	for _, d := range Duplicates(face, x, y, s.Width) {
		s.Face(d.Face).Values[d.X+d.Y*s.Width] += delta
	}
}

// Resolve maps a possibly off-face integer coordinate onto the face that
// owns it, walking at most one seam. ok is false when the coordinate
// falls past a cube corner (off two edges at once); there is no cell
// there for a kernel tap to land on.
func Resolve(face Face, x, y, w int) (Face, int, int, bool) {
	f, nx, ny, _, ok := resolveOffFace(face, x, y, w)
	return f, nx, ny, ok
}
