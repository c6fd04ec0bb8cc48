package cube

import "math"

// Neighbor is one of the (up to) four grid-adjacent cells of a face cell,
// resolved across a seam when the cell itself is an edge cell.
type Neighbor struct {
	Face     Face
	X, Y     int
	Rotation Rotation
}

// Neighbors4 returns the four seam-resolved grid neighbors (left, right,
// up, down) of (x, y) on face, in that fixed order.
func Neighbors4(face Face, x, y, width int) [4]Neighbor {
	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	var out [4]Neighbor
	for i, o := range offsets {
		nf, nx, ny, rot, ok := resolveOffFace(face, x+o[0], y+o[1], width)
		if !ok {
			// A single-step offset from an in-face cell changes one
			// coordinate only, so it cannot fall off two edges at once; if
			// it ever does, fall back to the cell itself rather than
			// propagate a sentinel.
			nf, nx, ny, rot = face, x, y, Rot0
		}
		out[i] = Neighbor{Face: nf, X: nx, Y: ny, Rotation: rot}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cornerAverage resolves a tap that fell past one of the eight singular
// cube corners, where the bilinear cell's diagonal pixel does not exist:
// only three faces meet there, so no edge rule applies. The phantom tap
// takes the average of the nearest on-surface pixel and the two
// single-axis seam resolutions, weighting the three incident faces'
// pixels around the corner equally.
func cornerAverage(s *Surface[float64], face Face, x, y, w int) float64 {
	ownX, ownY := clampInt(x, 0, w-1), clampInt(y, 0, w-1)
	own := s.Face(face).Get(ownX, ownY)

	faceX, nx, ny, _, _ := resolveOffFace(face, x, ownY, w)
	vx := s.Face(faceX).Get(clampInt(nx, 0, w-1), clampInt(ny, 0, w-1))

	faceY, mx, my, _, _ := resolveOffFace(face, ownX, y, w)
	vy := s.Face(faceY).Get(clampInt(mx, 0, w-1), clampInt(my, 0, w-1))

	return (own + vx + vy) / 3
}

func sampleCorner(s *Surface[float64], face Face, x, y, w int) float64 {
	if isCorner(x, y, w) {
		return cornerAverage(s, face, x, y, w)
	}
	dstFace, nx, ny, _, ok := resolveOffFace(face, x, y, w)
	if !ok {
		return cornerAverage(s, face, x, y, w)
	}
	return s.Face(dstFace).Get(nx, ny)
}

// SampleBilinear reads a continuous sample at (fx, fy) in face's local
// pixel-center coordinate space, crossing at most one seam per corner of
// the interpolation cell. fx, fy may legally sit anywhere within a cell of
// any edge cell, including just past a face boundary.
func SampleBilinear(s *Surface[float64], face Face, fx, fy float64) float64 {
	w := s.Width
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := sampleCorner(s, face, x0, y0, w)
	v10 := sampleCorner(s, face, x0+1, y0, w)
	v01 := sampleCorner(s, face, x0, y0+1, w)
	v11 := sampleCorner(s, face, x0+1, y0+1, w)

	top := v00*(1-tx) + v10*tx
	bottom := v01*(1-tx) + v11*tx
	return top*(1-ty) + bottom*ty
}

// SampleBilinearGradient returns both the bilinear value at (fx, fy) and
// its analytic gradient with respect to the local (x, y) axes, computed
// directly from the four corner weights rather than by finite
// differencing. Used by the erosion simulator to find a droplet's
// downhill direction.
func SampleBilinearGradient(s *Surface[float64], face Face, fx, fy float64) (value float64, grad Vec2) {
	w := s.Width
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := sampleCorner(s, face, x0, y0, w)
	v10 := sampleCorner(s, face, x0+1, y0, w)
	v01 := sampleCorner(s, face, x0, y0+1, w)
	v11 := sampleCorner(s, face, x0+1, y0+1, w)

	top := v00*(1-tx) + v10*tx
	bottom := v01*(1-tx) + v11*tx
	value = top*(1-ty) + bottom*ty

	grad = Vec2{
		X: (v10-v00)*(1-ty) + (v11-v01)*ty,
		Y: (v01-v00)*(1-tx) + (v11-v10)*tx,
	}
	return value, grad
}

// faceBasis gives the 3-space center (face normal direction) and the two
// unit tangent vectors, right (+local x) and down (+local y), for each
// face's planar square on the unit cube. Because each face is literally
// parameterized as the actual square face of the cube, adjacent faces
// agree on their shared edge automatically: no seam bookkeeping is needed
// for this 3-space embedding, unlike the grid-index operations above.
type faceBasis struct {
	center, right, down Vec3
}

// These bases were solved directly from the shared-edge equations implied
// by the net adjacency (e.g. L.right meets B.left with matching local-t
// direction), not picked arbitrarily: each face's (right, down) pair
// reproduces the literal planar square of the unit cube, so any two faces
// that share a real edge automatically agree on every point along it.
var faceBases = [NumFaces]faceBasis{
	L: {center: Vec3{X: -1}, right: Vec3{Y: -1}, down: Vec3{Z: -1}},
	B: {center: Vec3{Y: -1}, right: Vec3{X: 1}, down: Vec3{Z: -1}},
	R: {center: Vec3{X: 1}, right: Vec3{Y: 1}, down: Vec3{Z: -1}},
	F: {center: Vec3{Y: 1}, right: Vec3{X: -1}, down: Vec3{Z: -1}},
	U: {center: Vec3{Z: 1}, right: Vec3{X: 1}, down: Vec3{Y: -1}},
	D: {center: Vec3{Z: -1}, right: Vec3{X: 1}, down: Vec3{Y: 1}},
}

// PositionOnCube maps a face and local coordinates s, t (each in [-1, 1],
// s along +local-x, t along +local-y) to the corresponding point on the
// surface of the unit cube.
func PositionOnCube(face Face, s, t float64) Vec3 {
	b := faceBases[face]
	return b.center.Add(b.right.Scale(s)).Add(b.down.Scale(t))
}

// PositionOnSphere maps a face and local coordinates to the unit sphere by
// radial projection of the cube surface point (no equal-area correction).
func PositionOnSphere(face Face, s, t float64) Vec3 {
	return PositionOnCube(face, s, t).Normalize()
}

// ProjectTangent projects a 3-space vector onto face's local tangent
// plane, returning its components along the face's (right, down) basis.
// Used to turn a 3-space drift velocity (axis × position) into a local
// 2-vector comparable across a seam via TransportVector.
func ProjectTangent(face Face, v Vec3) Vec2 {
	b := faceBases[face]
	return Vec2{X: v.Dot(b.right), Y: v.Dot(b.down)}
}

// FaceLocal converts a grid coordinate (x, y) on a width-w face into the
// [-1, 1] local coordinates PositionOnCube expects. Pixel 0 lands exactly
// on -1 and pixel width-1 exactly on +1, so the duplicated edge pixels of
// two adjacent faces map to the identical 3-space point: any value
// computed as a pure function of position automatically satisfies the
// seam-equality invariant. The numerator is formed in integers, so pixels
// x and width-1-x get exactly opposite values for every width.
func FaceLocal(x, y, width int) (s, t float64) {
	w := float64(width - 1)
	s = float64(2*x-(width-1)) / w
	t = float64(2*y-(width-1)) / w
	return s, t
}
