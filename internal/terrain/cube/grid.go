package cube

// Grid is a dense width x width array of T, row-major (index x + y*width).
type Grid[T any] struct {
	Width  int
	Values []T
}

// NewGrid allocates a zero-valued width x width grid.
func NewGrid[T any](width int) *Grid[T] {
	return &Grid[T]{Width: width, Values: make([]T, width*width)}
}

func (g *Grid[T]) index(x, y int) int { return x + y*g.Width }

// Get returns the value at (x, y). x and y must be in [0, Width).
func (g *Grid[T]) Get(x, y int) T { return g.Values[g.index(x, y)] }

// Set writes the value at (x, y). x and y must be in [0, Width).
func (g *Grid[T]) Set(x, y int, v T) { g.Values[g.index(x, y)] = v }

// InBounds reports whether (x, y) is a valid in-face coordinate.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Width
}

// Surface is the ordered tuple (L, B, R, F, U, D) of same-width Grid[T]:
// the six faces of the cube sharing one width.
type Surface[T any] struct {
	Width  int
	Faces  [NumFaces]*Grid[T]
}

// NewSurface allocates six zero-valued width x width grids.
func NewSurface[T any](width int) *Surface[T] {
	s := &Surface[T]{Width: width}
	for _, f := range Faces {
		s.Faces[f] = NewGrid[T](width)
	}
	return s
}

// Face returns the grid for the given face.
func (s *Surface[T]) Face(f Face) *Grid[T] { return s.Faces[f] }

// ForEachFace visits every face in canonical order (L, B, R, F, U, D). Code
// that reduces across the whole surface (min/max/sum) must use this order
// to stay floating-point deterministic regardless of how faces were
// computed.
func (s *Surface[T]) ForEachFace(fn func(f Face, g *Grid[T])) {
	for _, f := range Faces {
		fn(f, s.Faces[f])
	}
}
