// Package automaton implements the cave-smoothing cellular automaton: a grid
// is seeded at random and then repeatedly stepped with a birth/death rule in
// which neighbours beyond the border always count as living.
//
// The package is generic over the cell type so the same routine drives
// boolean grids and tile grids. A States value tells the automaton which cell
// value means alive and which means dead.
package automaton

// Grid stores a fixed-size 2D grid of cells in row-major order.
type Grid[T comparable] struct {
	w, h  int
	cells []T
}

// NewGrid allocates a w*h grid with every cell set to fill.
func NewGrid[T comparable](w, h int, fill T) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimension
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{w: w, h: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the row-major slice index for (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.w + x }

// At returns the cell at (x, y). It panics when the coordinate is out of
// bounds, like a slice access would.
func (g *Grid[T]) At(x, y int) T { return g.cells[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.cells[g.Index(x, y)] = v }

// Cells returns a row-major copy of the grid contents.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{w: g.w, h: g.h, cells: g.Cells()}
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Count returns how many cells hold v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}
