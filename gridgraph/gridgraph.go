package gridgraph

import "fmt"

// MaxSize is the largest accepted size. Searches keep O((Size+1)²) dense
// state, so the cap also keeps Len far from integer overflow.
const MaxSize = 1 << 14

// NewGrid builds a Grid whose coordinates span [0, size] on both axes and
// whose traversable cells are those the walkable predicate admits.
// Returns ErrBadSize if size is outside [0, MaxSize] and ErrNilPredicate if
// walkable is nil.
// Complexity: O(1).
func NewGrid(size int, walkable Predicate, opts ...Option) (*Grid, error) {
	if size < 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrBadSize, size, MaxSize)
	}
	if walkable == nil {
		return nil, ErrNilPredicate
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grid{
		size:     size,
		stride:   size + 1,
		walkable: walkable,
		version:  cfg.Version,
	}, nil
}

// FromMatrix builds a Grid from a square 2D slice where values[z][x] is the
// cell's value; cells with value ≥ threshold are walkable. The input is
// copied, so later mutation of values does not affect the Grid.
// The resulting Size is len(values)-1.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNotSquare for malformed input.
// Complexity: O(N) time and memory.
func FromMatrix(values [][]int, threshold int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if h != w {
		return nil, ErrNotSquare
	}
	// Dense copy indexed the same way the Grid indexes cells.
	open := make([]bool, w*h)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			open[x*w+z] = values[z][x] >= threshold
		}
	}
	walkable := func(c Cell) bool {
		return open[c.X*w+c.Z]
	}

	return NewGrid(w-1, walkable, opts...)
}

// Size returns the largest valid coordinate on either axis.
func (g *Grid) Size() int { return g.size }

// Version returns the layout revision supplied via WithVersion.
func (g *Grid) Version() string { return g.version }

// Len returns the number of cells, (Size+1)².
func (g *Grid) Len() int { return g.stride * g.stride }

// InBounds reports whether c lies within [0, Size] on both axes.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X <= g.size && c.Z >= 0 && c.Z <= g.size
}

// Walkable reports the raw predicate answer for c without a bounds check.
// Callers must check InBounds first.
func (g *Grid) Walkable(c Cell) bool {
	return g.walkable(c)
}

// Traversable reports whether c is both in bounds and walkable.
// Complexity: O(1) plus the predicate's cost.
func (g *Grid) Traversable(c Cell) bool {
	return g.InBounds(c) && g.walkable(c)
}

// Index maps an in-bounds cell to its dense index X*(Size+1)+Z.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.X*g.stride + c.Z
}

// Coordinate converts a dense index back to its Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx / g.stride, Z: idx % g.stride}
}

// NeighborOffsets returns the fixed expansion order (+X, −X, +Z, −Z).
func (g *Grid) NeighborOffsets() [4]Cell {
	return neighborOffsets
}

// Neighbors appends the traversable orthogonal neighbors of c to buf, in
// NeighborOffsets order, and returns the extended slice. Passing a reused
// buf[:0] keeps hot loops allocation-free.
func (g *Grid) Neighbors(c Cell, buf []Cell) []Cell {
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d.X, Z: c.Z + d.Z}
		if g.Traversable(n) {
			buf = append(buf, n)
		}
	}
	return buf
}
