package gridgraph

import "fmt"

// Cell is a discrete floor coordinate. Cells are plain values; two cells are
// the same cell iff their coordinates match.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Z int `json:"z" yaml:"z"`
}

// String renders the cell as "(x,z)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// Predicate reports whether a shopper may stand on a cell. It must be pure:
// the same cell always yields the same answer for the lifetime of a Grid.
// Bounds are checked separately by the Grid, so a Predicate never needs to.
type Predicate func(c Cell) bool

// AllWalkable is a Predicate admitting every cell.
func AllWalkable(Cell) bool { return true }

// Options holds tunable, non-structural grid settings.
type Options struct {
	// Version identifies the layout revision this grid was built from.
	// Caches use it to tell two otherwise identical-looking grids apart.
	Version string
}

// Option configures a Grid via functional arguments.
type Option func(*Options)

// WithVersion tags the grid with a layout revision string.
func WithVersion(v string) Option {
	return func(o *Options) {
		o.Version = v
	}
}

// DefaultOptions returns Options with an empty Version.
func DefaultOptions() Options {
	return Options{}
}

// Grid is a square lattice of cells with coordinates in [0, Size] on both
// axes plus a walkability rule. It is immutable once built and safe for
// concurrent readers.
type Grid struct {
	size     int
	stride   int
	walkable Predicate
	version  string
}

// neighborOffsets is the fixed expansion order: +X, −X, +Z, −Z.
var neighborOffsets = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Manhattan returns |a.X−b.X| + |a.Z−b.Z|.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Z-b.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
