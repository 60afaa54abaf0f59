package gridgraph

import "errors"

var (
	// ErrBadSize indicates a grid size outside [0, MaxSize].
	ErrBadSize = errors.New("gridgraph: grid size out of range")
	// ErrNilPredicate indicates that no walkability predicate was supplied.
	ErrNilPredicate = errors.New("gridgraph: walkability predicate is nil")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNotSquare indicates a rectangular input whose width differs from its height.
	ErrNotSquare = errors.New("gridgraph: grid must have as many rows as columns")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
