// Package gridgraph models a store floor as a bounded, square lattice of
// discrete cells and answers the two questions every search over it needs:
// "is this cell on the map?" and "may a shopper stand on it?".
//
// What:
//
//   - Cell is an (X, Z) coordinate pair; both coordinates range over [0, Size].
//   - Grid couples the bound check with a caller-supplied walkability Predicate.
//     A cell is traversable iff it is in bounds AND walkable.
//   - Cells map to a dense row-major index (X*(Size+1)+Z) so searches can keep
//     their bookkeeping in flat slices instead of pointer-linked nodes.
//   - ConnectedComponents and ComponentLabels group traversable cells into
//     4-connected regions ("islands" of floor).
//   - DistanceField runs a breadth-first sweep from one cell and reports the
//     walking distance to every other cell.
//
// Why:
//
//   - Grid size and walkability are configuration, not process-wide state, so
//     several store layouts (or test fixtures) can coexist.
//   - Neighbor expansion order is fixed (+X, −X, +Z, −Z), which downstream
//     searches rely on for deterministic results.
//
// Complexity:
//
//   - InBounds, Traversable, Index, Coordinate: O(1).
//   - ConnectedComponents, ComponentLabels:    O(N), Memory: O(N)   (N = (Size+1)²).
//   - DistanceField:                           O(N), Memory: O(N).
//
// Errors:
//
//   - ErrBadSize:        Size is negative or above MaxSize.
//   - ErrNilPredicate:   no walkability predicate supplied.
//   - ErrEmptyGrid:      FromMatrix input has no rows or no columns.
//   - ErrNonRectangular: FromMatrix rows have differing lengths.
//   - ErrNotSquare:      FromMatrix input is rectangular but not square.
//   - ErrOutOfBounds:    a cell lies outside [0, Size]².
package gridgraph
