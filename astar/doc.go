// Package astar finds shortest walking paths between two cells of a
// gridgraph.Grid using the A* search algorithm.
//
// Overview:
//
//   - Every orthogonal step to an adjacent traversable cell costs 1.
//   - The heuristic is the Manhattan distance to the goal, which is admissible
//     and consistent on a uniform-cost 4-connected grid, so the first time the
//     goal leaves the open frontier its path is a shortest one.
//   - Results are deterministic, not merely equal in length: ties on f = g + h
//     go to the cell admitted to the frontier earliest, and neighbors are
//     expanded in the grid's fixed order (+X, −X, +Z, −Z).
//
// Implementation choices:
//
//   - The open frontier is a binary min-heap (container/heap) ordered by
//     (f, admission sequence). Improvements push a fresh entry and stale
//     entries are skipped when popped ("lazy decrease-key").
//   - gScore, predecessor and closed flags live in flat slices indexed by
//     gridgraph.Grid.Index, so a search allocates O(N) once and never builds
//     pointer-linked nodes.
//
// Complexity:
//
//   - Time:  O(N log N) worst case, N = number of grid cells.
//   - Space: O(N).
//
// Errors (sentinel):
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrInvalidCell:     start or goal lies outside the grid.
//   - ErrNoPath:          the frontier emptied before reaching the goal.
//   - ErrSearchLimit:     WithMaxExpansions budget exhausted.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// A search never returns a partial or approximate path.
package astar
