// Package route turns an entry cell and an unordered shopping list into one
// continuous walking path.
//
// Compose does four things:
//
//  1. Checks that the entry and every destination lie on the grid.
//  2. Asks the planner package for a visiting order.
//  3. Runs astar.FindPath once per leg: entry → first stop, then stop to stop.
//  4. Stitches the legs together, dropping each later leg's first cell
//     because it repeats the previous leg's last cell.
//
// Any leg that cannot be walked aborts the whole computation with a
// *LegError naming the leg; a destination is never silently dropped.
//
// ComputePath is the single-pair counterpart and simply delegates to astar.
//
// Everything here is a pure function of its inputs. Cache memoizes Compose
// results keyed by grid version, entry, destination cells and ordering
// options, for callers that recompute on every UI refresh.
package route
