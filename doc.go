// Package storepath plans walking routes through a store floor plan: the
// shortest walk between two cells, and a full shopping trip that starts at
// the entry and passes every requested aisle.
//
// 🚀 What is storepath?
//
//	A small, deterministic routing engine for discrete store floors:
//		• Grid model: square floor, walkability predicate, fixed neighbor order
//		• Path finding: A* with Manhattan heuristic and stable tie-breaks
//		• Visit ordering: nearest neighbor, 2-opt refinement, exact Held-Karp
//		• Route composition: legs stitched into one continuous path
//		• Layouts: YAML floor plans with walls, ASCII maps and named aisles
//
// ✨ Guarantees
//
//   - Same inputs, same route: every tie is broken by a documented rule
//   - Every path is 4-connected and stays on walkable cells
//   - No global state: each Grid carries its own size and predicate
//
// Packages:
//
//	gridgraph/ - Cell, Grid, neighbors, connected components, BFS distance fields
//	astar/     - FindPath between two cells
//	planner/   - Order stops from an entry (nearest, two-opt, exact)
//	route/     - Compose a full trip, per-leg breakdown, memoizing Cache
//	layout/    - YAML store layouts, item resolution, reachability checks
//
// Quick example:
//
//	g, _ := gridgraph.NewGrid(13, gridgraph.AllWalkable)
//	stops := []route.Destination{
//		{Name: "Produce", Cell: gridgraph.Cell{X: 2, Z: 4}},
//		{Name: "Dairy", Cell: gridgraph.Cell{X: 11, Z: 5}},
//		{Name: "Bakery", Cell: gridgraph.Cell{X: 6, Z: 2}},
//	}
//	r, err := route.Compose(g, gridgraph.Cell{X: 6, Z: 13}, stops)
//	// r.Order: Bakery, Produce, Dairy; r.Steps(): 27
//
// The command-line front end lives in cmd/storepath.
package storepath
