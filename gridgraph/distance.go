package gridgraph

// Unreachable marks cells a DistanceField sweep never reached.
const Unreachable = -1

// DistanceField returns the walking distance, in unit steps, from origin to
// every cell, indexed by Index. Cells that cannot be reached hold
// Unreachable. The origin itself is always at distance 0, even when the
// predicate rejects it, because callers pass it as a fixed anchor (a store
// entrance or a shelf face).
//
// Behavior:
//  1. Validate origin bounds (ErrOutOfBounds).
//  2. Breadth-first sweep over traversable neighbors in the fixed order.
//
// Complexity: O(N·4) time, O(N) memory.
func (g *Grid) DistanceField(origin Cell) ([]int, error) {
	if !g.InBounds(origin) {
		return nil, ErrOutOfBounds
	}
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = Unreachable
	}
	src := g.Index(origin)
	dist[src] = 0
	queue := []int{src}
	buf := make([]Cell, 0, 4)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(g.Coordinate(u), buf[:0]) {
			vi := g.Index(v)
			if dist[vi] == Unreachable {
				dist[vi] = dist[u] + 1
				queue = append(queue, vi)
			}
		}
	}
	return dist, nil
}
