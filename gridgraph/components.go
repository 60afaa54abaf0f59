package gridgraph

// ConnectedComponents finds all 4-connected regions of traversable cells.
// Components are discovered in ascending index order, and each component
// lists its cell indices in breadth-first discovery order.
//
// To convert an index back to a Cell, use Coordinate.
//
// Time:   O(N·4).
// Memory: O(N) for labels and output.
func (g *Grid) ConnectedComponents() [][]int {
	comps, _ := g.sweep()
	return comps
}

// ComponentLabels returns, for every dense index, the number of the
// component that contains it, or -1 for cells that are not traversable.
// Numbering matches ConnectedComponents.
func (g *Grid) ComponentLabels() []int {
	_, labels := g.sweep()
	return labels
}

// sweep runs one BFS per unlabeled traversable cell.
func (g *Grid) sweep() ([][]int, []int) {
	total := g.Len()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int
	buf := make([]Cell, 0, 4)

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !g.walkable(g.Coordinate(i0)) {
			continue // labeled or blocked
		}
		id := len(comps)
		labels[i0] = id
		comp := []int{i0}
		for qi := 0; qi < len(comp); qi++ {
			for _, v := range g.Neighbors(g.Coordinate(comp[qi]), buf[:0]) {
				vi := g.Index(v)
				if labels[vi] < 0 {
					labels[vi] = id
					comp = append(comp, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps, labels
}
