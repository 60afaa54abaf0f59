package planner

// nearest builds the greedy closest-next order. Ties keep input order
// because only a strictly smaller distance replaces the current best.
//
// Complexity: O(n²).
func nearest(m *matrix) []int {
	order := make([]int, 0, m.n)
	used := make([]bool, m.n)
	cur := 0 // entry node

	for len(order) < m.n {
		best, bestD := -1, 0
		for i := 0; i < m.n; i++ {
			if used[i] {
				continue
			}
			d := m.at(cur, i+1)
			if best < 0 || d < bestD {
				best, bestD = i, d
			}
		}
		used[best] = true
		order = append(order, best)
		cur = best + 1
	}
	return order
}
