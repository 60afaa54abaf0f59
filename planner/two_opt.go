package planner

// twoOpt improves an open visiting order by deterministic first-improvement
// 2-opt: reverse a segment [i..k] whenever that shortens the walk, then
// restart the scan. The entry stays fixed at position 0.
//
// Notation (seq = entry followed by the order, len n+1):
//
//	a=seq[i−1], b=seq[i], c=seq[k], e=seq[k+1] (absent when k == n).
//	Δ = w(a,c) − w(a,b) + [k<n]·(w(b,e) − w(c,e)).
//
// Reversal assumes a symmetric metric. Every accepted move strictly lowers
// an integer cost, so the loop terminates even without maxIters.
//
// Complexity: O(n²) per pass, O(n) per accepted move.
func twoOpt(m *matrix, order []int, maxIters int) []int {
	n := len(order)
	if n < 2 {
		return order
	}
	// Work on node ids (stop i is node i+1; entry is node 0).
	seq := make([]int, n+1)
	for p, i := range order {
		seq[p+1] = i + 1
	}

	accepted := 0
	for {
		improved := false
		for i := 1; i < n && !improved; i++ {
			for k := i + 1; k <= n; k++ {
				a, b, c := seq[i-1], seq[i], seq[k]
				delta := m.at(a, c) - m.at(a, b)
				if k < n {
					e := seq[k+1]
					delta += m.at(b, e) - m.at(c, e)
				}
				if delta >= 0 {
					continue // not improving
				}
				reverse(seq, i, k)
				accepted++
				improved = true
				break
			}
		}
		if !improved || (maxIters > 0 && accepted >= maxIters) {
			break
		}
	}

	out := make([]int, n)
	for p := 1; p <= n; p++ {
		out[p-1] = seq[p] - 1
	}
	return out
}

// reverse flips s[i..k] in place.
func reverse(s []int, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		s[i], s[k] = s[k], s[i]
	}
}
