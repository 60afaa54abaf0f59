package planner

import "math"

// heldKarp finds an optimal open path from the entry through every stop
// using the Held-Karp dynamic program.
//
// dp[mask][j] = minimum cost to leave the entry, visit exactly the stops in
// mask, and stand on stop j (j ∈ mask). The path is open, so there is no
// closing edge back to the entry; the answer is min_j dp[full][j].
//
// Ties resolve toward lower indices because candidates are scanned in
// ascending order and only a strictly better cost replaces the incumbent.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// Notes:
//
//   - Subsets are bitmasks over stops only; the entry (node 0) is implicit
//     in every mask because every path starts there.
//   - Unreachable pairs carry Unreachable (MaxInt32), which keeps sums finite
//     (n ≤ MaxExactStops), so a table full of them still yields an order.
//   - Order() enforces n ≤ MaxExactStops before calling; at n = 12 the table
//     holds 4096·12 entries.
func heldKarp(m *matrix) []int {
	n := m.n
	full := (1 << n) - 1

	// --- 1. Allocate DP and parent tables ---
	dp := make([][]int, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := range dp {
		dp[mask] = make([]int, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = math.MaxInt
			parent[mask][j] = -1
		}
	}
	// --- 2. Base case: walk straight from the entry to stop j ---
	for j := 0; j < n; j++ {
		dp[1<<j][j] = m.at(0, j+1)
	}

	// --- 3. Fill DP in increasing mask order; every prevMask < mask ---
	for mask := 1; mask <= full; mask++ {
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue // j not in subset
			}
			prevMask := mask ^ (1 << j)
			if prevMask == 0 {
				continue // base case
			}
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || dp[prevMask][k] == math.MaxInt {
					continue
				}
				cand := dp[prevMask][k] + m.at(k+1, j+1)
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// --- 4. Pick the cheapest final stop (no closing edge) ---
	last := 0
	for j := 1; j < n; j++ {
		if dp[full][j] < dp[full][last] {
			last = j
		}
	}

	// --- 5. Walk parents back from the last stop ---
	order := make([]int, n)
	mask, j := full, last
	for i := n - 1; i >= 0; i-- {
		order[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	return order
}
