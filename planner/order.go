package planner

import (
	"fmt"

	"github.com/katalvlaran/storepath/gridgraph"
)

// Order returns the visiting order of cells, starting from entry, as a
// permutation of indices into cells. Every index appears exactly once.
// An empty cells slice yields an empty, non-nil order.
//
// The distance metric is evaluated once per pair up front, so a costly
// DistanceFunc is called (n+1)² times at most.
func Order(entry gridgraph.Cell, cells []gridgraph.Cell, opts ...Option) ([]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if _, ok := strategyNames[cfg.Strategy]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
	}
	if len(cells) == 0 {
		return []int{}, nil
	}

	dm := newMatrix(entry, cells, cfg.Distance)
	switch cfg.Strategy {
	case Exact:
		if len(cells) > MaxExactStops {
			return nil, fmt.Errorf("%w: %d > %d", ErrTooManyStops, len(cells), MaxExactStops)
		}
		return heldKarp(dm), nil
	case NearestNeighborTwoOpt:
		return twoOpt(dm, nearest(dm), cfg.TwoOptMaxIters), nil
	default:
		return nearest(dm), nil
	}
}

// Arrange reorders stops into visiting order. The input slice is left
// untouched.
func Arrange[S Stop](entry gridgraph.Cell, stops []S, opts ...Option) ([]S, error) {
	order, err := Order(entry, Locations(stops), opts...)
	if err != nil {
		return nil, err
	}
	out := make([]S, len(order))
	for k, i := range order {
		out[k] = stops[i]
	}
	return out, nil
}

// Locations extracts the cell of every stop, preserving order.
func Locations[S Stop](stops []S) []gridgraph.Cell {
	cells := make([]gridgraph.Cell, len(stops))
	for i, s := range stops {
		cells[i] = s.Location()
	}
	return cells
}

// Cost sums the distances along entry → cells[order[0]] → … → cells[order[n-1]].
// A nil fn means Manhattan.
func Cost(entry gridgraph.Cell, cells []gridgraph.Cell, order []int, fn DistanceFunc) int {
	if fn == nil {
		fn = Manhattan
	}
	total := 0
	cur := entry
	for _, i := range order {
		total += fn(cur, cells[i])
		cur = cells[i]
	}
	return total
}

// matrix holds pairwise distances; node 0 is the entry, node i+1 is cells[i].
type matrix struct {
	n int // number of stops (excluding the entry)
	d [][]int
}

func newMatrix(entry gridgraph.Cell, cells []gridgraph.Cell, fn DistanceFunc) *matrix {
	pts := make([]gridgraph.Cell, 0, len(cells)+1)
	pts = append(pts, entry)
	pts = append(pts, cells...)

	d := make([][]int, len(pts))
	for i := range pts {
		d[i] = make([]int, len(pts))
		for j := range pts {
			if i != j {
				d[i][j] = fn(pts[i], pts[j])
			}
		}
	}
	return &matrix{n: len(cells), d: d}
}

// at returns the distance between node u and node v.
func (m *matrix) at(u, v int) int { return m.d[u][v] }
