package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/storepath/gridgraph"
)

// FindPath returns a shortest path from start to goal over the traversable
// cells of g. It accepts functional options for instrumentation and limits.
//
// Returns:
//
//   - path: start, goal and every cell in between, each consecutive pair
//     one orthogonal step apart.
//   - err:  a sentinel (possibly wrapped) when inputs are invalid or the
//     goal cannot be reached.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be in bounds (ErrInvalidCell).
//
// When start == goal the result is Path{start}, without searching and
// regardless of the start cell's walkability. Otherwise the start cell is
// treated as an anchor: it need not be walkable, but every other cell on the
// path is.
//
// Options customization:
//
//   - WithOnExpand(fn): fn sees every finalized cell, start first.
//   - WithMaxExpansions(n): give up with ErrSearchLimit after n finalized cells.
//
// Returns ErrNoPath if the frontier empties before the goal is reached.
//
// Complexity:
//
//   - Time:  O(N log N), N = g.Len(); each cell is finalized at most once
//     and admitted at most four times.
//   - Space: O(N) for the dense slices plus O(N) frontier entries.
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Path, error) {
	// 1) Build and validate Options.
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Validate the grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate both endpoints lie on the grid.
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidCell, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrInvalidCell, goal)
	}

	// 4) Trivial case: the anchor is the goal.
	if start == goal {
		return Path{start}, nil
	}

	// 5) Allocate per-cell state once and run the main loop.
	r := newRunner(g, goal, cfg)
	r.init(start)

	return r.process(start)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *gridgraph.Grid
	goal    gridgraph.Cell
	goalIdx int
	options Options

	// Per-cell bookkeeping indexed by gridgraph.Grid.Index.
	gScore   []int  // best known distance from start
	cameFrom []int  // predecessor index, -1 if none
	closed   []bool // finalized

	open frontier
	seq  uint64 // admission counter for tie-breaking
	buf  []gridgraph.Cell
}

func newRunner(g *gridgraph.Grid, goal gridgraph.Cell, cfg Options) *runner {
	n := g.Len()
	return &runner{
		g:        g,
		goal:     goal,
		goalIdx:  g.Index(goal),
		options:  cfg,
		gScore:   make([]int, n),
		cameFrom: make([]int, n),
		closed:   make([]bool, n),
		open:     make(frontier, 0, 64),
		buf:      make([]gridgraph.Cell, 0, 4),
	}
}

// init resets per-cell state and admits start with g = 0.
func (r *runner) init(start gridgraph.Cell) {
	// 1) gScore = +∞ and no predecessor for every cell.
	for i := range r.gScore {
		r.gScore[i] = math.MaxInt
		r.cameFrom[i] = -1
	}

	// 2) The anchor costs nothing to reach.
	s := r.g.Index(start)
	r.gScore[s] = 0

	// 3) Seed the frontier with f = h(start).
	heap.Init(&r.open)
	r.admit(s, r.h(start))
}

// process is the main loop: pop the lowest (f, seq) entry, stop at the goal,
// otherwise finalize and relax its neighbors.
//
// Loop termination conditions:
//
//   - The goal is popped: its gScore is final because h is consistent.
//   - The expansion budget is spent (ErrSearchLimit).
//   - The frontier empties (ErrNoPath).
func (r *runner) process(start gridgraph.Cell) (Path, error) {
	expanded := 0
	for r.open.Len() > 0 {
		// 1) Extract the best entry; skip it if the cell was already finalized
		//    through an earlier, better entry.
		item := heap.Pop(&r.open).(entry)
		u := item.idx
		if r.closed[u] {
			continue
		}

		// 2) Goal reached: the predecessor chain is a shortest path.
		if u == r.goalIdx {
			return r.reconstruct(), nil
		}

		// 3) Respect the budget before finalizing another cell.
		if r.options.MaxExpansions > 0 && expanded >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d cells expanded from %v", ErrSearchLimit, expanded, start)
		}

		// 4) Finalize u, report it, and offer its neighbors a path through it.
		r.closed[u] = true
		cur := r.g.Coordinate(u)
		r.options.OnExpand(cur)
		expanded++
		r.relax(u, cur)
	}

	return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, start, r.goal)
}

// relax offers every traversable neighbor of cur a path through it.
// Neighbors arrive in the grid's fixed order, so admissions (and therefore
// tie-breaks) are reproducible.
func (r *runner) relax(u int, cur gridgraph.Cell) {
	tentative := r.gScore[u] + 1
	r.buf = r.g.Neighbors(cur, r.buf[:0])
	for _, nb := range r.buf {
		v := r.g.Index(nb)
		if r.closed[v] || tentative >= r.gScore[v] {
			continue
		}
		r.gScore[v] = tentative
		r.cameFrom[v] = u
		// Lazy decrease-key: the older entry for v stays in the heap and is
		// skipped when popped.
		r.admit(v, tentative+r.h(nb))
	}
}

// admit pushes a frontier entry stamped with the next admission number.
func (r *runner) admit(idx, f int) {
	heap.Push(&r.open, entry{idx: idx, f: f, seq: r.seq})
	r.seq++
}

// h is the Manhattan distance to the goal.
func (r *runner) h(c gridgraph.Cell) int {
	return gridgraph.Manhattan(c, r.goal)
}

// reconstruct walks predecessors back from the goal and reverses.
func (r *runner) reconstruct() Path {
	path := make(Path, 0, r.gScore[r.goalIdx]+1)
	for at := r.goalIdx; at >= 0; at = r.cameFrom[at] {
		path = append(path, r.g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// entry is one frontier record. An index may appear several times; only the
// first one popped counts.
type entry struct {
	idx int    // dense cell index
	f   int    // g + h
	seq uint64 // admission order
}

// frontier is a min-heap of entries ordered by f, then by admission order.
type frontier []entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; equal f goes to the earlier admission.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
