package route

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/planner"
)

// ComputePath returns a shortest walking path from start to goal.
// Errors are astar's: ErrInvalidCell, ErrNoPath, ErrNilGrid.
func ComputePath(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...astar.Option) (astar.Path, error) {
	return astar.FindPath(g, start, goal, opts...)
}

// Compose orders stops from entry and walks them in that order.
//
// Validation (in order):
//  1. g must be non-nil (astar.ErrNilGrid).
//  2. entry and every stop must be in bounds (astar.ErrInvalidCell).
//  3. PathOptions must be valid (astar.ErrOptionViolation).
//  4. Planner options must be valid (planner.ErrOptionViolation,
//     planner.ErrUnknownStrategy, planner.ErrTooManyStops).
//
// Options are checked even when stops is empty.
//
// An empty stops slice succeeds with Path == [entry] and an empty Order.
// If a leg has no path, Compose returns a *LegError for the first such leg
// and no route.
func Compose[S planner.Stop](g *gridgraph.Grid, entry gridgraph.Cell, stops []S, opts ...Option) (*Route[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cells, err := validate(g, entry, stops)
	if err != nil {
		return nil, err
	}
	if err = astar.ValidateOptions(cfg.PathOptions...); err != nil {
		return nil, err
	}

	order, err := planner.Order(entry, cells, plannerOptions(g, entry, cells, cfg)...)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return &Route[S]{Order: []S{}, Indices: []int{}, Path: astar.Path{entry}, Legs: []Leg{}}, nil
	}
	cfg.Logger.Debug("visiting order chosen",
		slog.String("strategy", cfg.Strategy.String()),
		slog.Bool("routed", cfg.RoutedDistances),
		slog.Any("order", order),
	)

	path, legs, err := walk(g, entry, cells, order, cfg)
	if err != nil {
		return nil, err
	}

	visit := make([]S, len(order))
	for k, i := range order {
		visit[k] = stops[i]
	}
	cfg.Logger.Debug("route composed", slog.Int("stops", len(order)), slog.Int("steps", path.Steps()))

	return &Route[S]{Order: visit, Indices: order, Path: path, Legs: legs}, nil
}

// validate checks the grid and every cell, returning the stop cells.
func validate[S planner.Stop](g *gridgraph.Grid, entry gridgraph.Cell, stops []S) ([]gridgraph.Cell, error) {
	if g == nil {
		return nil, astar.ErrNilGrid
	}
	if !g.InBounds(entry) {
		return nil, fmt.Errorf("%w: entry %v", astar.ErrInvalidCell, entry)
	}
	cells := planner.Locations(stops)
	for i, c := range cells {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: destination #%d at %v", astar.ErrInvalidCell, i, c)
		}
	}
	return cells, nil
}

// walk runs one search per leg and concatenates the legs.
func walk(g *gridgraph.Grid, entry gridgraph.Cell, cells []gridgraph.Cell, order []int, cfg Options) (astar.Path, []Leg, error) {
	path := astar.Path{entry}
	legs := make([]Leg, 0, len(order))
	from := entry

	for k, i := range order {
		to := cells[i]
		p, err := astar.FindPath(g, from, to, cfg.PathOptions...)
		if err != nil {
			if errors.Is(err, astar.ErrNoPath) || errors.Is(err, astar.ErrSearchLimit) {
				return nil, nil, &LegError{Index: k, InputIndex: i, From: from, To: to, Err: err}
			}
			return nil, nil, err
		}
		cfg.Logger.Debug("leg walked", slog.Int("leg", k), slog.String("from", from.String()),
			slog.String("to", to.String()), slog.Int("steps", p.Steps()))

		// p[0] == from, which is already the last cell of path.
		path = append(path, p[1:]...)
		legs = append(legs, Leg{Index: k, From: from, To: to, Steps: p.Steps()})
		from = to
	}
	return path, legs, nil
}

// plannerOptions translates route options into planner options.
func plannerOptions(g *gridgraph.Grid, entry gridgraph.Cell, cells []gridgraph.Cell, cfg Options) []planner.Option {
	opts := []planner.Option{
		planner.WithStrategy(cfg.Strategy),
		planner.WithTwoOptMaxIters(cfg.TwoOptMaxIters),
	}
	if cfg.RoutedDistances && len(cells) > 0 {
		opts = append(opts, planner.WithDistance(walkingDistance(g, entry, cells)))
	}
	return opts
}

// walkingDistance precomputes one BFS distance field per distinct point and
// answers pair queries from them. Pairs with no connection report
// planner.Unreachable.
func walkingDistance(g *gridgraph.Grid, entry gridgraph.Cell, cells []gridgraph.Cell) planner.DistanceFunc {
	fields := make(map[gridgraph.Cell][]int, len(cells)+1)
	for _, c := range append([]gridgraph.Cell{entry}, cells...) {
		if _, ok := fields[c]; ok {
			continue
		}
		// Bounds were validated, so DistanceField cannot fail here.
		fields[c], _ = g.DistanceField(c)
	}

	return func(a, b gridgraph.Cell) int {
		if a == b {
			return 0
		}
		// A field from an unwalkable anchor reaches walkable cells but not
		// the reverse, so try both directions.
		if d := fields[a][g.Index(b)]; d != gridgraph.Unreachable {
			return d
		}
		if d := fields[b][g.Index(a)]; d != gridgraph.Unreachable {
			return d
		}
		return planner.Unreachable
	}
}
