package route_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/planner"
	"github.com/katalvlaran/storepath/route"
)

type cell = gridgraph.Cell

func openFloor(t testing.TB, opts ...gridgraph.Option) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(13, gridgraph.AllWalkable, opts...)
	require.NoError(t, err)
	return g
}

// walledFloor has a shelf row at z=7 broken only at x=3.
func walledFloor(t testing.TB, opts ...gridgraph.Option) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(13, func(c cell) bool { return c.Z != 7 || c.X == 3 }, opts...)
	require.NoError(t, err)
	return g
}

func dest(name string, x, z int) route.Destination {
	return route.Destination{Name: name, Cell: cell{X: x, Z: z}}
}

func scenarioC() (cell, []route.Destination) {
	return cell{X: 6, Z: 13}, []route.Destination{
		dest("Produce", 2, 4),
		dest("Dairy", 11, 5),
		dest("Bakery", 6, 2),
	}
}

// requireComposed checks continuity, walkability and that every stop shows
// up in the path at strictly increasing positions matching the visiting order.
func requireComposed[S planner.Stop](t *testing.T, g *gridgraph.Grid, entry cell, stops []S, r *route.Route[S]) {
	t.Helper()
	require.Equal(t, entry, r.Path[0])
	for i := 1; i < len(r.Path); i++ {
		dx, dz := r.Path[i].X-r.Path[i-1].X, r.Path[i].Z-r.Path[i-1].Z
		require.Equal(t, 1, dx*dx+dz*dz, "break between %v and %v", r.Path[i-1], r.Path[i])
		require.True(t, g.Traversable(r.Path[i]))
	}

	require.Len(t, r.Order, len(stops))
	require.Len(t, r.Legs, len(stops))
	seen := make(map[int]bool)
	for k, i := range r.Indices {
		require.False(t, seen[i], "stop %d visited twice", i)
		seen[i] = true
		require.Equal(t, stops[i], r.Order[k])
	}

	// Stop k sits where leg k ends; positions strictly increase except for
	// zero-step legs onto the cell already occupied.
	at, last := 0, -1
	for k, s := range r.Order {
		leg := r.Legs[k]
		require.Equal(t, s.Location(), leg.To)
		at += leg.Steps
		require.Less(t, at, len(r.Path), "stop %d runs past the path", k)
		require.Equal(t, s.Location(), r.Path[at], "stop %d not at path[%d]", k, at)
		if leg.Steps == 0 {
			require.Equal(t, leg.From, leg.To, "zero-step leg %d moves", k)
			continue
		}
		require.Greater(t, at, last, "stop %d reached out of order", k)
		last = at
	}
	require.Equal(t, len(r.Path)-1, at)
}

//----------------------------------------------------------------------------//
// Compose
//----------------------------------------------------------------------------//

func TestCompose_ScenarioC(t *testing.T) {
	g := openFloor(t)
	entry, stops := scenarioC()

	r, err := route.Compose(g, entry, stops)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, r.Indices)
	require.Equal(t, "Bakery", r.Order[0].Name)
	require.Equal(t, "Produce", r.Order[1].Name)
	require.Equal(t, "Dairy", r.Order[2].Name)
	requireComposed(t, g, entry, stops, r)

	require.Equal(t, 27, r.Steps())
	require.Len(t, r.Path, 28)
	require.Equal(t, []route.Leg{
		{Index: 0, From: cell{X: 6, Z: 13}, To: cell{X: 6, Z: 2}, Steps: 11},
		{Index: 1, From: cell{X: 6, Z: 2}, To: cell{X: 2, Z: 4}, Steps: 6},
		{Index: 2, From: cell{X: 2, Z: 4}, To: cell{X: 11, Z: 5}, Steps: 10},
	}, r.Legs)
}

func TestCompose_Empty(t *testing.T) {
	r, err := route.Compose[route.Destination](openFloor(t), cell{X: 6, Z: 13}, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Path{{X: 6, Z: 13}}, r.Path)
	require.Empty(t, r.Order)
	require.Empty(t, r.Legs)
	require.Equal(t, 0, r.Steps())
}

// TestCompose_OptionsCheckedWithoutStops: an empty trip still rejects bad
// configuration instead of succeeding trivially.
func TestCompose_OptionsCheckedWithoutStops(t *testing.T) {
	g := openFloor(t)

	_, err := route.Compose[route.Destination](g, cell{X: 6, Z: 13}, nil,
		route.WithPathOptions(astar.WithMaxExpansions(-1)))
	require.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = route.Compose[route.Destination](g, cell{X: 6, Z: 13}, nil, route.WithStrategy(planner.Strategy(99)))
	require.ErrorIs(t, err, planner.ErrUnknownStrategy)

	_, err = route.Compose[route.Destination](g, cell{X: 6, Z: 13}, nil, route.WithTwoOptMaxIters(-1))
	require.ErrorIs(t, err, planner.ErrOptionViolation)

	r, err := route.Compose[route.Destination](g, cell{X: 6, Z: 13}, nil, route.WithRoutedDistances())
	require.NoError(t, err)
	require.Equal(t, astar.Path{{X: 6, Z: 13}}, r.Path)
}

func TestCompose_InvalidCells(t *testing.T) {
	g := openFloor(t)

	_, err := route.Compose(g, cell{X: -1, Z: 0}, []route.Destination{dest("A", 1, 1)})
	require.ErrorIs(t, err, astar.ErrInvalidCell)

	_, err = route.Compose(g, cell{X: 0, Z: 0}, []route.Destination{dest("A", 1, 1), dest("B", 1, 14)})
	require.ErrorIs(t, err, astar.ErrInvalidCell)
	require.Contains(t, err.Error(), "destination #1")

	_, err = route.Compose[route.Destination](nil, cell{X: 0, Z: 0}, nil)
	require.ErrorIs(t, err, astar.ErrNilGrid)
}

func TestCompose_LegFailure(t *testing.T) {
	// (10,2) is boxed in by shelves.
	box := cell{X: 10, Z: 2}
	g, err := gridgraph.NewGrid(13, func(c cell) bool {
		dx, dz := c.X-box.X, c.Z-box.Z
		return c == box || dx < -1 || dx > 1 || dz < -1 || dz > 1
	})
	require.NoError(t, err)

	// Nearest first is (6,12), then the boxed stop, then (0,0).
	stops := []route.Destination{dest("Far", 0, 0), dest("Boxed", 10, 2), dest("Near", 6, 12)}
	r, err := route.Compose(g, cell{X: 6, Z: 13}, stops)
	require.Nil(t, r)
	require.ErrorIs(t, err, route.ErrLegFailure)
	require.ErrorIs(t, err, astar.ErrNoPath)

	var legErr *route.LegError
	require.True(t, errors.As(err, &legErr))
	require.Equal(t, 1, legErr.Index)
	require.Equal(t, 1, legErr.InputIndex)
	require.Equal(t, cell{X: 6, Z: 12}, legErr.From)
	require.Equal(t, box, legErr.To)
	require.Contains(t, legErr.Error(), "destination #1")
}

func TestCompose_SearchLimitIsLegFailure(t *testing.T) {
	_, err := route.Compose(walledFloor(t), cell{X: 6, Z: 13}, []route.Destination{dest("A", 6, 2)},
		route.WithPathOptions(astar.WithMaxExpansions(2)))
	require.ErrorIs(t, err, route.ErrLegFailure)
	require.ErrorIs(t, err, astar.ErrSearchLimit)
}

func TestCompose_PlannerErrorPropagates(t *testing.T) {
	stops := make([]route.Destination, planner.MaxExactStops+1)
	for i := range stops {
		stops[i] = dest("s", i, 0)
	}
	_, err := route.Compose(openFloor(t), cell{X: 0, Z: 13}, stops, route.WithStrategy(planner.Exact))
	require.ErrorIs(t, err, planner.ErrTooManyStops)
}

func TestCompose_SharedCellsAppearOnce(t *testing.T) {
	g := openFloor(t)
	entry := cell{X: 0, Z: 0}
	stops := []route.Destination{dest("A", 0, 3), dest("B", 0, 3), dest("Entry", 0, 0)}

	r, err := route.Compose(g, entry, stops)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, r.Indices)
	require.Equal(t, astar.Path{{X: 0, Z: 0}, {X: 0, Z: 1}, {X: 0, Z: 2}, {X: 0, Z: 3}}, r.Path)
	require.Equal(t, 0, r.Legs[0].Steps)
	require.Equal(t, 0, r.Legs[2].Steps)
	requireComposed(t, g, entry, stops, r)
}

// TestCompose_RoutedDistances: (12,5) looks closest through the shelf but is
// a long walk around it, so walking distance visits (0,13) first.
func TestCompose_RoutedDistances(t *testing.T) {
	g := walledFloor(t)
	entry := cell{X: 12, Z: 13}
	stops := []route.Destination{dest("BehindShelf", 12, 5), dest("SameSide", 0, 13)}

	straight, err := route.Compose(g, entry, stops)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, straight.Indices)
	require.Equal(t, 46, straight.Steps())
	requireComposed(t, g, entry, stops, straight)

	walked, err := route.Compose(g, entry, stops, route.WithRoutedDistances())
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, walked.Indices)
	require.Equal(t, 32, walked.Steps())
	requireComposed(t, g, entry, stops, walked)
}

func TestCompose_ExactStrategy(t *testing.T) {
	g := openFloor(t)
	entry := cell{X: 2, Z: 0}
	stops := []route.Destination{dest("A", 3, 0), dest("B", 0, 0), dest("C", 6, 0)}

	greedy, err := route.Compose(g, entry, stops)
	require.NoError(t, err)
	require.Equal(t, 10, greedy.Steps())

	for _, s := range []planner.Strategy{planner.Exact, planner.NearestNeighborTwoOpt} {
		r, err := route.Compose(g, entry, stops, route.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, []int{1, 0, 2}, r.Indices, s.String())
		require.Equal(t, 8, r.Steps(), s.String())
	}
}

func TestCompose_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	entry, stops := scenarioC()

	_, err := route.Compose(openFloor(t), entry, stops, route.WithLogger(logger), route.WithLogger(nil))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "visiting order chosen")
	require.Contains(t, buf.String(), "strategy=nearest")
	require.Contains(t, buf.String(), "leg walked")
	require.Contains(t, buf.String(), "route composed")
}

func TestCompose_Randomized(t *testing.T) {
	g := walledFloor(t)
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := rng.Intn(7)
		stops := make([]route.Destination, 0, n)
		for len(stops) < n {
			c := cell{X: rng.Intn(14), Z: rng.Intn(14)}
			if g.Traversable(c) {
				stops = append(stops, route.Destination{Name: c.String(), Cell: c})
			}
		}
		entry := cell{X: rng.Intn(14), Z: 13}

		r, err := route.Compose(g, entry, stops)
		require.NoError(t, err, "seed %d", seed)
		if n > 0 {
			requireComposed(t, g, entry, stops, r)
		}

		again, err := route.Compose(g, entry, stops)
		require.NoError(t, err)
		require.Equal(t, r, again)
	}
}

func TestComputePath(t *testing.T) {
	p, err := route.ComputePath(openFloor(t), cell{X: 6, Z: 13}, cell{X: 6, Z: 2})
	require.NoError(t, err)
	require.Len(t, p, 12)

	_, err = route.ComputePath(openFloor(t), cell{X: 6, Z: 13}, cell{X: 6, Z: 99})
	require.ErrorIs(t, err, astar.ErrInvalidCell)
}
