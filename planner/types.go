package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/storepath/gridgraph"
)

// Sentinel errors for ordering.
var (
	// ErrTooManyStops indicates the Exact strategy was given more than MaxExactStops stops.
	ErrTooManyStops = errors.New("planner: too many stops for exact ordering")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("planner: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// MaxExactStops bounds the Exact strategy; its table has 2ⁿ·n entries.
const MaxExactStops = 12

// Unreachable is the distance a DistanceFunc reports for pairs with no
// walkable connection. It is large enough to dominate any real distance yet
// small enough that sums over a route never overflow.
const Unreachable = math.MaxInt32

// Stop is anything that sits on a grid cell: a shelf, a product, a pickup
// point. The planner only ever looks at the cell.
type Stop interface {
	Location() gridgraph.Cell
}

// DistanceFunc estimates the walking cost between two cells. It must be
// symmetric and non-negative.
type DistanceFunc func(a, b gridgraph.Cell) int

// Manhattan is the default DistanceFunc.
func Manhattan(a, b gridgraph.Cell) int {
	return gridgraph.Manhattan(a, b)
}

// Strategy selects the ordering algorithm.
type Strategy int

const (
	// NearestNeighbor orders stops greedily by closest-next.
	NearestNeighbor Strategy = iota
	// Exact finds an optimal order with Held-Karp.
	Exact
	// NearestNeighborTwoOpt refines the greedy order with 2-opt.
	NearestNeighborTwoOpt
)

var strategyNames = map[Strategy]string{
	NearestNeighbor:       "nearest",
	Exact:                 "exact",
	NearestNeighborTwoOpt: "two-opt",
}

// String returns the strategy's short name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a short name ("nearest", "exact", "two-opt") back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures Order.
type Options struct {
	// Strategy picks the ordering algorithm. Default NearestNeighbor.
	Strategy Strategy

	// Distance compares two cells. Default Manhattan.
	Distance DistanceFunc

	// TwoOptMaxIters caps accepted 2-opt moves; 0 means run to a local optimum.
	TwoOptMaxIters int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Order.
type Option func(*Options)

// DefaultOptions returns nearest-neighbor ordering over Manhattan distance.
func DefaultOptions() Options {
	return Options{
		Strategy:       NearestNeighbor,
		Distance:       Manhattan,
		TwoOptMaxIters: 0,
	}
}

// WithStrategy selects the ordering algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithDistance replaces the distance metric. A nil fn keeps Manhattan.
func WithDistance(fn DistanceFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Distance = fn
		}
	}
}

// WithTwoOptMaxIters caps accepted 2-opt moves.
//
//	n > 0: at most n moves
//	n == 0: run to a local optimum
//	n < 0: invalid option → ErrOptionViolation
func WithTwoOptMaxIters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TwoOptMaxIters cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TwoOptMaxIters = n
	}
}
