package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storepath/gridgraph"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidCell indicates that start or goal lies outside the grid bounds.
	ErrInvalidCell = errors.New("astar: cell out of grid bounds")

	// ErrNoPath indicates that no sequence of traversable adjacent cells
	// connects start and goal.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrSearchLimit indicates that the expansion budget ran out first.
	ErrSearchLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Path is an ordered sequence of cells where consecutive cells differ by
// exactly one unit along exactly one axis.
type Path []gridgraph.Cell

// Steps returns the number of moves in the path (len-1), or 0 when empty.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Options configures a single search.
type Options struct {
	// OnExpand is called once per finalized cell, in expansion order.
	// The start cell is reported first; the goal is never reported.
	OnExpand func(c gridgraph.Cell)

	// MaxExpansions, if > 0, bounds how many cells may be finalized; a
	// search that needs more fails with ErrSearchLimit. 0 means no limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnExpand hook and no
// expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExpand:      func(gridgraph.Cell) {},
		MaxExpansions: 0,
	}
}

// ValidateOptions applies opts to DefaultOptions and reports the first
// invalid one (ErrOptionViolation), without running a search. Callers that
// forward options to many searches use it to fail before doing any work.
func ValidateOptions(opts ...Option) error {
	_, err := buildOptions(opts)
	return err
}

// buildOptions folds opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}

// WithOnExpand registers a callback run for every finalized cell.
// A nil fn leaves the default no-op in place.
func WithOnExpand(fn func(c gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of finalized cells.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
