package route

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/planner"
)

// ErrLegFailure matches every *LegError via errors.Is.
var ErrLegFailure = errors.New("route: leg could not be walked")

// Destination is a shopping stop: a cell plus caller-defined labels the
// engine carries along but never reads.
type Destination struct {
	Name string            `json:"name" yaml:"name"`
	Cell gridgraph.Cell    `json:"cell" yaml:"cell"`
	Meta map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Location implements planner.Stop.
func (d Destination) Location() gridgraph.Cell { return d.Cell }

// Leg is one point-to-point segment of a route.
type Leg struct {
	// Index is the position, in Route.Order, of the stop this leg ends at.
	Index int
	From  gridgraph.Cell
	To    gridgraph.Cell
	// Steps is the number of moves in this leg.
	Steps int
}

// Route is a visiting order plus the single path that walks it.
type Route[S planner.Stop] struct {
	// Order lists the stops in visiting order.
	Order []S
	// Indices maps visiting position to input position: Order[k] is stops[Indices[k]].
	Indices []int
	// Path starts at the entry and passes every stop in Order.
	Path astar.Path
	// Legs has one element per stop.
	Legs []Leg
}

// Steps returns the total number of moves along the route.
func (r *Route[S]) Steps() int { return r.Path.Steps() }

// LegError reports the first leg that could not be walked.
type LegError struct {
	// Index is the stop's position in the visiting order.
	Index int
	// InputIndex is the stop's position in the caller's slice.
	InputIndex int
	From       gridgraph.Cell
	To         gridgraph.Cell
	// Err is the path finder's error, typically astar.ErrNoPath.
	Err error
}

func (e *LegError) Error() string {
	return fmt.Sprintf("route: leg %d %v → %v (destination #%d): %v", e.Index, e.From, e.To, e.InputIndex, e.Err)
}

// Unwrap exposes the path finder's error.
func (e *LegError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLegFailure) true for any *LegError.
func (e *LegError) Is(target error) bool { return target == ErrLegFailure }

// Options configures Compose.
type Options struct {
	// Strategy selects the planner's ordering algorithm.
	Strategy planner.Strategy

	// RoutedDistances makes the planner compare stops by true walking
	// distance (one BFS sweep per point) instead of Manhattan distance.
	RoutedDistances bool

	// TwoOptMaxIters is forwarded to planner.WithTwoOptMaxIters.
	TwoOptMaxIters int

	// PathOptions are forwarded to every astar.FindPath call.
	PathOptions []astar.Option

	// Logger receives debug records. Default discards everything.
	Logger *slog.Logger
}

// Option represents a functional option for configuring Compose.
type Option func(*Options)

// DefaultOptions returns nearest-neighbor ordering over Manhattan distance
// with a silent logger.
func DefaultOptions() Options {
	return Options{
		Strategy: planner.NearestNeighbor,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStrategy selects the ordering algorithm.
func WithStrategy(s planner.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithRoutedDistances orders stops by walking distance rather than Manhattan distance.
func WithRoutedDistances() Option {
	return func(o *Options) {
		o.RoutedDistances = true
	}
}

// WithTwoOptMaxIters caps 2-opt moves for planner.NearestNeighborTwoOpt.
func WithTwoOptMaxIters(n int) Option {
	return func(o *Options) {
		o.TwoOptMaxIters = n
	}
}

// WithPathOptions forwards options to every leg's path search.
func WithPathOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.PathOptions = append(o.PathOptions, opts...)
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
