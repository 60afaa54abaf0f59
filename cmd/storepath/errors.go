package main

import (
	"errors"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/layout"
	"github.com/katalvlaran/storepath/planner"
	"github.com/katalvlaran/storepath/route"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
	// ExitNoRoute means the layout is fine but some stop cannot be walked to.
	ExitNoRoute = 2
	// ExitConfigError covers bad layouts, flags and arguments.
	ExitConfigError = 10
)

var errBadCell = errors.New("cell must be written as x,z")

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, route.ErrLegFailure), errors.Is(err, astar.ErrNoPath), errors.Is(err, astar.ErrSearchLimit):
		return ExitNoRoute
	case errors.Is(err, errBadCell),
		errors.Is(err, errBadOutput),
		errors.Is(err, astar.ErrInvalidCell),
		errors.Is(err, astar.ErrOptionViolation),
		errors.Is(err, gridgraph.ErrBadSize),
		errors.Is(err, layout.ErrBadMap),
		errors.Is(err, layout.ErrOutOfBounds),
		errors.Is(err, layout.ErrDuplicateAisle),
		errors.Is(err, layout.ErrUnknownAisle),
		errors.Is(err, planner.ErrTooManyStops),
		errors.Is(err, planner.ErrUnknownStrategy),
		errors.Is(err, planner.ErrOptionViolation):
		return ExitConfigError
	default:
		return ExitError
	}
}
