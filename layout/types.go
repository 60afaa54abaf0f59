package layout

import (
	"errors"

	"github.com/katalvlaran/storepath/gridgraph"
)

// Sentinel errors returned by Parse, Load and Resolve.
var (
	// ErrBadMap indicates a map with the wrong number of rows or columns,
	// or a character other than '#' and '.'.
	ErrBadMap = errors.New("layout: malformed map")

	// ErrOutOfBounds indicates an entry, wall or aisle cell outside the floor.
	ErrOutOfBounds = errors.New("layout: cell outside the floor")

	// ErrDuplicateAisle indicates two aisles sharing a name.
	ErrDuplicateAisle = errors.New("layout: duplicate aisle name")

	// ErrUnknownAisle indicates an item that names an aisle the layout lacks.
	ErrUnknownAisle = errors.New("layout: unknown aisle")
)

const (
	wallRune  = '#'
	floorRune = '.'
)

// Layout is a parsed floor plan.
type Layout struct {
	// Version tags grids built from this layout, for route.Cache.
	Version string `yaml:"version" json:"version"`
	// Size is the largest coordinate on either axis.
	Size  int            `yaml:"size" json:"size"`
	Entry gridgraph.Cell `yaml:"entry" json:"entry"`
	// Map rows run z=0..Size; each row has Size+1 characters.
	Map    []string `yaml:"map,omitempty" json:"map,omitempty"`
	Walls  []Wall   `yaml:"walls,omitempty" json:"walls,omitempty"`
	Aisles []Aisle  `yaml:"aisles" json:"aisles"`

	index map[string]int
}

// Wall blocks every cell of the inclusive rectangle spanned by From and To.
type Wall struct {
	From gridgraph.Cell `yaml:"from" json:"from"`
	To   gridgraph.Cell `yaml:"to" json:"to"`
}

// Aisle names the cell a shopper stands on to pick from it.
type Aisle struct {
	Name string         `yaml:"name" json:"name"`
	Cell gridgraph.Cell `yaml:"cell" json:"cell"`
}

// Item is one shopping-list entry.
type Item struct {
	Name  string            `yaml:"name" json:"name"`
	Aisle string            `yaml:"aisle" json:"aisle"`
	Meta  map[string]string `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// Issue is a problem Diagnose found with an aisle.
type Issue struct {
	Aisle  string         `json:"aisle"`
	Cell   gridgraph.Cell `json:"cell"`
	Reason string         `json:"reason"`
}

// Reasons reported by Diagnose.
const (
	ReasonBlocked     = "aisle cell is not walkable"
	ReasonUnreachable = "aisle cell is not connected to the entry"
)
