package layout

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/route"
)

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a YAML layout and validates it. Unknown keys are rejected.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// validate checks geometry and builds the aisle index.
func (l *Layout) validate() error {
	if l.Size < 0 || l.Size > gridgraph.MaxSize {
		return fmt.Errorf("layout: size %d: %w", l.Size, gridgraph.ErrBadSize)
	}
	if !l.inBounds(l.Entry) {
		return fmt.Errorf("%w: entry %v", ErrOutOfBounds, l.Entry)
	}
	if len(l.Map) > 0 {
		if len(l.Map) != l.Size+1 {
			return fmt.Errorf("%w: %d rows, want %d", ErrBadMap, len(l.Map), l.Size+1)
		}
		for z, row := range l.Map {
			if len(row) != l.Size+1 {
				return fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadMap, z, len(row), l.Size+1)
			}
			for x := 0; x < len(row); x++ {
				if row[x] != wallRune && row[x] != floorRune {
					return fmt.Errorf("%w: %q at (%d,%d)", ErrBadMap, row[x], x, z)
				}
			}
		}
	}
	for i, w := range l.Walls {
		if !l.inBounds(w.From) || !l.inBounds(w.To) {
			return fmt.Errorf("%w: wall #%d %v-%v", ErrOutOfBounds, i, w.From, w.To)
		}
	}

	l.index = make(map[string]int, len(l.Aisles))
	for i, a := range l.Aisles {
		if _, dup := l.index[a.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateAisle, a.Name)
		}
		if !l.inBounds(a.Cell) {
			return fmt.Errorf("%w: aisle %q at %v", ErrOutOfBounds, a.Name, a.Cell)
		}
		l.index[a.Name] = i
	}
	return nil
}

func (l *Layout) inBounds(c gridgraph.Cell) bool {
	return c.X >= 0 && c.X <= l.Size && c.Z >= 0 && c.Z <= l.Size
}

// Grid builds the walkability grid: map first, then walls. The grid
// carries the layout's Version.
func (l *Layout) Grid() (*gridgraph.Grid, error) {
	n := l.Size + 1
	values := make([][]int, n)
	for z := range values {
		values[z] = make([]int, n)
		for x := range values[z] {
			if len(l.Map) == 0 || l.Map[z][x] == floorRune {
				values[z][x] = 1
			}
		}
	}
	for _, w := range l.Walls {
		x0, x1 := ordered(w.From.X, w.To.X)
		z0, z1 := ordered(w.From.Z, w.To.Z)
		for z := z0; z <= z1; z++ {
			for x := x0; x <= x1; x++ {
				values[z][x] = 0
			}
		}
	}

	return gridgraph.FromMatrix(values, 1, gridgraph.WithVersion(l.Version))
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// Aisle looks an aisle up by name.
func (l *Layout) Aisle(name string) (Aisle, bool) {
	if l.index == nil {
		// Built by hand rather than parsed.
		for _, a := range l.Aisles {
			if a.Name == name {
				return a, true
			}
		}
		return Aisle{}, false
	}
	i, ok := l.index[name]
	if !ok {
		return Aisle{}, false
	}
	return l.Aisles[i], true
}

// Resolve maps items to destinations at their aisle's cell, in input order.
// Each destination's Meta carries the item's Meta plus an "aisle" label.
func (l *Layout) Resolve(items []Item) ([]route.Destination, error) {
	out := make([]route.Destination, 0, len(items))
	for i, it := range items {
		a, ok := l.Aisle(it.Aisle)
		if !ok {
			return nil, fmt.Errorf("%w: %q (item #%d %q)", ErrUnknownAisle, it.Aisle, i, it.Name)
		}
		meta := make(map[string]string, len(it.Meta)+1)
		for k, v := range it.Meta {
			meta[k] = v
		}
		meta["aisle"] = a.Name
		out = append(out, route.Destination{Name: it.Name, Cell: a.Cell, Meta: meta})
	}
	return out, nil
}

// Diagnose lists aisles a shopper entering at Entry could never reach on g,
// in aisle order. g must come from l.Grid. The entry itself may sit on an unwalkable cell; in that
// case every region touching it counts as reachable.
func (l *Layout) Diagnose(g *gridgraph.Grid) []Issue {
	labels := g.ComponentLabels()
	reach := make(map[int]bool)
	if lbl := labels[g.Index(l.Entry)]; lbl >= 0 {
		reach[lbl] = true
	} else {
		for _, nb := range g.Neighbors(l.Entry, nil) {
			reach[labels[g.Index(nb)]] = true
		}
	}

	var issues []Issue
	for _, a := range l.Aisles {
		if a.Cell == l.Entry {
			continue
		}
		lbl := labels[g.Index(a.Cell)]
		switch {
		case lbl < 0:
			issues = append(issues, Issue{Aisle: a.Name, Cell: a.Cell, Reason: ReasonBlocked})
		case !reach[lbl]:
			issues = append(issues, Issue{Aisle: a.Name, Cell: a.Cell, Reason: ReasonUnreachable})
		}
	}
	return issues
}
