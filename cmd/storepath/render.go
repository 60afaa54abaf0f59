package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
)

const (
	runeWall  = '#'
	runeFloor = '.'
	runePath  = '*'
	runeEntry = 'E'
	runeGoal  = 'G'
)

// mapTheme colors the ASCII map. On a writer that is not a color terminal
// the renderer drops all styling and the map stays plain text.
type mapTheme struct {
	Wall  lipgloss.Style
	Floor lipgloss.Style
	Path  lipgloss.Style
	Mark  lipgloss.Style
}

func newMapTheme(r *lipgloss.Renderer) mapTheme {
	return mapTheme{
		Wall:  r.NewStyle().Foreground(lipgloss.Color("#805800")),
		Floor: r.NewStyle().Foreground(lipgloss.Color("#3A3A3A")),
		Path:  r.NewStyle().Foreground(lipgloss.Color("#FFB000")).Bold(true),
		Mark:  r.NewStyle().Foreground(lipgloss.Color("#FFD966")).Bold(true).Reverse(true),
	}
}

// renderMap draws g one row per z, with path cells as '*' and marks
// drawn over everything else.
func renderMap(w io.Writer, g *gridgraph.Grid, path astar.Path, marks map[gridgraph.Cell]byte) error {
	n := g.Size() + 1
	rows := make([][]byte, n)
	for z := range rows {
		rows[z] = make([]byte, n)
		for x := range rows[z] {
			rows[z][x] = runeWall
			if g.Walkable(gridgraph.Cell{X: x, Z: z}) {
				rows[z][x] = runeFloor
			}
		}
	}
	for _, c := range path {
		rows[c.Z][c.X] = runePath
	}
	for c, m := range marks {
		if g.InBounds(c) {
			rows[c.Z][c.X] = m
		}
	}

	theme := newMapTheme(lipgloss.NewRenderer(w))
	var b strings.Builder
	for _, row := range rows {
		for _, ch := range row {
			b.WriteString(theme.style(ch).Render(string(ch)))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (t mapTheme) style(ch byte) lipgloss.Style {
	switch ch {
	case runeWall:
		return t.Wall
	case runeFloor:
		return t.Floor
	case runePath:
		return t.Path
	default:
		return t.Mark
	}
}

// stopMark labels the k-th stop: 1-9, then a-z, then '+'.
func stopMark(k int) byte {
	switch {
	case k < 9:
		return byte('1' + k)
	case k < 9+26:
		return byte('a' + k - 9)
	default:
		return '+'
	}
}
