package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/route"
)

type pathReport struct {
	From  gridgraph.Cell `json:"from"`
	To    gridgraph.Cell `json:"to"`
	Steps int            `json:"steps"`
	Path  astar.Path     `json:"path"`
}

func newPathCmd(a *app) *cobra.Command {
	var maxExpansions int
	cmd := &cobra.Command{
		Use:   "path [FROM] TO",
		Short: "Shortest walk between two cells",
		Long: `Find the shortest walk between two cells, written as x,z.
With a single argument the walk starts at the layout's entry.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, g, err := a.load()
			if err != nil {
				return err
			}
			from := l.Entry
			if len(args) == 2 {
				if from, err = parseCell(args[0]); err != nil {
					return err
				}
			}
			to, err := parseCell(args[len(args)-1])
			if err != nil {
				return err
			}

			expanded := 0
			p, err := route.ComputePath(g, from, to,
				astar.WithMaxExpansions(maxExpansions),
				astar.WithOnExpand(func(gridgraph.Cell) { expanded++ }),
			)
			if err != nil {
				return err
			}
			a.logger.Debug("path found", slog.Int("steps", p.Steps()), slog.Int("expanded", expanded))

			if a.flags.Format() == FormatJSON {
				return writeJSON(cmd, pathReport{From: from, To: to, Steps: p.Steps(), Path: p})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v -> %v: %d steps\n", from, to, p.Steps())
			if a.flags.NoMap {
				return nil
			}
			return renderMap(cmd.OutOrStdout(), g, p, map[gridgraph.Cell]byte{from: runeEntry, to: runeGoal})
		},
	}
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "Give up after expanding this many cells (0 = no limit)")
	return cmd
}
