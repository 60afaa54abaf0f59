package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/layout"
	"github.com/katalvlaran/storepath/planner"
	"github.com/katalvlaran/storepath/route"
)

type routeReport struct {
	Layout   string         `json:"layout"`
	Strategy string         `json:"strategy"`
	Routed   bool           `json:"routed"`
	Entry    gridgraph.Cell `json:"entry"`
	Stops    []stopReport   `json:"stops"`
	Steps    int            `json:"steps"`
	Path     astar.Path     `json:"path"`
}

type stopReport struct {
	Name  string         `json:"name"`
	Aisle string         `json:"aisle"`
	Cell  gridgraph.Cell `json:"cell"`
	Steps int            `json:"steps"`
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		strategy   string
		routed     bool
		itemsFile  string
		twoOptIter int
	)
	cmd := &cobra.Command{
		Use:   "route [ITEM=AISLE | AISLE]...",
		Short: "Plan a shopping trip from the entry",
		Long: `Plan a walk from the layout's entry through the aisle of every item.
Items are given as NAME=AISLE, or just AISLE, and/or read from --items.`,
		Example: `  storepath route -l store.yaml Milk=dairy Bread=bakery
  storepath route -l store.yaml --strategy exact --routed --items list.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := planner.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			l, g, err := a.load()
			if err != nil {
				return err
			}
			items, err := collectItems(itemsFile, args)
			if err != nil {
				return err
			}
			dests, err := l.Resolve(items)
			if err != nil {
				return err
			}
			for _, is := range l.Diagnose(g) {
				a.logger.Warn("aisle unreachable", slog.String("aisle", is.Aisle),
					slog.String("cell", is.Cell.String()), slog.String("reason", is.Reason))
			}

			opts := []route.Option{
				route.WithStrategy(s),
				route.WithTwoOptMaxIters(twoOptIter),
				route.WithLogger(a.logger),
			}
			if routed {
				opts = append(opts, route.WithRoutedDistances())
			}
			r, err := route.Compose(g, l.Entry, dests, opts...)
			if err != nil {
				return err
			}

			report := routeReport{
				Layout:   l.Version,
				Strategy: s.String(),
				Routed:   routed,
				Entry:    l.Entry,
				Stops:    make([]stopReport, len(r.Order)),
				Steps:    r.Steps(),
				Path:     r.Path,
			}
			for k, d := range r.Order {
				report.Stops[k] = stopReport{Name: d.Name, Aisle: d.Meta["aisle"], Cell: d.Cell, Steps: r.Legs[k].Steps}
			}
			if a.flags.Format() == FormatJSON {
				return writeJSON(cmd, report)
			}
			return printRoute(cmd, g, report, a.flags.NoMap)
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", planner.NearestNeighbor.String(), "Ordering strategy (nearest|two-opt|exact)")
	cmd.Flags().BoolVar(&routed, "routed", false, "Order stops by walking distance instead of straight-line distance")
	cmd.Flags().StringVar(&itemsFile, "items", "", "YAML file with a list of {name, aisle} items")
	cmd.Flags().IntVar(&twoOptIter, "two-opt-iters", 0, "Cap on 2-opt improvements (0 = until no move helps)")
	return cmd
}

// collectItems merges the items file, if any, with NAME=AISLE arguments.
func collectItems(file string, args []string) ([]layout.Item, error) {
	var items []layout.Item
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read items: %w", err)
		}
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode items %s: %w", file, err)
		}
	}
	for _, arg := range args {
		name, aisle, ok := strings.Cut(arg, "=")
		if !ok {
			aisle = name
		}
		items = append(items, layout.Item{Name: name, Aisle: aisle})
	}
	return items, nil
}

func printRoute(cmd *cobra.Command, g *gridgraph.Grid, rep routeReport, noMap bool) error {
	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tITEM\tAISLE\tCELL\tSTEPS")
	for k, s := range rep.Stops {
		fmt.Fprintf(tw, "%c\t%s\t%s\t%v\t%d\n", stopMark(k), s.Name, s.Aisle, s.Cell, s.Steps)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "total: %d steps (%s", rep.Steps, rep.Strategy)
	if rep.Routed {
		fmt.Fprint(out, ", walking distance")
	}
	fmt.Fprintln(out, ")")
	if noMap {
		return nil
	}

	marks := map[gridgraph.Cell]byte{rep.Entry: runeEntry}
	for k, s := range rep.Stops {
		marks[s.Cell] = stopMark(k)
	}
	return renderMap(out, g, rep.Path, marks)
}
