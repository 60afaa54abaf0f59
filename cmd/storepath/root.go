package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/layout"
)

// app is the state shared by the commands of one invocation.
type app struct {
	flags  GlobalFlags
	logger *slog.Logger
}

// Execute runs the CLI with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "storepath",
		Short: "Plan walking routes through a store",
		Long: `storepath reads a store floor plan and plans the shortest walk
between points, or a full shopping trip over a list of items.

Floor plans are YAML files with a size, an entry cell, optional walls or an
ASCII map, and the cell of every aisle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.flags.validate(); err != nil {
				return err
			}
			a.logger = a.flags.logger(cmd.ErrOrStderr())
			return nil
		},
	}
	a.flags.register(root)

	root.AddCommand(newPathCmd(a))
	root.AddCommand(newRouteCmd(a))
	root.AddCommand(newInspectCmd(a))
	return root
}

// load reads the layout named by --layout and builds its grid.
func (a *app) load() (*layout.Layout, *gridgraph.Grid, error) {
	l, err := layout.Load(a.flags.Layout)
	if err != nil {
		return nil, nil, err
	}
	g, err := l.Grid()
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("layout loaded",
		slog.String("file", a.flags.Layout),
		slog.String("version", l.Version),
		slog.Int("size", l.Size),
		slog.Int("aisles", len(l.Aisles)),
	)
	return l, g, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseCell reads "x,z".
func parseCell(s string) (gridgraph.Cell, error) {
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	z, err := strconv.Atoi(strings.TrimSpace(zs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	return gridgraph.Cell{X: x, Z: z}, nil
}
