package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/layout"
)

type inspectReport struct {
	Version  string         `json:"version"`
	Size     int            `json:"size"`
	Entry    gridgraph.Cell `json:"entry"`
	Cells    int            `json:"cells"`
	Walkable int            `json:"walkable"`
	Regions  int            `json:"regions"`
	Aisles   []layout.Aisle `json:"aisles"`
	Issues   []layout.Issue `json:"issues"`
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a layout and report unreachable aisles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, g, err := a.load()
			if err != nil {
				return err
			}
			regions := g.ConnectedComponents()
			rep := inspectReport{
				Version: l.Version,
				Size:    l.Size,
				Entry:   l.Entry,
				Cells:   g.Len(),
				Regions: len(regions),
				Aisles:  l.Aisles,
				Issues:  l.Diagnose(g),
			}
			for _, r := range regions {
				rep.Walkable += len(r)
			}
			if rep.Issues == nil {
				rep.Issues = []layout.Issue{}
			}

			if a.flags.Format() == FormatJSON {
				return writeJSON(cmd, rep)
			}
			return printInspect(cmd, g, rep, a.flags.NoMap)
		},
	}
}

func printInspect(cmd *cobra.Command, g *gridgraph.Grid, rep inspectReport, noMap bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "layout %q: size %d, %d cells, %d walkable in %d region(s), entry %v\n",
		rep.Version, rep.Size, rep.Cells, rep.Walkable, rep.Regions, rep.Entry)

	problems := make(map[string]string, len(rep.Issues))
	for _, is := range rep.Issues {
		problems[is.Aisle] = is.Reason
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tAISLE\tCELL\tSTATUS")
	for k, ai := range rep.Aisles {
		status := "ok"
		if reason, bad := problems[ai.Name]; bad {
			status = reason
		}
		fmt.Fprintf(tw, "%c\t%s\t%v\t%s\n", stopMark(k), ai.Name, ai.Cell, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if noMap {
		return nil
	}

	marks := map[gridgraph.Cell]byte{rep.Entry: runeEntry}
	for k, ai := range rep.Aisles {
		marks[ai.Cell] = stopMark(k)
	}
	return renderMap(out, g, nil, marks)
}
