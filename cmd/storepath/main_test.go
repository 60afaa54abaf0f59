package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/storepath/astar"
	"github.com/katalvlaran/storepath/gridgraph"
	"github.com/katalvlaran/storepath/layout"
	"github.com/katalvlaran/storepath/planner"
	"github.com/katalvlaran/storepath/route"
)

const kiosk = "testdata/kiosk.yaml"

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPathCmd_Text(t *testing.T) {
	out, _, err := run(t, "path", "-l", kiosk, "4,2")
	require.NoError(t, err)
	require.Equal(t, `(0,4) -> (4,2): 6 steps
.....
..#..
..#.G
..#.*
E****
`, out)
}

func TestPathCmd_JSON(t *testing.T) {
	out, _, err := run(t, "path", "-l", kiosk, "-o", "json", "0,0", "0,2")
	require.NoError(t, err)

	var rep pathReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, gridgraph.Cell{X: 0, Z: 0}, rep.From)
	require.Equal(t, 2, rep.Steps)
	require.Equal(t, astar.Path{{X: 0, Z: 0}, {X: 0, Z: 1}, {X: 0, Z: 2}}, rep.Path)
}

func TestPathCmd_Errors(t *testing.T) {
	_, _, err := run(t, "path", "-l", kiosk, "2,2")
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.Equal(t, ExitNoRoute, exitCode(err))

	_, _, err = run(t, "path", "-l", kiosk, "9,9")
	require.ErrorIs(t, err, astar.ErrInvalidCell)
	require.Equal(t, ExitConfigError, exitCode(err))

	_, _, err = run(t, "path", "-l", kiosk, "four,two")
	require.ErrorIs(t, err, errBadCell)

	_, _, err = run(t, "path", "-l", kiosk, "--max-expansions", "1", "4,2")
	require.ErrorIs(t, err, astar.ErrSearchLimit)

	_, _, err = run(t, "path", "-l", kiosk, "--max-expansions", "-1", "4,2")
	require.ErrorIs(t, err, astar.ErrOptionViolation)
	require.Equal(t, ExitConfigError, exitCode(err))
}

func TestRouteCmd_Text(t *testing.T) {
	out, _, err := run(t, "route", "-l", kiosk, "Chips=snacks", "Gum=checkout")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Equal(t, []string{"1", "Gum", "checkout", "(0,0)", "4"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"2", "Chips", "snacks", "(4,2)", "6"}, strings.Fields(lines[2]))
	require.Equal(t, "total: 10 steps (nearest)", lines[3])
	require.Equal(t, "1****\n*.#.*\n*.#.2\n*.#..\nE....\n", strings.Join(lines[4:], "\n"))
}

func TestRouteCmd_JSONWithItemsFile(t *testing.T) {
	out, _, err := run(t, "route", "-l", kiosk, "-o", "json", "--items", "testdata/items.yaml", "--strategy", "exact", "--routed")
	require.NoError(t, err)

	var rep routeReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, "kiosk-1", rep.Layout)
	require.Equal(t, "exact", rep.Strategy)
	require.True(t, rep.Routed)
	require.Len(t, rep.Stops, 2)
	require.Equal(t, "Gum", rep.Stops[0].Name)
	require.Equal(t, "checkout", rep.Stops[0].Aisle)
	require.Equal(t, 10, rep.Steps)
	require.Len(t, rep.Path, 11)
}

func TestRouteCmd_VerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "route", "-l", kiosk, "-v", "snacks")
	require.NoError(t, err)
	require.Contains(t, errOut, "layout loaded")
	require.Contains(t, errOut, "visiting order chosen")
	// The blocked shelf aisle is reported even though it was not requested.
	require.Contains(t, errOut, "aisle unreachable")
	require.Contains(t, errOut, "aisle=shelf")
}

func TestRouteCmd_Errors(t *testing.T) {
	_, _, err := run(t, "route", "-l", kiosk, "Hammer=hardware")
	require.ErrorIs(t, err, layout.ErrUnknownAisle)
	require.Equal(t, ExitConfigError, exitCode(err))

	_, _, err = run(t, "route", "-l", kiosk, "shelf")
	require.ErrorIs(t, err, route.ErrLegFailure)
	var legErr *route.LegError
	require.True(t, errors.As(err, &legErr))
	require.Equal(t, ExitNoRoute, exitCode(err))

	_, _, err = run(t, "route", "-l", kiosk, "--strategy", "fastest", "snacks")
	require.ErrorIs(t, err, planner.ErrUnknownStrategy)

	_, _, err = run(t, "route", "-l", kiosk, "--two-opt-iters", "-1", "snacks")
	require.ErrorIs(t, err, planner.ErrOptionViolation)
	require.Equal(t, ExitConfigError, exitCode(err))

	_, _, err = run(t, "route", "-l", kiosk, "-o", "xml", "snacks")
	require.ErrorIs(t, err, errBadOutput)

	_, _, err = run(t, "route", "-l", "testdata/missing.yaml", "snacks")
	require.Error(t, err)
	require.Equal(t, ExitError, exitCode(err))
}

func TestInspectCmd(t *testing.T) {
	out, _, err := run(t, "inspect", "-l", kiosk)
	require.NoError(t, err)
	require.Contains(t, out, `layout "kiosk-1": size 4, 25 cells, 22 walkable in 1 region(s), entry (0,4)`)
	require.Contains(t, out, layout.ReasonBlocked)
	require.True(t, strings.HasSuffix(out, "2....\n..#..\n..3.1\n..#..\nE....\n"), out)

	out, _, err = run(t, "inspect", "-l", kiosk, "-o", "json")
	require.NoError(t, err)
	var rep inspectReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, 22, rep.Walkable)
	require.Equal(t, []layout.Issue{{Aisle: "shelf", Cell: gridgraph.Cell{X: 2, Z: 2}, Reason: layout.ReasonBlocked}}, rep.Issues)
}

func TestStopMark(t *testing.T) {
	require.Equal(t, byte('1'), stopMark(0))
	require.Equal(t, byte('9'), stopMark(8))
	require.Equal(t, byte('a'), stopMark(9))
	require.Equal(t, byte('z'), stopMark(34))
	require.Equal(t, byte('+'), stopMark(35))
}

func TestParseCell(t *testing.T) {
	c, err := parseCell(" 3, 11")
	require.NoError(t, err)
	require.Equal(t, gridgraph.Cell{X: 3, Z: 11}, c)

	for _, bad := range []string{"", "3", "3;4", "x,4", "3,z"} {
		_, err := parseCell(bad)
		require.ErrorIs(t, err, errBadCell, bad)
	}
}
