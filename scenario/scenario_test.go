package scenario_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/scenario"
)

const full = `
grid "meadow" {
  cell_size = 32
  rows = [
    "S..~",
    ".#wG",
  ]
  legend = {
    "~" = 3
    "T" = wall
    "w" = { weight = 2 }
  }

  search "markers" {}

  search "pixels" {
    pixels    = true
    start     = [10, 10]
    goal      = [100, 40]
    heuristic = "zero"
  }
}

graph "roads" {
  matrix = [
    [0, 4, 1, 0, 0],
    [4, 0, 2, 5, 0],
    [1, 2, 0, 8, 0],
    [0, 5, 8, 0, 3],
    [0, 0, 0, 3, 0],
  ]
  source   = 0
  selector = "heap"
  targets  = [4]
}
`

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

//----------------------------------------------------------------------------//
// Loading
//----------------------------------------------------------------------------//

// TestLoad_Full decodes grids, legends, searches and graphs.
func TestLoad_Full(t *testing.T) {
	path := writeFile(t, t.TempDir(), "full.hcl", full)
	s, err := scenario.Load(testCtx(), path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path)

	require.Len(t, s.Grids, 1)
	g := s.Grids[0]
	assert.Equal(t, "meadow", g.Name)
	assert.Equal(t, "meadow", g.Map.Name)
	assert.Equal(t, 32, g.Map.CellSize)
	assert.Equal(t, 3.0, g.Map.Grid.Weight(grid.Coord{X: 3, Y: 0}))
	assert.Equal(t, 2.0, g.Map.Grid.Weight(grid.Coord{X: 2, Y: 1}))

	require.Len(t, g.Searches, 2)
	markers, pixels := g.Searches[0], g.Searches[1]
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, markers.Start)
	assert.Equal(t, grid.Coord{X: 3, Y: 1}, markers.Goal)
	assert.Equal(t, astar.HeuristicAuto, markers.Heuristic)
	assert.True(t, pixels.Pixels)
	assert.Equal(t, route.Point{X: 10, Y: 10}, pixels.PixelStart)
	assert.Equal(t, route.Point{X: 100, Y: 40}, pixels.PixelGoal)
	assert.Equal(t, astar.HeuristicZero, pixels.Heuristic)

	require.Len(t, s.Graphs, 1)
	gr := s.Graphs[0]
	assert.Equal(t, "roads", gr.Name)
	assert.Len(t, gr.Matrix, 5)
	assert.Equal(t, dijkstra.SelectorHeap, gr.Selector)
	assert.Equal(t, []int{4}, gr.Targets)
	assert.Nil(t, gr.MaxDistance)
}

// TestLoad_MapFile resolves map files relative to the scenario.
func TestLoad_MapFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "maps/cave.txt", "S.#\n..G\n")
	writeFile(t, dir, "maps/field.yaml", "cell_size: 8\nrows: ['....']\n")
	path := writeFile(t, dir, "caves.hcl", `
grid "cave" {
  file = "maps/cave.txt"
  search "exit" {}
}
grid "field" {
  file = "maps/field.yaml"
  cell_size = 16
  search "across" {
    start = [0, 0]
    goal  = [3, 0]
  }
}
`)
	s, err := scenario.Load(testCtx(), path)
	require.NoError(t, err)
	require.Len(t, s.Grids, 2)
	assert.Equal(t, grid.Coord{X: 2, Y: 1}, s.Grids[0].Searches[0].Goal)
	assert.Equal(t, mapfile.DefaultCellSize, s.Grids[0].Map.CellSize)
	assert.Equal(t, 16, s.Grids[1].Map.CellSize, "cell_size overrides the file")
}

// TestParse_Errors covers decoding and validation failures.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", ``, scenario.ErrEmptyScenario},
		{"UnknownHeuristic", `grid "a" {
  rows = ["S.G"]
  search "x" { heuristic = "euclid" }
}`, scenario.ErrInvalidScenario},
		{"RowsAndFile", `grid "a" {
  rows = [".."]
  file = "a.txt"
}`, scenario.ErrInvalidScenario},
		{"NoRows", `grid "a" {}`, scenario.ErrInvalidScenario},
		{"DuplicateGrid", `grid "a" { rows = [".."] }
grid "a" { rows = [".."] }`, scenario.ErrInvalidScenario},
		{"DuplicateSearch", `grid "a" {
  rows = ["S.G"]
  search "x" {}
  search "x" {}
}`, scenario.ErrInvalidScenario},
		{"MissingStart", `grid "a" {
  rows = ["..G"]
  search "x" {}
}`, scenario.ErrInvalidScenario},
		{"FractionalCoord", `grid "a" {
  rows = ["S.G"]
  search "x" { start = [0.5, 0] }
}`, scenario.ErrInvalidScenario},
		{"ThreeValues", `grid "a" {
  rows = ["S.G"]
  search "x" { goal = [1, 0, 0] }
}`, scenario.ErrInvalidScenario},
		{"PixelsNeedEndpoints", `grid "a" {
  rows = ["S.G"]
  search "x" { pixels = true }
}`, scenario.ErrInvalidScenario},
		{"NegativeMaxExpansions", `grid "a" {
  rows = ["S.G"]
  search "x" { max_expansions = -1 }
}`, scenario.ErrInvalidScenario},
		{"ZeroCellSize", `grid "a" {
  rows = [".."]
  cell_size = 0
}`, scenario.ErrInvalidScenario},
		{"LegendBadString", `grid "a" {
  rows = ["~"]
  legend = { "~" = "swamp" }
}`, scenario.ErrInvalidScenario},
		{"LegendNotMap", `grid "a" {
  rows = ["~"]
  legend = ["~"]
}`, scenario.ErrInvalidScenario},
		{"LegendExtraAttr", `grid "a" {
  rows = ["~"]
  legend = { "~" = { weight = 2, colour = "blue" } }
}`, scenario.ErrInvalidScenario},
		{"LegendZeroWeight", `grid "a" {
  rows = ["~"]
  legend = { "~" = { weight = 0 } }
}`, mapfile.ErrBadLegend},
		{"LegendWithFile", `grid "a" {
  file = "a.txt"
  legend = { "~" = 2 }
}`, scenario.ErrInvalidScenario},
		{"UnknownSymbol", `grid "a" { rows = ["x"] }`, mapfile.ErrUnknownSymbol},
		{"UnknownSelector", `graph "g" {
  matrix = [[0]]
  selector = "fibonacci"
}`, scenario.ErrInvalidScenario},
		{"NegativeMaxDistance", `graph "g" {
  matrix = [[0]]
  max_distance = -1
}`, scenario.ErrInvalidScenario},
		{"DuplicateGraph", `graph "g" { matrix = [[0]] }
graph "g" { matrix = [[0]] }`, scenario.ErrInvalidScenario},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scenario.Parse(testCtx(), []byte(tc.src), "test.hcl")
			assert.Nil(t, s)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestParse_Diagnostics wraps HCL syntax and schema errors.
func TestParse_Diagnostics(t *testing.T) {
	_, err := scenario.Parse(testCtx(), []byte(`grid "a" {`), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scenario broken.hcl")

	_, err = scenario.Parse(testCtx(), []byte(`grid "a" { colour = "red" }`), "schema.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode scenario schema.hcl")

	_, err = scenario.Parse(testCtx(), []byte(`graph "g" { source = 1 }`), "nomatrix.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode scenario nomatrix.hcl")
}

// TestLoad_MissingFile reports the underlying os error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := scenario.Load(testCtx(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

//----------------------------------------------------------------------------//
// Running
//----------------------------------------------------------------------------//

// TestRun_Full executes every item and checks the outcomes.
func TestRun_Full(t *testing.T) {
	s, err := scenario.Parse(testCtx(), []byte(full), "full.hcl")
	require.NoError(t, err)

	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
	rep, err := s.Run(ctx)
	require.NoError(t, err)
	assert.False(t, rep.Failed())
	assert.NotEmpty(t, rep.RunID)
	assert.Contains(t, logs.String(), "run_id="+rep.RunID)

	require.Len(t, rep.Searches, 2)
	for _, sr := range rep.Searches {
		require.NoError(t, sr.Err, sr.Search.Name)
		assert.True(t, sr.Result.Found, sr.Search.Name)
		assert.Equal(t, 5.0, sr.Result.Cost, sr.Search.Name)
	}

	require.Len(t, rep.Graphs, 1)
	assert.Equal(t, []float64{0, 3, 1, 8, 11}, rep.Graphs[0].Tree.Dist)

	var out bytes.Buffer
	require.NoError(t, rep.WriteText(&out))
	text := out.String()
	assert.Contains(t, text, "search meadow/markers: cost 5, 5 cells")
	assert.Contains(t, text, "S**~\n.#*G\n")
	assert.Contains(t, text, "graph roads: source 0\n")
	assert.Contains(t, text, "  4\t11\n")
	assert.Contains(t, text, "  path to 4: [0 2 1 3 4]\n")
}

// TestRun_ItemErrorsAreRecorded keeps going after a failing item.
func TestRun_ItemErrorsAreRecorded(t *testing.T) {
	src := `
grid "a" {
  rows = ["S.#G"]
  search "outside" {
    start = [0, 0]
    goal  = [9, 0]
  }
  search "blocked" {}
  search "tight" {
    start = [0, 0]
    goal  = [1, 0]
    max_expansions = 1
  }
}
graph "bad-source" {
  matrix = [[0, 1], [1, 0]]
  source = 5
}
graph "far" {
  matrix = [[0, 2, 0], [0, 0, 0], [0, 0, 0]]
  targets = [1, 2]
  max_distance = 1
}
`
	s, err := scenario.Parse(testCtx(), []byte(src), "errs.hcl")
	require.NoError(t, err)

	rep, err := s.Run(testCtx())
	require.NoError(t, err)
	assert.True(t, rep.Failed())

	require.Len(t, rep.Searches, 3)
	assert.ErrorIs(t, rep.Searches[0].Err, astar.ErrGoalOutOfBounds)
	assert.NoError(t, rep.Searches[1].Err)
	assert.False(t, rep.Searches[1].Result.Found)
	assert.ErrorIs(t, rep.Searches[2].Err, astar.ErrExpansionLimit)

	require.Len(t, rep.Graphs, 2)
	assert.ErrorIs(t, rep.Graphs[0].Err, dijkstra.ErrSourceOutOfRange)
	require.NoError(t, rep.Graphs[1].Err)

	var out bytes.Buffer
	require.NoError(t, rep.WriteText(&out))
	text := out.String()
	assert.Contains(t, text, "search a/outside: error: ")
	assert.Contains(t, text, "search a/blocked: no path")
	assert.Contains(t, text, "graph bad-source: error: ")
	assert.Contains(t, text, "  1\tinf\n")
	assert.Contains(t, text, "  path to 1: unreachable\n")
}

// TestRun_SubUnitWeights keeps the default heuristic optimal on cells
// lighter than 1.
func TestRun_SubUnitWeights(t *testing.T) {
	src := `
grid "lane" {
  rows   = ["S....G", "cccccc"]
  legend = { "c" = 0.1 }
  search "default" {}
}
`
	s, err := scenario.Parse(testCtx(), []byte(src), "lane.hcl")
	require.NoError(t, err)

	rep, err := s.Run(testCtx())
	require.NoError(t, err)
	require.Len(t, rep.Searches, 1)
	require.NoError(t, rep.Searches[0].Err)
	assert.InDelta(t, 1.6, rep.Searches[0].Result.Cost, 1e-9)

	var out bytes.Buffer
	require.NoError(t, rep.WriteText(&out))
	assert.Contains(t, out.String(), "S....G\n******\n")
}

// TestRun_Cancelled stops before the first item.
func TestRun_Cancelled(t *testing.T) {
	s, err := scenario.Parse(testCtx(), []byte(full), "full.hcl")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(testCtx())
	cancel()
	rep, err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Empty(t, rep.Searches)
	assert.Empty(t, rep.Graphs)
}
