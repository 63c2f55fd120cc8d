// Package scenario loads and runs HCL files that describe path-finding jobs.
//
// A scenario file holds any number of grid and graph blocks:
//
//	grid "meadow" {
//	  cell_size = 32
//	  rows = [
//	    "S..~",
//	    ".#.G",
//	  ]
//	  legend = {
//	    "~" = 3              # walkable, weight 3
//	    "T" = wall           # wall
//	    "w" = { weight = 2 } # long form
//	  }
//
//	  search "markers" {}    # start and goal taken from S and G
//
//	  search "pixels" {
//	    pixels    = true
//	    start     = [10, 10]
//	    goal      = [100, 40]
//	    heuristic = "zero"
//	  }
//	}
//
//	grid "cave" {
//	  file = "maps/cave.yaml" # text or YAML map, relative to the scenario
//	  search "exit" {
//	    start = [0, 0]
//	    goal  = [7, 3]
//	  }
//	}
//
//	graph "roads" {
//	  matrix = [
//	    [0, 4, 1],
//	    [4, 0, 2],
//	    [1, 2, 0],
//	  ]
//	  source   = 0
//	  selector = "heap"
//	  targets  = [1]
//	}
//
// Load validates everything up front; Run executes every search and graph
// and collects the outcomes in a Report.
package scenario

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/route"
)

// Sentinel errors returned while loading a scenario.
var (
	// ErrEmptyScenario indicates a file without grid or graph blocks.
	ErrEmptyScenario = errors.New("scenario: no grid or graph blocks")

	// ErrInvalidScenario indicates a block that decoded but makes no sense.
	ErrInvalidScenario = errors.New("scenario: invalid block")
)

// Scenario is a validated scenario file.
type Scenario struct {
	// Path is the file the scenario was read from.
	Path string

	Grids  []*Grid
	Graphs []*Graph
}

// Grid is a map plus the searches to run on it.
type Grid struct {
	Name     string
	Map      *mapfile.Map
	Searches []*Search
}

// Search is one A* query.
type Search struct {
	Name string

	// Start and Goal are cell coordinates; used when Pixels is false.
	Start, Goal grid.Coord

	// PixelStart and PixelGoal are pixel positions; used when Pixels is true.
	PixelStart, PixelGoal route.Point
	Pixels                bool

	Heuristic     string // astar.ParseHeuristic name
	ExcludeStart  bool
	MaxExpansions int
}

// Graph is one Dijkstra query over an adjacency matrix.
type Graph struct {
	Name        string
	Matrix      [][]float64
	Source      int
	Selector    string // dijkstra.ParseSelector name
	Targets     []int
	MaxDistance *float64
}
