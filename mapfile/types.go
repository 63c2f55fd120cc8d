// Package mapfile reads and writes grid maps.
//
// Two storage formats are supported:
//
//   - Text: one line per grid row, one symbol per cell. Lines starting
//     with ';' are comments; blank lines are ignored.
//   - YAML: a document with name, cell_size, an optional legend and rows
//     written in the text symbols.
//
// Default symbols:
//
//	'.'      open cell, weight 1
//	'#'      wall
//	'1'..'9' open cell with that weight
//	'S', 'G' open cells marking the start and goal of a route
//
// Render writes a grid back as text, drawing a path over it.
package mapfile

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the map readers.
var (
	// ErrEmptyMap indicates that no grid rows were found.
	ErrEmptyMap = errors.New("mapfile: map has no rows")

	// ErrUnknownSymbol indicates a cell symbol missing from the legend.
	ErrUnknownSymbol = errors.New("mapfile: unknown map symbol")

	// ErrBadLegend indicates a malformed legend entry.
	ErrBadLegend = errors.New("mapfile: invalid legend entry")

	// ErrDuplicateMarker indicates more than one 'S' or 'G' in a map.
	ErrDuplicateMarker = errors.New("mapfile: duplicate start or goal marker")

	// ErrBadDocument indicates a YAML document that cannot be decoded.
	ErrBadDocument = errors.New("mapfile: invalid map document")
)

// Symbols used by the default legend and by Render.
const (
	SymbolOpen  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
	SymbolPath  = '*'
	SymbolOther = '~' // walkable cell whose weight has no digit
)

// DefaultCellSize is the pixel size of a cell when a map does not say.
const DefaultCellSize = 1

// Legend maps a cell symbol to the cell it stands for.
type Legend map[rune]grid.Cell

// DefaultLegend returns a fresh copy of the default symbol table.
func DefaultLegend() Legend {
	l := Legend{
		SymbolOpen:  grid.Open(),
		SymbolWall:  grid.Wall(),
		SymbolStart: grid.Open(),
		SymbolGoal:  grid.Open(),
	}
	for d := '1'; d <= '9'; d++ {
		l[d] = grid.Cell{Walkable: true, Weight: float64(d - '0')}
	}

	return l
}

// Symbol is a legend entry as written in YAML, JSON or HCL documents.
// A wall ignores Weight; a walkable symbol needs a positive Weight.
type Symbol struct {
	Wall   bool    `yaml:"wall"   json:"wall"   cty:"wall"`
	Weight float64 `yaml:"weight" json:"weight" cty:"weight"`
}

// Map is a decoded map document.
type Map struct {
	// Name identifies the map; file loaders default it to the file's base name.
	Name string

	// CellSize is the pixel width of one cell, DefaultCellSize if unset.
	CellSize int

	// Grid is the immutable cell grid.
	Grid *grid.Grid

	// Start and Goal hold the 'S' and 'G' marker positions, nil when absent.
	Start, Goal *grid.Coord

	// symbols keeps the parsed rows for (*Map).Render.
	symbols [][]rune
}
