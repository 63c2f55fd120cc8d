// Package grid defines core types and sentinel errors for the immutable
// walkability grid used by the path-search packages of gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadWeight indicates a walkable cell with a weight that is not a positive, finite number.
	ErrBadWeight = errors.New("grid: walkable cell weight must be positive and finite")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadCellSize indicates a non-positive cell size for pixel conversion.
	ErrBadCellSize = errors.New("grid: cell size must be positive")
)

// DefaultWeight is the traversal weight of a cell built without an explicit weight.
const DefaultWeight = 1.0

// Coord identifies a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell holds the static attributes of a grid cell.
// Entering a cell costs Weight. Non-walkable cells ignore Weight.
type Cell struct {
	Walkable bool
	Weight   float64
}

// Open returns a walkable cell with DefaultWeight.
func Open() Cell { return Cell{Walkable: true, Weight: DefaultWeight} }

// Wall returns a non-walkable cell.
func Wall() Cell { return Cell{} }

// Grid is an immutable, rectangular 2D array of cells stored row-major.
// Width and Height are fixed at construction; there is exactly one Cell
// per coordinate. A *Grid is safe for concurrent readers.
type Grid struct {
	width, height int
	cells         []Cell
	minWeight     float64
}

// neighborOffsets lists the 4-connected moves in N, E, S, W order.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
