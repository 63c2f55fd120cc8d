// Package grid provides an immutable 2D walkability grid with per-cell
// traversal weights. It supports:
//
//   - Four-directional neighbour lookup (N, E, S, W)
//   - Row-major index ↔ coordinate mapping
//   - Pixel ↔ cell conversion for a given cell size
//   - Labelling of 4-connected walkable regions
package grid

import (
	"fmt"
	"math"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// cells[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadWeight
// (wrapped with the offending coordinate) if a walkable cell carries a
// weight that is zero, negative, NaN or infinite.
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		width:     w,
		height:    h,
		cells:     make([]Cell, 0, w*h),
		minWeight: math.Inf(1),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y][x]
			if c.Walkable {
				if !(c.Weight > 0) || math.IsInf(c.Weight, 0) {
					return nil, fmt.Errorf("%w: cell (%d,%d) weight=%v", ErrBadWeight, x, y, c.Weight)
				}
				g.minWeight = math.Min(g.minWeight, c.Weight)
			}
			g.cells = append(g.cells, c)
		}
	}
	if math.IsInf(g.minWeight, 1) {
		g.minWeight = 0
	}

	return g, nil
}

// FromWalkable builds a Grid of unit-weight cells from a walkability mask
// indexed mask[y][x]. Same validation as New.
func FromWalkable(mask [][]bool) (*Grid, error) {
	cells := make([][]Cell, len(mask))
	for y, row := range mask {
		cells[y] = make([]Cell, len(row))
		for x, ok := range row {
			if ok {
				cells[y][x] = Open()
			}
		}
	}

	return New(cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells (Width×Height).
func (g *Grid) Len() int { return len(g.cells) }

// MinWeight returns the smallest weight among walkable cells,
// or 0 if the grid has no walkable cell.
func (g *Grid) MinWeight() float64 { return g.minWeight }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns the cell at c, or ErrOutOfBounds.
func (g *Grid) Cell(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}

	return g.cells[g.Index(c)], nil
}

// IsWalkable reports whether c is inside the grid and walkable.
func (g *Grid) IsWalkable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)].Walkable
}

// Weight returns the traversal weight of c. It returns +Inf for
// coordinates that are out of bounds or not walkable.
func (g *Grid) Weight(c Coord) float64 {
	if !g.IsWalkable(c) {
		return math.Inf(1)
	}

	return g.cells[g.Index(c)].Weight
}

// Neighbors returns up to four coordinates sharing an edge with c, in
// N, E, S, W order. Coordinates outside the grid are omitted; walkability
// is not filtered here.
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.AppendNeighbors(make([]Coord, 0, len(neighborOffsets)), c)
}

// AppendNeighbors appends the in-bounds neighbours of c to dst and returns
// the extended slice. Hot loops pass dst[:0] to avoid allocations.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Index maps c to its row-major index: Y*Width + X.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}
