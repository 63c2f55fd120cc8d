package grid

import (
	"fmt"
	"math"
)

// FromPixel converts a pixel position to the coordinate of the cell that
// contains it, for square cells of cellSize pixels.
// Returns ErrBadCellSize if cellSize <= 0 and ErrOutOfBounds for
// negative or non-finite positions. The result is not checked against a
// particular grid; use InBounds for that.
func FromPixel(x, y float64, cellSize int) (Coord, error) {
	if cellSize <= 0 {
		return Coord{}, fmt.Errorf("%w: %d", ErrBadCellSize, cellSize)
	}
	if !(x >= 0) || !(y >= 0) || math.IsInf(x, 1) || math.IsInf(y, 1) {
		return Coord{}, fmt.Errorf("%w: pixel (%v,%v)", ErrOutOfBounds, x, y)
	}
	size := float64(cellSize)

	return Coord{X: int(math.Floor(x / size)), Y: int(math.Floor(y / size))}, nil
}

// Center returns the pixel position of the centre of cell c.
func Center(c Coord, cellSize int) (x, y float64) {
	half := float64(cellSize) / 2
	x = float64(c.X*cellSize) + half
	y = float64(c.Y*cellSize) + half

	return x, y
}
