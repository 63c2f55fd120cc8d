package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

// FindPathPixels runs FindPath between two pixel positions on a grid of
// square cells, cellSize pixels wide. Each position is mapped to the cell
// containing it with grid.FromPixel; use route.Pixels to turn the resulting
// path back into cell centres.
//
// Returns grid.ErrBadCellSize if cellSize <= 0, ErrStartOutOfBounds /
// ErrGoalOutOfBounds if a position falls outside the grid, and otherwise
// whatever FindPath returns.
func FindPathPixels(g *grid.Grid, start, goal route.Point, cellSize int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	s, err := grid.FromPixel(start.X, start.Y, cellSize)
	if err != nil {
		return Result{}, pixelErr(ErrStartOutOfBounds, err)
	}
	t, err := grid.FromPixel(goal.X, goal.Y, cellSize)
	if err != nil {
		return Result{}, pixelErr(ErrGoalOutOfBounds, err)
	}

	return FindPath(g, s, t, opts...)
}

// pixelErr keeps grid.ErrBadCellSize as is and maps out-of-range pixels to
// the endpoint-specific sentinel.
func pixelErr(endpoint, err error) error {
	if errors.Is(err, grid.ErrBadCellSize) {
		return err
	}

	return fmt.Errorf("%w: %w", endpoint, err)
}
