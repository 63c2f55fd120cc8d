package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestFromPixel(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		size int
		want grid.Coord
	}{
		{"Origin", 0, 0, 32, grid.Coord{}},
		{"InsideFirstCell", 31.9, 5, 32, grid.Coord{}},
		{"CellBoundary", 32, 64, 32, grid.Coord{X: 1, Y: 2}},
		{"UnitCells", 4.5, 7.2, 1, grid.Coord{X: 4, Y: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := grid.FromPixel(tc.x, tc.y, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromPixel_Errors(t *testing.T) {
	_, err := grid.FromPixel(1, 1, 0)
	require.ErrorIs(t, err, grid.ErrBadCellSize)

	_, err = grid.FromPixel(-1, 1, 16)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = grid.FromPixel(math.NaN(), 1, 16)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = grid.FromPixel(1, math.Inf(1), 16)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestCenter(t *testing.T) {
	x, y := grid.Center(grid.Coord{X: 2, Y: 1}, 32)
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 48.0, y)

	// A centre always maps back to its own cell.
	c, err := grid.FromPixel(x, y, 32)
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{X: 2, Y: 1}, c)
}
