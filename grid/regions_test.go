package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestRegions_ThreeIslands labels three separated walkable areas.
//
//	. . # . .
//	. # # . .
//	# # . # #
func TestRegions_ThreeIslands(t *testing.T) {
	g, err := grid.FromWalkable([][]bool{
		{true, true, false, true, true},
		{true, false, false, true, true},
		{false, false, true, false, false},
	})
	require.NoError(t, err)

	r := g.Regions()
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, 0, r.Label(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, 1, r.Label(grid.Coord{X: 3, Y: 0}))
	assert.Equal(t, 2, r.Label(grid.Coord{X: 2, Y: 2}))
	assert.Equal(t, grid.NoRegion, r.Label(grid.Coord{X: 2, Y: 0}))
	assert.Equal(t, grid.NoRegion, r.Label(grid.Coord{X: 9, Y: 9}))

	assert.True(t, r.Connected(grid.Coord{X: 0, Y: 1}, grid.Coord{X: 1, Y: 0}))
	assert.False(t, r.Connected(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 1}))
	assert.False(t, r.Connected(grid.Coord{X: 2, Y: 0}, grid.Coord{X: 2, Y: 0}))
	assert.Same(t, g, r.Grid())
}

// TestRegions_DiagonalNotConnected checks that corner contact does not join regions.
func TestRegions_DiagonalNotConnected(t *testing.T) {
	g, err := grid.FromWalkable([][]bool{
		{true, false},
		{false, true},
	})
	require.NoError(t, err)

	r := g.Regions()
	assert.Equal(t, 2, r.Count())
	assert.False(t, r.Connected(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 1}))
}
