// Package route turns parent back-pointers into ordered paths and provides
// checks and measurements for grid paths.
//
// Walk is generic over the node key, so the same reconstruction serves the
// grid search (keys are grid.Coord) and the matrix shortest-path tree
// (keys are vertex indices).
package route

import (
	"github.com/katalvlaran/gridpath/grid"
)

// ParentFunc returns the predecessor of k on the best known path and
// whether k has one.
type ParentFunc[K comparable] func(k K) (K, bool)

// Walk rebuilds the path that ends at goal by following parent from goal
// back towards start. The walk stops at start or at the first node without
// a parent. The result reads from the node after start to goal; when
// includeStart is true and the walk reached start, start is prepended.
//
// When goal == start the result is [start] if includeStart, otherwise empty.
//
// Complexity: O(L) time and memory, L = path length.
func Walk[K comparable](goal, start K, parent ParentFunc[K], includeStart bool) []K {
	var rev []K
	reached := false
	for at := goal; ; {
		if at == start {
			reached = true
			break
		}
		rev = append(rev, at)
		p, ok := parent(at)
		if !ok {
			break
		}
		at = p
	}
	if includeStart && reached {
		rev = append(rev, start)
	}

	// reverse in place
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	if rev == nil {
		return []K{}
	}

	return rev
}

// FromMap adapts a predecessor map to a ParentFunc.
func FromMap[K comparable](prev map[K]K) ParentFunc[K] {
	return func(k K) (K, bool) {
		p, ok := prev[k]
		return p, ok
	}
}

// Steps returns the number of moves in p (len(p)-1, never negative).
func Steps(p []grid.Coord) int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Contiguous reports whether every pair of consecutive coordinates differs
// by exactly one unit along exactly one axis.
func Contiguous(p []grid.Coord) bool {
	for i := 1; i < len(p); i++ {
		dx := abs(p[i].X - p[i-1].X)
		dy := abs(p[i].Y - p[i-1].Y)
		if dx+dy != 1 {
			return false
		}
	}

	return true
}

// Walkable reports whether every coordinate of p is a walkable cell of g.
func Walkable(g *grid.Grid, p []grid.Coord) bool {
	for _, c := range p {
		if !g.IsWalkable(c) {
			return false
		}
	}

	return true
}

// Cost returns the traversal cost of p on g: the sum of the weights of
// every cell entered after the first one. A path through a wall or off the
// grid costs +Inf.
func Cost(g *grid.Grid, p []grid.Coord) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += g.Weight(p[i])
	}

	return total
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Pixels maps each coordinate of p to the pixel centre of its cell.
func Pixels(p []grid.Coord, cellSize int) []Point {
	out := make([]Point, len(p))
	for i, c := range p {
		out[i].X, out[i].Y = grid.Center(c, cellSize)
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
