// Package astar finds least-cost routes between two cells of a grid.Grid.
//
// Overview:
//
//   - Movement is 4-connected (N, E, S, W); entering a walkable cell costs its weight.
//   - Cells are expanded in order of f = g + h. With the default Manhattan
//     heuristic and weights ≥ 1 the returned path is optimal.
//   - Ties on f are broken by insertion order, so equal inputs give equal
//     outputs, run after run.
//   - "No path" is a result (Result.Found == false), never an error.
//
// When to use:
//
//   - Tile maps, level editors and game AI that move an agent between two tiles.
//   - Pixel-space callers can use FindPathPixels with the tile size, then
//     route.Pixels to get back cell centres.
//   - For many queries that often fail, compute grid.Regions once and pass
//     WithRegions to answer cross-island queries without searching.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = cells reachable from start.
//   - Space: O(N) per call; nothing is written to the grid.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrRegionsMismatch:
//     invalid input, reported before any expansion.
//   - ErrExpansionLimit: WithMaxExpansions bound reached.
//   - context errors: returned unwrapped when the WithContext context is done.
//   - grid.ErrBadCellSize: FindPathPixels with cellSize ≤ 0.
//
// Thread safety:
//
//   - A *grid.Grid is immutable, so any number of goroutines may call
//     FindPath on the same grid at once.
//
// See also:
//
//   - frontier.Queue: the indexed priority queue driving the search.
//   - route.Walk: parent-chain reconstruction shared with the dijkstra package.
package astar
