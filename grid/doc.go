// Package grid models a rectangular map of cells for grid path search.
//
// What:
//
//   - Grid wraps a [][]Cell input (deep-copied, immutable afterwards).
//   - Each Cell is walkable or not; walkable cells carry a positive traversal weight.
//   - Neighbors yields the 4-connected (N, E, S, W) coordinates inside the grid.
//   - FromPixel / Center convert between pixel positions and cells of a fixed size.
//   - Regions labels 4-connected walkable areas, so two cells can be tested
//     for mutual reachability in O(1).
//
// Why immutable:
//
//   - Search state (costs, parents, open/closed flags) never lives on the grid,
//     so any number of searches can read the same *Grid concurrently.
//
// Complexity:
//
//   - New / FromWalkable: O(W×H) time and memory.
//   - InBounds, IsWalkable, Weight, Neighbors, Index, Coordinate: O(1).
//   - Regions: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadWeight: walkable cell weight is not a positive finite number.
//   - ErrOutOfBounds: coordinate or pixel outside the grid.
//   - ErrBadCellSize: cell size is not positive.
package grid
