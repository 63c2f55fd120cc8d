// Package dijkstra computes single-source shortest distances over a dense
// adjacency matrix with non-negative weights.
//
// What:
//
//   - ShortestDistances(adj, source) returns one distance per vertex;
//     unreachable vertices get math.Inf(1).
//   - ShortestPaths(adj, source) also keeps predecessors in a Tree, and
//     Tree.PathTo rebuilds the vertex sequence for any reached target.
//   - adj[u][v] is the weight of the edge u→v. An entry of 0 (NoEdge) means
//     there is no edge, so zero-weight edges cannot be expressed.
//
// Why a matrix:
//
//   - Small dense graphs (cost tables, waypoint meshes) are naturally written
//     as N×N tables, and the O(V²) scan beats a heap on them.
//   - For large sparse inputs install the Heap selector.
//
// Selectors:
//
//   - Linear (default): scans all vertices each round, ties to the lowest index.
//   - Heap: binary heap with lazy decrease-key, ties to the lowest index.
//   - Any constructor of a Selector can be plugged in with WithSelector.
//
// Complexity:
//
//   - Validation: O(V²).
//   - Linear: O(V²) time, O(V) memory.
//   - Heap:   O(V² + E log V) time, O(V + E) memory.
//
// Errors:
//
//   - ErrEmptyMatrix, ErrNonSquare: bad matrix shape.
//   - ErrInvalidWeight, ErrNegativeWeight: bad entry, wrapped with its position.
//   - ErrSourceOutOfRange: source is not a vertex index.
//   - ErrBadMaxDistance, ErrNilSelector: invalid option (panic).
//
// Thread safety:
//
//   - The matrix is only read and every run builds its own Selector, so
//     concurrent calls may share both the matrix and the options.
package dijkstra
