// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense
// adjacency matrix with non-negative weights.
//
// Each round finalises the unvisited vertex with the smallest finite
// tentative distance and relaxes its outgoing edges to the vertices that are
// still unvisited. At most N-1 rounds run; the loop ends early as soon as
// every remaining vertex is unreachable.
//
// Complexity:
//
//   - Time:  O(V²) with Linear (V scans of V entries) plus O(V²) relaxation reads.
//   - Time:  O(V² + E log V) with Heap; the matrix scan still dominates on dense input.
//   - Space: O(V) for dist, prev and visited; Heap adds O(E) lazy entries.
//
// Notes on implementation choices:
//
//   - The whole matrix is validated up front (O(V²)) so a bad entry fails
//     fast before any distance is computed.
//   - A zero entry means "no edge"; the matrix cannot express zero-weight edges.
//   - Relaxation skips visited vertices, so the source is never relaxed into.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/route"
)

// ShortestDistances computes the shortest distance from source to every
// vertex of the graph described by adj.
//
// Returns:
//
//   - dist: dist[v] is the minimum total weight from source to v,
//     math.Inf(1) if v is unreachable (or beyond MaxDistance). dist[source] == 0.
//   - err:  a sentinel error if the input is invalid.
//
// Preconditions and validation (in order):
//  1. adj must have at least one row (ErrEmptyMatrix).
//  2. every row must have len(adj) entries (ErrNonSquare).
//  3. every entry must be finite (ErrInvalidWeight) and ≥ 0 (ErrNegativeWeight).
//  4. source must be in 0..len(adj)-1 (ErrSourceOutOfRange).
func ShortestDistances(adj [][]float64, source int, opts ...Option) ([]float64, error) {
	t, err := ShortestPaths(adj, source, opts...)
	if err != nil {
		return nil, err
	}

	return t.Dist, nil
}

// ShortestPaths is ShortestDistances plus a predecessor for every reached
// vertex, packed as a Tree. Use Tree.PathTo to rebuild individual paths.
func ShortestPaths(adj [][]float64, source int, opts ...Option) (Tree, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix and the source
	if err := validate(adj); err != nil {
		return Tree{}, err
	}
	if source < 0 || source >= len(adj) {
		return Tree{}, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, len(adj))
	}

	// 3) Run
	r := newRunner(adj, source, cfg)
	r.process()

	return Tree{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// validate checks shape and entries of adj.
func validate(adj [][]float64) error {
	n := len(adj)
	if n == 0 {
		return ErrEmptyMatrix
	}
	for u, row := range adj {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, u, len(row), n)
		}
		for v, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: adj[%d][%d]=%v", ErrInvalidWeight, u, v, w)
			}
			if w < 0 {
				return fmt.Errorf("%w: adj[%d][%d]=%v", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     [][]float64 // input matrix; read-only
	opts    Options     // resolved options
	sel     Selector    // this run's vertex picker
	dist    []float64   // vertex → current best distance from source
	prev    []int       // vertex → predecessor, -1 for none
	visited []bool      // vertex → distance finalised
}

// newRunner initialises dist to +Inf, prev to -1, builds the run's selector
// and seeds the source.
func newRunner(adj [][]float64, source int, opts Options) *runner {
	n := len(adj)
	r := &runner{
		adj:     adj,
		opts:    opts,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	r.dist[source] = 0

	r.sel = opts.Selector()
	if r.sel == nil {
		panic(ErrNilSelector.Error())
	}
	r.sel.Reset(n)
	r.sel.Update(source, 0)

	return r
}

// process runs up to N-1 selection rounds.
//
// Loop termination conditions:
//
//   - N-1 vertices have been finalised (the last one needs no relaxation).
//   - No unvisited vertex has a finite distance.
//   - The next vertex lies beyond MaxDistance.
func (r *runner) process() {
	n := len(r.adj)
	for round := 0; round < n-1; round++ {
		// 1) Pick the closest unvisited vertex.
		u, ok := r.sel.Next(r.dist, r.visited)
		if !ok {
			break
		}
		if r.dist[u] > r.opts.MaxDistance {
			break
		}

		// 2) Finalise it.
		r.visited[u] = true

		// 3) Relax edges u→v towards unvisited vertices.
		for v, w := range r.adj[u] {
			if r.visited[v] || w == NoEdge {
				continue
			}
			if nd := r.dist[u] + w; nd < r.dist[v] {
				r.dist[v] = nd
				r.prev[v] = u
				r.sel.Update(v, nd)
			}
		}
	}

	r.trim()
}

// trim resets tentative distances that exceed MaxDistance, so every finite
// entry in the result is within the cap.
func (r *runner) trim() {
	if math.IsInf(r.opts.MaxDistance, 1) {
		return
	}
	for v, d := range r.dist {
		if d > r.opts.MaxDistance {
			r.dist[v] = math.Inf(1)
			r.prev[v] = -1
		}
	}
}

// Reachable reports whether target has a finite distance in t.
func (t Tree) Reachable(target int) bool {
	return target >= 0 && target < len(t.Dist) && !math.IsInf(t.Dist[target], 1)
}

// PathTo returns the vertex sequence from t.Source to target, both
// inclusive. The second result is false if target is out of range or
// unreachable.
func (t Tree) PathTo(target int) ([]int, bool) {
	if !t.Reachable(target) {
		return nil, false
	}
	parent := func(v int) (int, bool) {
		p := t.Prev[v]
		return p, p >= 0
	}

	return route.Walk(target, t.Source, parent, true), true
}
