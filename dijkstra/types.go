// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on dense adjacency matrices.
//
// The input is a square [][]float64 where adj[u][v] is the weight of the
// edge u→v and 0 means "no edge". Vertices are the indices 0..N-1.
//
// Complexity:
//
//	– Time:  O(V²) with the Linear selector, O((V + E) log V) with Heap,
//	         plus the O(V²) matrix scan both need to read the input.
//	– Space: O(V) for distances, visited flags and predecessors.
//
// Options:
//
//	– Selector:    strategy that picks the next vertex to finalise.
//	– MaxDistance: vertices farther than this are left unreached (+Inf).
//
// Errors (sentinel):
//
//	– ErrEmptyMatrix      if the matrix has no rows.
//	– ErrNonSquare        if some row length differs from the row count.
//	– ErrSourceOutOfRange if the source index is not a vertex.
//	– ErrNegativeWeight   if an entry is negative.
//	– ErrInvalidWeight    if an entry is NaN or ±Inf.
//	– ErrBadMaxDistance   if MaxDistance < 0 (raised by panic in the option).
//	– ErrNilSelector      if a nil selector constructor is installed (raised by panic in the option)
//	                      or the constructor returns nil (raised by panic in the run).
//	– ErrUnknownSelector  if ParseSelector gets a name it does not know.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptyMatrix indicates that the adjacency matrix has no vertices.
	ErrEmptyMatrix = errors.New("dijkstra: adjacency matrix is empty")

	// ErrNonSquare indicates that the adjacency matrix is not N×N.
	ErrNonSquare = errors.New("dijkstra: adjacency matrix is not square")

	// ErrSourceOutOfRange indicates that the source index is not in 0..N-1.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("dijkstra: edge weight is NaN or Inf")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilSelector indicates a nil Selector.
	ErrNilSelector = errors.New("dijkstra: selector is nil")

	// ErrUnknownSelector indicates a selector name ParseSelector does not know.
	ErrUnknownSelector = errors.New("dijkstra: unknown selector")
)

// NoEdge is the matrix entry that denotes the absence of an edge.
// As a consequence, true zero-weight edges cannot be represented.
const NoEdge = 0.0

// Options configures the behaviour of ShortestDistances and ShortestPaths.
//
// Selector    – builds the minimum-selection strategy, once per run. Default Linear.
// MaxDistance – cap on finalised distances. Must be ≥ 0. Default +Inf (no cap).
type Options struct {
	Selector    func() Selector // builds the per-run vertex picker
	MaxDistance float64         // vertices beyond this distance stay unreached
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithSelector installs the minimum-selection strategy. newSelector is
// called once per run, so one option value may be shared by concurrent
// calls, e.g. WithSelector(Heap).
// Panics with ErrNilSelector if newSelector is nil.
func WithSelector(newSelector func() Selector) Option {
	return func(o *Options) {
		if newSelector == nil {
			panic(ErrNilSelector.Error())
		}
		o.Selector = newSelector
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max keep +Inf.
// Panics with ErrBadMaxDistance if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if !(max >= 0) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialised with:
//   - Selector:    Linear (O(V) scan per round, suited to small dense graphs).
//   - MaxDistance: +Inf (explore all reachable vertices).
func DefaultOptions() Options {
	return Options{
		Selector:    Linear,
		MaxDistance: math.Inf(1),
	}
}

// Tree is a single-source shortest-path tree over matrix vertices.
type Tree struct {
	// Source is the root vertex.
	Source int

	// Dist[v] is the shortest distance from Source to v, +Inf if unreachable.
	Dist []float64

	// Prev[v] is the predecessor of v on one shortest path, -1 for the
	// source and for unreachable vertices.
	Prev []int
}
