// Package astar defines core types, heuristics and configuration options
// for A* search over a grid.Grid.
//
// Options:
//
//	– Ctx:           cancellation, polled once per frontier extraction.
//	– Heuristic:     goal-distance estimate h(n, goal); Manhattan by default.
//	– OnExpand:      hook called for every closed cell; an error aborts the search.
//	– MaxExpansions: cap on closed cells (0 = unlimited).
//	– ExcludeStart:  drop the start cell from Result.Path.
//	– Regions:       precomputed grid.Regions for an O(1) reachability pre-check.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the grid pointer is nil.
//	– ErrStartOutOfBounds  if start lies outside the grid.
//	– ErrGoalOutOfBounds   if goal lies outside the grid.
//	– ErrRegionsMismatch   if Regions were computed for another grid.
//	– ErrExpansionLimit    if MaxExpansions cells were closed without reaching the goal.
//	– ErrBadMaxExpansions  if MaxExpansions < 0 (raised by panic in the option).
//	– ErrNilHeuristic      if a nil heuristic is installed (raised by panic in the option).
//	– ErrUnknownHeuristic  if ParseHeuristic gets a name it does not know.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate is not inside the grid.
	ErrStartOutOfBounds = errors.New("astar: start out of bounds")

	// ErrGoalOutOfBounds indicates that the goal coordinate is not inside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal out of bounds")

	// ErrRegionsMismatch indicates that the Regions option belongs to a different grid.
	ErrRegionsMismatch = errors.New("astar: regions computed for a different grid")

	// ErrExpansionLimit indicates that MaxExpansions was reached before the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative MaxExpansions.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")

	// ErrNilHeuristic indicates a nil heuristic function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnknownHeuristic indicates a heuristic name ParseHeuristic does not know.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// state is the per-search status of a cell.
type state uint8

const (
	stateUnvisited state = iota // never discovered
	stateOpen                   // discovered, queued in the frontier
	stateClosed                 // expanded; its g is final
)

// String returns a readable state name.
func (s state) String() string {
	switch s {
	case stateUnvisited:
		return "Unvisited"
	case stateOpen:
		return "Open"
	case stateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Heuristic estimates the remaining cost from a cell to the goal.
// For optimal results it must never overestimate the true remaining cost.
type Heuristic func(from, goal grid.Coord) float64

// Manhattan returns |Δx| + |Δy|. It is admissible and consistent for
// 4-connected movement when every walkable weight is at least 1.
func Manhattan(from, goal grid.Coord) float64 {
	return float64(absInt(from.X-goal.X) + absInt(from.Y-goal.Y))
}

// ScaledManhattan returns Manhattan distance multiplied by minWeight.
// Passing grid.MinWeight() keeps the estimate admissible on grids whose
// cheapest cells weigh less than 1.
func ScaledManhattan(minWeight float64) Heuristic {
	return func(from, goal grid.Coord) float64 {
		return minWeight * Manhattan(from, goal)
	}
}

// Zero always returns 0, degrading A* to uniform-cost search.
func Zero(grid.Coord, grid.Coord) float64 { return 0 }

// Heuristic names understood by ParseHeuristic.
const (
	HeuristicAuto      = "auto"
	HeuristicManhattan = "manhattan"
	HeuristicScaled    = "scaled"
	HeuristicZero      = "zero"
)

// ParseHeuristic returns the heuristic called name for a grid whose
// cheapest walkable cell weighs minWeight. "scaled" is
// ScaledManhattan(minWeight). The empty name and "auto" pick Manhattan,
// or ScaledManhattan when minWeight < 1, where plain Manhattan would
// overestimate and lose optimality. "manhattan" is always plain Manhattan.
func ParseHeuristic(name string, minWeight float64) (Heuristic, error) {
	switch name {
	case "", HeuristicAuto:
		if minWeight < 1 {
			return ScaledManhattan(minWeight), nil
		}
		return Manhattan, nil
	case HeuristicManhattan:
		return Manhattan, nil
	case HeuristicScaled:
		return ScaledManhattan(minWeight), nil
	case HeuristicZero:
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// Result captures the outcome of a search.
type Result struct {
	// Path lists the route from start to goal (start omitted with ExcludeStart).
	// Nil when Found is false.
	Path []grid.Coord

	// Cost is the sum of the weights of every cell entered along Path.
	Cost float64

	// Expanded counts cells that were closed (popped from the frontier).
	Expanded int

	// Found reports whether the goal was reached.
	Found bool
}

// Options configures the behaviour of FindPath.
type Options struct {
	Ctx           context.Context        // cancellation; Background by default
	Heuristic     Heuristic              // h(n, goal); Manhattan by default
	OnExpand      func(grid.Coord) error // called after a cell is closed
	MaxExpansions int                    // 0 means unlimited
	ExcludeStart  bool                   // omit start from Result.Path
	Regions       *grid.Regions          // optional reachability pre-check
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Background context
//   - Manhattan heuristic
//   - No expansion hook, no expansion limit
//   - Both path endpoints included
//   - No region pre-check
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     Manhattan,
		OnExpand:      nil,
		MaxExpansions: 0,
		ExcludeStart:  false,
		Regions:       nil,
	}
}

// WithContext sets the context polled once per frontier extraction.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic installs h as the goal-distance estimate.
// Panics with ErrNilHeuristic if h is nil.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithOnExpand installs fn as a hook invoked for every closed cell,
// including the goal. Returning an error aborts the search with that error.
func WithOnExpand(fn func(grid.Coord) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxExpansions bounds the number of closed cells. Reaching the bound
// without closing the goal yields ErrExpansionLimit. Zero means unlimited.
// Panics with ErrBadMaxExpansions if n is negative.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithExcludeStart drops the start cell from Result.Path, so the path reads
// start-adjacent → goal.
func WithExcludeStart() Option {
	return func(o *Options) {
		o.ExcludeStart = true
	}
}

// WithRegions enables an O(1) pre-check: when start is walkable and lies in
// a different region than goal, FindPath returns not-found without
// expanding anything. r must be computed for the searched grid.
func WithRegions(r *grid.Regions) Option {
	return func(o *Options) {
		o.Regions = r
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
