// Package astar implements A* best-first search on a grid.Grid.
//
// FindPath expands cells in order of f = g + h, where g is the accumulated
// weight of the cells entered so far and h is a goal-distance estimate
// (Manhattan by default), until the goal is closed or the frontier empties.
//
// Complexity:
//
//   - Time:  O(N log N) where N = cells reachable from start.
//   - Each cell is closed at most once (N extractions).
//   - Each cell is inserted once and decreased at most 4 times (≤ 4N heap fixes).
//   - Space: O(N) for the per-search scratch overlay and the frontier.
//
// Notes on implementation choices:
//
//   - Search state lives in a per-call overlay keyed by row-major index, never
//     on the grid, so concurrent searches over one *grid.Grid are safe.
//   - The frontier is indexed: an open cell reached more cheaply has its
//     priority decreased in place instead of being skipped or duplicated.
//   - Closed cells are never re-opened.
package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

// FindPath searches for a least-cost 4-connected path from start to goal.
// Entering a cell costs its weight; walls are never entered.
//
// Returns:
//
//   - Result.Found == false with a nil error when the goal is unreachable.
//     This is a normal outcome, not a failure.
//   - Result.Path from start to goal (both inclusive unless WithExcludeStart).
//   - err if inputs are invalid, the context is done, the OnExpand hook fails,
//     or MaxExpansions is reached.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be inside g (ErrStartOutOfBounds).
//  3. goal must be inside g (ErrGoalOutOfBounds).
//  4. Regions, if set, must belong to g (ErrRegionsMismatch).
//
// The start cell is the origin and need not be walkable.
func FindPath(g *grid.Grid, start, goal grid.Coord, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any search work
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %s in %dx%d grid", ErrStartOutOfBounds, start, g.Width(), g.Height())
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %s in %dx%d grid", ErrGoalOutOfBounds, goal, g.Width(), g.Height())
	}
	if cfg.Regions != nil && cfg.Regions.Grid() != g {
		return Result{}, ErrRegionsMismatch
	}

	// 3) Cheap negative answers
	if start != goal {
		if !g.IsWalkable(goal) {
			return Result{}, nil
		}
		if cfg.Regions != nil && g.IsWalkable(start) && !cfg.Regions.Connected(start, goal) {
			return Result{}, nil
		}
	}

	r := newRunner(g, cfg, start, goal)

	return r.run()
}

// record is the scratch state of one cell for one search.
type record struct {
	g      float64 // accumulated cost from start
	h      float64 // heuristic estimate to goal
	parent int     // row-major index of the predecessor, -1 for none
	state  state   // Unvisited → Open → Closed
}

// f returns the frontier priority g + h.
func (rec *record) f() float64 { return rec.g + rec.h }

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid           // searched grid, read-only
	opts     Options              // resolved options
	start    grid.Coord           // origin
	goal     grid.Coord           // target
	goalIdx  int                  // row-major index of goal
	scratch  map[int]*record      // overlay: row-major index → record
	open     *frontier.Queue[int] // frontier keyed by row-major index
	buf      []grid.Coord         // reused neighbour buffer
	expanded int                  // closed cells so far
}

// newRunner seeds the overlay and the frontier with the start cell.
func newRunner(g *grid.Grid, opts Options, start, goal grid.Coord) *runner {
	r := &runner{
		g:       g,
		opts:    opts,
		start:   start,
		goal:    goal,
		goalIdx: g.Index(goal),
		scratch: make(map[int]*record),
		open:    frontier.New[int](64),
		buf:     make([]grid.Coord, 0, 4),
	}

	s := &record{
		g:      0,
		h:      opts.Heuristic(start, goal),
		parent: -1,
		state:  stateOpen,
	}
	idx := g.Index(start)
	r.scratch[idx] = s
	r.open.Insert(idx, s.f())

	return r
}

// run is the main loop: extract the cheapest open cell, close it, stop on
// the goal, otherwise relax its neighbours.
func (r *runner) run() (Result, error) {
	for r.open.Len() > 0 {
		// 1) Honour cancellation once per extraction.
		if err := r.opts.Ctx.Err(); err != nil {
			return Result{Expanded: r.expanded}, err
		}

		// 2) Pop the cheapest cell and close it.
		idx, _, ok := r.open.ExtractMin()
		if !ok {
			panic("astar: frontier empty after non-zero Len")
		}
		cur := r.scratch[idx]
		cur.state = stateClosed
		r.expanded++

		c := r.g.Coordinate(idx)
		if r.opts.OnExpand != nil {
			if err := r.opts.OnExpand(c); err != nil {
				return Result{Expanded: r.expanded}, err
			}
		}

		// 3) Goal closed: its g is optimal.
		if idx == r.goalIdx {
			return r.result(cur), nil
		}

		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w: %d cells closed", ErrExpansionLimit, r.expanded)
		}

		// 4) Relax walkable, non-closed neighbours.
		r.relax(idx, c, cur)
	}

	// Frontier exhausted: goal unreachable.
	return Result{Expanded: r.expanded}, nil
}

// relax examines each neighbour n of the closed cell c and improves n when
// reaching it through c is strictly cheaper than what is recorded.
func (r *runner) relax(idx int, c grid.Coord, cur *record) {
	r.buf = r.g.AppendNeighbors(r.buf[:0], c)
	for _, n := range r.buf {
		if !r.g.IsWalkable(n) {
			continue
		}
		ni := r.g.Index(n)
		rec, seen := r.scratch[ni]
		if seen && rec.state == stateClosed {
			continue
		}

		tentative := cur.g + r.g.Weight(n)
		if !seen {
			rec = &record{parent: -1, state: stateUnvisited}
			r.scratch[ni] = rec
		}
		if rec.state == stateOpen && tentative >= rec.g {
			continue
		}

		wasOpen := rec.state == stateOpen
		rec.g = tentative
		rec.h = r.opts.Heuristic(n, r.goal)
		rec.parent = idx
		rec.state = stateOpen

		if !wasOpen {
			r.open.Insert(ni, rec.f())
			continue
		}
		// h is fixed per cell for a given goal, so f strictly decreased.
		if err := r.open.DecreaseCost(ni, rec.f()); err != nil {
			panic(fmt.Sprintf("astar: frontier out of sync at %s: %v", n, err))
		}
	}
}

// result reconstructs the path from the parent chain of the goal record.
func (r *runner) result(goal *record) Result {
	parent := func(c grid.Coord) (grid.Coord, bool) {
		rec, ok := r.scratch[r.g.Index(c)]
		if !ok || rec.parent < 0 {
			return grid.Coord{}, false
		}
		return r.g.Coordinate(rec.parent), true
	}

	return Result{
		Path:     route.Walk(r.goal, r.start, parent, !r.opts.ExcludeStart),
		Cost:     goal.g,
		Expanded: r.expanded,
		Found:    true,
	}
}
