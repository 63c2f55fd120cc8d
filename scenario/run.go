package scenario

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// Report collects the outcome of one Run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string

	Searches []SearchReport
	Graphs   []GraphReport
}

// SearchReport is the outcome of one search block.
type SearchReport struct {
	Grid   *Grid
	Search *Search
	Result astar.Result
	Err    error
}

// GraphReport is the outcome of one graph block.
type GraphReport struct {
	Graph *Graph
	Tree  dijkstra.Tree
	Err   error
}

// Failed reports whether any search or graph ended with an error.
func (r *Report) Failed() bool {
	for _, s := range r.Searches {
		if s.Err != nil {
			return true
		}
	}
	for _, g := range r.Graphs {
		if g.Err != nil {
			return true
		}
	}

	return false
}

// Run executes every search and graph of s in declaration order. A failing
// item is recorded in the report and the run continues; only a done
// context stops it early, in which case the partial report is returned
// together with ctx.Err().
func (s *Scenario) Run(ctx context.Context) (*Report, error) {
	rep := &Report{RunID: uuid.NewString()}
	logger := ctxlog.FromContext(ctx).With("run_id", rep.RunID)
	logger.Info("Scenario run started.", "path", s.Path, "grids", len(s.Grids), "graphs", len(s.Graphs))
	began := time.Now()

	for _, g := range s.Grids {
		for _, search := range g.Searches {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			res, err := runSearch(ctx, g, search)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return rep, err
			}
			rep.Searches = append(rep.Searches, SearchReport{Grid: g, Search: search, Result: res, Err: err})
			logger.Debug("Search finished.",
				"grid", g.Name,
				"search", search.Name,
				"found", res.Found,
				"cost", res.Cost,
				"expanded", res.Expanded,
				"error", err,
			)
		}
	}

	for _, g := range s.Graphs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		tree, err := runGraph(g)
		rep.Graphs = append(rep.Graphs, GraphReport{Graph: g, Tree: tree, Err: err})
		logger.Debug("Graph finished.", "graph", g.Name, "vertices", len(g.Matrix), "error", err)
	}

	logger.Info("Scenario run finished.", "duration", time.Since(began), "failed", rep.Failed())

	return rep, nil
}

// runSearch maps a Search onto astar options and runs it.
func runSearch(ctx context.Context, g *Grid, s *Search) (astar.Result, error) {
	gr := g.Map.Grid
	h, err := astar.ParseHeuristic(s.Heuristic, gr.MinWeight())
	if err != nil {
		return astar.Result{}, err
	}
	opts := []astar.Option{astar.WithContext(ctx), astar.WithHeuristic(h)}
	if s.ExcludeStart {
		opts = append(opts, astar.WithExcludeStart())
	}
	if s.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(s.MaxExpansions))
	}

	if s.Pixels {
		return astar.FindPathPixels(gr, s.PixelStart, s.PixelGoal, g.Map.CellSize, opts...)
	}

	return astar.FindPath(gr, s.Start, s.Goal, opts...)
}

// runGraph maps a Graph onto dijkstra options and runs it.
func runGraph(g *Graph) (dijkstra.Tree, error) {
	sel, err := dijkstra.ParseSelector(g.Selector)
	if err != nil {
		return dijkstra.Tree{}, err
	}
	opts := []dijkstra.Option{dijkstra.WithSelector(sel)}
	if g.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*g.MaxDistance))
	}

	return dijkstra.ShortestPaths(g.Matrix, g.Source, opts...)
}
