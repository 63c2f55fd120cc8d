package server

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/route"
)

// PathRequest is the body of POST /v1/paths.
// Start and Goal are [x, y] cells, or pixel positions when Pixels is set.
// Cell endpoints may be omitted when the rows carry 'S' and 'G' markers.
type PathRequest struct {
	Rows          []string                  `json:"rows" binding:"required,min=1"`
	Legend        map[string]mapfile.Symbol `json:"legend"`
	CellSize      int                       `json:"cell_size" binding:"min=0"`
	Start         []float64                 `json:"start" binding:"omitempty,len=2"`
	Goal          []float64                 `json:"goal" binding:"omitempty,len=2"`
	Pixels        bool                      `json:"pixels"`
	ExcludeStart  bool                      `json:"exclude_start"`
	Heuristic     string                    `json:"heuristic"`
	MaxExpansions int                       `json:"max_expansions" binding:"min=0"`
}

// Point is a pixel position in responses.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathResponse is the body of a successful POST /v1/paths.
type PathResponse struct {
	Found    bool     `json:"found"`
	Path     [][2]int `json:"path"`
	Points   []Point  `json:"points,omitempty"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
}

// pathController serves grid searches.
type pathController struct {
	timeout  time.Duration
	maxCells int
}

// Register registers the search route.
func (pc *pathController) Register(rg *gin.RouterGroup) {
	rg.POST("/paths", pc.findPath)
}

// findPath handles POST /v1/paths.
func (pc *pathController) findPath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	res, cellSize, err := pc.search(c.Request.Context(), &req)
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}

	resp := PathResponse{
		Found:    res.Found,
		Path:     make([][2]int, 0, len(res.Path)),
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
	for _, p := range res.Path {
		resp.Path = append(resp.Path, [2]int{p.X, p.Y})
	}
	if req.Pixels {
		resp.Points = make([]Point, 0, len(res.Path))
		for _, p := range route.Pixels(res.Path, cellSize) {
			resp.Points = append(resp.Points, Point{X: p.X, Y: p.Y})
		}
	}
	c.JSON(http.StatusOK, resp)
}

// search builds the grid from the request and runs A* under the timeout.
func (pc *pathController) search(ctx context.Context, req *PathRequest) (astar.Result, int, error) {
	width := 0
	for _, r := range req.Rows {
		width = max(width, len([]rune(r)))
	}
	if cells := len(req.Rows) * width; cells > pc.maxCells {
		return astar.Result{}, 0, fmt.Errorf("%w: %d cells, limit %d", errTooLarge, cells, pc.maxCells)
	}

	legend, err := mapfile.DefaultLegend().With(req.Legend)
	if err != nil {
		return astar.Result{}, 0, err
	}
	m, err := mapfile.ParseRows(req.Rows, legend)
	if err != nil {
		return astar.Result{}, 0, err
	}
	cellSize := req.CellSize
	if cellSize == 0 {
		cellSize = m.CellSize
	}

	h, err := astar.ParseHeuristic(req.Heuristic, m.Grid.MinWeight())
	if err != nil {
		return astar.Result{}, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, pc.timeout)
	defer cancel()

	opts := []astar.Option{astar.WithContext(ctx), astar.WithHeuristic(h)}
	if req.ExcludeStart {
		opts = append(opts, astar.WithExcludeStart())
	}
	if req.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(req.MaxExpansions))
	}

	var res astar.Result
	if req.Pixels {
		if req.Start == nil || req.Goal == nil {
			return astar.Result{}, 0, fmt.Errorf("%w: pixel searches need start and goal", errMissingEndpoint)
		}
		res, err = astar.FindPathPixels(m.Grid,
			route.Point{X: req.Start[0], Y: req.Start[1]},
			route.Point{X: req.Goal[0], Y: req.Goal[1]},
			cellSize, opts...)
	} else {
		var start, goal grid.Coord
		if start, err = cell(req.Start, m.Start, astar.ErrStartOutOfBounds); err != nil {
			return astar.Result{}, 0, err
		}
		if goal, err = cell(req.Goal, m.Goal, astar.ErrGoalOutOfBounds); err != nil {
			return astar.Result{}, 0, err
		}
		res, err = astar.FindPath(m.Grid, start, goal, opts...)
	}
	if err != nil {
		return astar.Result{}, 0, err
	}

	ctxlog.FromContext(ctx).Debug("Search done.",
		"width", m.Grid.Width(),
		"height", m.Grid.Height(),
		"found", res.Found,
		"expanded", res.Expanded,
	)

	return res, cellSize, nil
}

// cell converts a JSON [x, y] pair into a coordinate, falling back to the
// map marker when v is absent. Fractional values are reported with the
// endpoint's sentinel.
func cell(v []float64, marker *grid.Coord, endpoint error) (grid.Coord, error) {
	if v == nil {
		if marker == nil {
			return grid.Coord{}, fmt.Errorf("%w: no coordinate and no map marker", errMissingEndpoint)
		}
		return *marker, nil
	}
	for _, f := range v {
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return grid.Coord{}, fmt.Errorf("%w: %v is not a cell coordinate", endpoint, v)
		}
	}

	return grid.Coord{X: int(v[0]), Y: int(v[1])}, nil
}
