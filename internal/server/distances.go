package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/dijkstra"
)

// DistanceRequest is the body of POST /v1/distances.
type DistanceRequest struct {
	Matrix      [][]float64 `json:"matrix" binding:"required,min=1"`
	Source      int         `json:"source"`
	Selector    string      `json:"selector"`
	Targets     []int       `json:"targets"`
	MaxDistance *float64    `json:"max_distance" binding:"omitempty,min=0"`
}

// DistanceResponse is the body of a successful POST /v1/distances.
// Distances holds null for unreachable vertices; Paths holds one entry
// per reachable requested target.
type DistanceResponse struct {
	Distances []*float64    `json:"distances"`
	Paths     map[int][]int `json:"paths,omitempty"`
}

// distanceController serves matrix shortest distances.
type distanceController struct {
	maxCells int
}

// Register registers the distances route.
func (dc *distanceController) Register(rg *gin.RouterGroup) {
	rg.POST("/distances", dc.distances)
}

// distances handles POST /v1/distances.
func (dc *distanceController) distances(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	n := len(req.Matrix)
	if n*n > dc.maxCells {
		err := fmt.Errorf("%w: %d×%d matrix, limit %d cells", errTooLarge, n, n, dc.maxCells)
		fail(c, statusOf(err), err)
		return
	}

	sel, err := dijkstra.ParseSelector(req.Selector)
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}
	opts := []dijkstra.Option{dijkstra.WithSelector(sel)}
	if req.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*req.MaxDistance))
	}

	tree, err := dijkstra.ShortestPaths(req.Matrix, req.Source, opts...)
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}

	resp := DistanceResponse{Distances: make([]*float64, n)}
	for v, d := range tree.Dist {
		if !math.IsInf(d, 1) {
			resp.Distances[v] = &d
		}
	}
	for _, t := range req.Targets {
		if p, ok := tree.PathTo(t); ok {
			if resp.Paths == nil {
				resp.Paths = make(map[int][]int, len(req.Targets))
			}
			resp.Paths[t] = p
		}
	}
	c.JSON(http.StatusOK, resp)
}
