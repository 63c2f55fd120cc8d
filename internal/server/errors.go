package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/mapfile"
)

var (
	// errTooLarge indicates a request above the configured cell limit.
	errTooLarge = errors.New("server: request exceeds the cell limit")

	// errMissingEndpoint indicates a search without a start or goal.
	errMissingEndpoint = errors.New("server: missing start or goal")
)

// badInput lists the errors caused by the request body.
var badInput = []error{
	errMissingEndpoint,
	grid.ErrEmptyGrid, grid.ErrNonRectangular, grid.ErrBadWeight, grid.ErrBadCellSize, grid.ErrOutOfBounds,
	mapfile.ErrEmptyMap, mapfile.ErrUnknownSymbol, mapfile.ErrBadLegend, mapfile.ErrDuplicateMarker,
	astar.ErrStartOutOfBounds, astar.ErrGoalOutOfBounds, astar.ErrUnknownHeuristic,
	dijkstra.ErrEmptyMatrix, dijkstra.ErrNonSquare, dijkstra.ErrInvalidWeight, dijkstra.ErrNegativeWeight,
	dijkstra.ErrSourceOutOfRange, dijkstra.ErrUnknownSelector,
}

// statusOf maps an error to an HTTP status code.
func statusOf(err error) int {
	for _, target := range badInput {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	switch {
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, astar.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes an error body and logs server-side failures.
func fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		ctxlog.FromContext(c.Request.Context()).Error("Request failed.", "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error":      err.Error(),
		"request_id": c.GetString(keyRequestID),
	})
}
