// Package server exposes grid path search and matrix shortest distances
// over HTTP.
//
// Routes:
//
//	GET  /healthz        liveness probe
//	POST /v1/paths       A* search on an inline grid
//	POST /v1/distances   Dijkstra distances on an adjacency matrix
//
// Every response carries an X-Request-ID header. A valid UUID sent by the
// client is echoed back; otherwise a new one is generated.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/internal/config"
)

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 10 * time.Second

// controller registers a group of routes.
type controller interface {
	Register(*gin.RouterGroup)
}

// Server is the HTTP front end.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
	engine *gin.Engine
}

// New builds a Server with all routes registered.
func New(cfg config.Config, logger *slog.Logger) *Server {
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(logger))

	engine.GET("/healthz", health)

	v1 := engine.Group("/v1")
	{
		for _, c := range []controller{
			&pathController{timeout: cfg.SearchTimeout, maxCells: cfg.MaxCells},
			&distanceController{maxCells: cfg.MaxCells},
		} {
			c.Register(v1)
		}
	}

	return &Server{cfg: cfg, logger: logger, engine: engine}
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address until ctx is done, then shuts
// down gracefully. It returns only after the listener has stopped.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("HTTP server listening.", "addr", s.cfg.Addr)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return serveErr(err)
	case <-ctx.Done():
		s.logger.Info("HTTP server shutting down.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		shutdownErr := srv.Shutdown(shutdownCtx)

		// Join the listener before returning.
		if err := serveErr(<-errCh); err != nil {
			return err
		}
		return shutdownErr
	}
}

// serveErr drops the error ListenAndServe returns after a shutdown.
func serveErr(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// health answers the liveness probe.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
