// Package api exposes the read-only operational HTTP surface: health,
// pattern queries, and Prometheus metrics. All domain interaction stays
// event-driven; nothing here mutates state.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onex-platform/omniintelligence/pkg/database"
	"github.com/onex-platform/omniintelligence/pkg/dispatch"
	"github.com/onex-platform/omniintelligence/pkg/store"
)

// Server is the read-only HTTP server.
type Server struct {
	db      *database.Client
	engine  *dispatch.Engine
	store   *store.Store
	httpSrv *http.Server
}

// NewServer creates the API server. engine may be nil until dispatchers
// are wired; health reports it as absent.
func NewServer(db *database.Client, engine *dispatch.Engine, st *store.Store) *Server {
	return &Server{
		db:     db,
		engine: engine,
		store:  st,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)
		v1.GET("/patterns", s.listPatternsHandler)
		v1.GET("/patterns/:id", s.getPatternHandler)
	}

	return router
}

// Start runs the HTTP server. Blocks until Shutdown or error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
