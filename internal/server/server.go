// Package server implements the ainviz HTTP API.
//
// The server exposes a small JSON API for building relation graphs from
// interval collections and retrieving stored documents and rendered SVG
// views:
//
//	POST /v1/graphs                    build and store a document
//	GET  /v1/graphs/{id}               retrieve a stored document
//	GET  /v1/graphs/{id}/graph.svg     node-link rendering
//	GET  /v1/graphs/{id}/timeline.svg  stacked timeline rendering
//	GET  /healthz                      liveness probe
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/ainkit/ainviz/pkg/pipeline"
	"github.com/ainkit/ainviz/pkg/store"
)

// Config holds server construction options.
type Config struct {
	Addr   string
	Store  store.Store
	Runner *pipeline.Runner
	Logger *log.Logger
}

// Server routes API requests to the pipeline and document store.
type Server struct {
	addr   string
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server with its routes mounted.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, logger)
	}

	s := &Server{
		addr:   cfg.Addr,
		store:  cfg.Store,
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.logMiddleware)
	r.Use(recoverMiddleware(logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/graphs", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Post("/{id}/nodes", s.handleAddNode)
		r.Get("/{id}/graph.svg", s.handleGraphSVG)
		r.Get("/{id}/timeline.svg", s.handleTimelineSVG)
	})
	s.router = r

	return s
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
