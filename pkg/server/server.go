// Package server exposes the generation pipeline and the saved-arrow
// store over HTTP. Routes:
//
//	GET    /healthz                   liveness probe
//	GET    /v1/arrows/{pattern}       render a document from query params
//	POST   /v1/arrows                 save a named arrow
//	GET    /v1/arrows/saved           list saved arrows
//	GET    /v1/arrows/saved/{id}      fetch one saved arrow
//	DELETE /v1/arrows/saved/{id}      delete a saved arrow
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/helgeesch/captain-arro/pkg/observability"
	"github.com/helgeesch/captain-arro/pkg/pipeline"
	"github.com/helgeesch/captain-arro/pkg/store"
)

// Config configures the HTTP server.
type Config struct {
	Addr   string // default ":8080"
	Runner *pipeline.Runner
	Store  store.Store // optional; saved-arrow routes fail with 503 when nil
	Logger *log.Logger
}

// Server is the captain-arro HTTP server.
type Server struct {
	cfg  Config
	http *http.Server
}

// New builds a server with its routes and middleware stack.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}

	s := &Server{cfg: cfg}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler, also used directly by tests.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1/arrows", func(r chi.Router) {
		r.Post("/", s.handleSave)
		r.Get("/saved", s.handleList)
		r.Get("/saved/{id}", s.handleGetSaved)
		r.Delete("/saved/{id}", s.handleDeleteSaved)
		// Registered last so the static "saved" segment wins.
		r.Get("/{pattern}", s.handleGenerate)
	})

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.cfg.Logger.Info("listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.cfg.Logger.Info("shutting down")
	return s.http.Shutdown(shutdownCtx)
}

// requestLogger logs each request and feeds the HTTP observability hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.cfg.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
