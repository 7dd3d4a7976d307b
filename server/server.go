// Package server exposes the clause engine over a thin HTTP shell: health
// and readiness endpoints, Prometheus metrics, and read-only clause query
// endpoints backed by an in-memory parse of the configured document. It
// contains no extraction logic of its own.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/clausegraph/clause"
	"github.com/c360studio/clausegraph/config"
	"github.com/c360studio/clausegraph/document"
	"github.com/c360studio/clausegraph/export"
	"github.com/c360studio/clausegraph/parse"
)

// Server is the stub backend service.
type Server struct {
	cfg     config.ServerConfig
	engine  *parse.Engine
	cache   *cache
	metrics *metrics
	logger  *slog.Logger
	router  chi.Router

	mu         sync.RWMutex
	collection *clause.Collection
	runID      string
	parsedAt   time.Time
}

// New creates a server over the given engine. The cache client is optional
// and only probed by the readiness endpoint.
func New(cfg config.ServerConfig, engine *parse.Engine, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cacheClient, err := newCache(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("configure cache: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		engine:  engine,
		cache:   cacheClient,
		metrics: newMetrics(),
		logger:  logger,
	}
	s.router = s.routes()
	return s, nil
}

// Reload parses the configured document and swaps the served collection.
func (s *Server) Reload() error {
	doc, err := document.Load(s.cfg.Document)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	collection := s.engine.Parse(doc)
	runID := uuid.NewString()

	s.mu.Lock()
	s.collection = collection
	s.runID = runID
	s.parsedAt = time.Now().UTC()
	s.mu.Unlock()

	s.metrics.parseRuns.Inc()
	s.metrics.clausesParsed.Set(float64(collection.Len()))
	s.logger.Info("Collection reloaded", "run_id", runID, "clauses", collection.Len())
	return nil
}

// ListenAndServe runs the HTTP server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Close()
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.countRequests)

	r.Get("/", s.handleWelcome)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/index", s.handleIndex)
		r.Get("/clauses", s.handleClauses)
		r.Get("/clauses/{id}", s.handleClause)
	})
	return r
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.requestsTotal.WithLabelValues(r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Clausegraph backend",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleReady reports readiness. When a cache is configured its connectivity
// is probed; a failing cache degrades readiness but does not crash the stub.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "cache": "not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.cache.Health(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"cache":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "connected",
		"cache":  s.cache.addr,
	})
}

// statusResponse describes the currently served parse run.
type statusResponse struct {
	RunID    string    `json:"runId"`
	Document string    `json:"document"`
	ParsedAt time.Time `json:"parsedAt"`
	Clauses  int       `json:"clauses"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.collection == nil {
		http.Error(w, "No document parsed", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		RunID:    s.runID,
		Document: s.cfg.Document,
		ParsedAt: s.parsedAt,
		Clauses:  s.collection.Len(),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.collection == nil {
		http.Error(w, "No document parsed", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, export.BuildIndex(s.collection))
}

func (s *Server) handleClauses(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.collection == nil {
		http.Error(w, "No document parsed", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, s.collection.Nodes())
}

func (s *Server) handleClause(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.collection == nil {
		http.Error(w, "No document parsed", http.StatusServiceUnavailable)
		return
	}

	id := chi.URLParam(r, "id")
	node := s.collection.Get(id)
	if node == nil {
		http.Error(w, "Clause not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, node)
}
