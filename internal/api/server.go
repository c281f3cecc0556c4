package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"fieldnotes/internal/logging"
	"fieldnotes/internal/services"
)

// Config holds the configuration for the HTTP server
type Config struct {
	Addr string
}

// Server is the fieldnotes HTTP API server
type Server struct {
	config    Config
	dashboard *services.DashboardService
	http      *http.Server
	metrics   *httpMetrics
	mux       *http.ServeMux
	projects  *services.ProjectService
	sessions  *services.SessionService
}

// NewServer creates a new Server and registers all routes
func NewServer(
	sessions *services.SessionService,
	projects *services.ProjectService,
	dashboard *services.DashboardService,
	config Config,
) *Server {
	s := &Server{
		config:    config,
		dashboard: dashboard,
		metrics:   newHTTPMetrics(),
		mux:       http.NewServeMux(),
		projects:  projects,
		sessions:  sessions,
	}

	s.registerRoutes()
	return s
}

// Handler returns the mux wrapped in the middleware chain.
// Order from outermost: recovery -> logging -> metrics -> handler.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	h = s.metricsMiddleware(h)
	h = s.loggingMiddleware(h)
	h = s.recoveryMiddleware(h)
	return h
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr, err)
	}

	s.http = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logging.Logger.Info("HTTP API listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.handler())

	s.mux.HandleFunc("GET /api/projects", s.handleListProjects)
	s.mux.HandleFunc("GET /api/projects/{id}/sessions", s.handleListSessions)
	s.mux.HandleFunc("GET /api/projects/{id}/dashboard", s.handleGetDashboard)

	s.mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("PUT /api/sessions/{id}", s.handleUpdateSessionContent)
	s.mux.HandleFunc("POST /api/sessions/{id}/insights", s.handleCreateInsight)
	s.mux.HandleFunc("GET /api/sessions/{id}/recording", s.handleRecording)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.code = code
	sr.ResponseWriter.WriteHeader(code)
}

// recoveryMiddleware turns a panic into a 500 error envelope
func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Logger.Error("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				WriteError(w, ErrInternal, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request with method, path, status and duration
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sr, r)
		logging.Logger.Info("req",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.code,
			"dur", time.Since(start).String(),
		)
	})
}
