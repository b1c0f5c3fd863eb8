// Package server provides the HTTP REST API for the resume engine.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-engine/internal/resume"
)

// Server is the engine's HTTP front end. Version ownership comes from the
// path; authentication is a gateway concern and not handled here.
type Server struct {
	httpServer      *http.Server
	service         *resume.Service
	shutdownTimeout time.Duration
	closers         []func()
}

// Config holds server configuration.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// New creates a server over an already-wired engine service.
func New(cfg Config, service *resume.Service) *Server {
	s := &Server{
		service:         service,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 10 * time.Second
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF generation shells out to pdflatex
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// OnShutdown registers a cleanup function run after the listener stops.
func (s *Server) OnShutdown(fn func()) {
	s.closers = append(s.closers, fn)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /users/{owner_id}/versions", s.handleListVersions)
	mux.HandleFunc("POST /users/{owner_id}/versions", s.handleCreateVersion)
	mux.HandleFunc("GET /users/{owner_id}/versions/{id}", s.handleGetVersion)
	mux.HandleFunc("PUT /users/{owner_id}/versions/{id}", s.handleUpdateVersion)
	mux.HandleFunc("DELETE /users/{owner_id}/versions/{id}", s.handleDeleteVersion)
	mux.HandleFunc("POST /users/{owner_id}/versions/{id}/activate", s.handleActivateVersion)

	mux.HandleFunc("GET /users/{owner_id}/versions/{id}/validate", s.handleValidateVersion)
	mux.HandleFunc("POST /users/{owner_id}/versions/{id}/generate", s.handleGenerate)
	mux.HandleFunc("GET /users/{owner_id}/versions/{id}/export", s.handleExport)

	mux.HandleFunc("POST /users/{owner_id}/drafts", s.handleCreateDraft)
	mux.HandleFunc("POST /users/{owner_id}/tailor", s.handleTailor)

	return mux
}

// Start listens for requests and blocks until an interrupt or SIGTERM, then
// shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	for _, closer := range s.closers {
		closer()
	}
	log.Info().Msg("server stopped")
	return err
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
