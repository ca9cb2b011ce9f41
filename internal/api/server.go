// Package api serves a read-only JSON view of a loaded parameter store.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/nauticalab/paramfile/internal/log"
	"github.com/nauticalab/paramfile/internal/params"
	"github.com/rs/zerolog"
)

// DefaultRequestLimit is the per-IP request budget per minute.
const DefaultRequestLimit = 600

// Server represents the HTTP API server
type Server struct {
	router *chi.Mux
	addr   string
	logger zerolog.Logger
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind string
	Port int
	// Store must be fully loaded before the server starts; it is only read.
	Store  *params.Store
	Source string
	// Describe optionally returns a description for a parameter name.
	Describe func(name string) string
	// RequestLimit is requests per minute per client IP; <= 0 disables limiting.
	RequestLimit int
	Version      string
	GitCommit    string
	BuildTime    string
	GoVersion    string
}

// NewServer creates a new API server with the given configuration
func NewServer(config ServerConfig) (*Server, error) {
	if config.Store == nil {
		return nil, errors.New("api: a parameter store is required")
	}

	logger := log.WithComponent("api")
	handler := NewHandler(config)

	router := chi.NewRouter()
	setupMiddleware(router, config, logger)
	setupRoutes(router, handler)

	return &Server{
		router: router,
		addr:   net.JoinHostPort(config.Bind, fmt.Sprintf("%d", config.Port)),
		logger: logger,
	}, nil
}

// setupMiddleware configures the middleware chain
func setupMiddleware(router *chi.Mux, config ServerConfig, logger zerolog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	if config.RequestLimit > 0 {
		router.Use(httprate.LimitByIP(config.RequestLimit, time.Minute))
	}
}

// setupRoutes configures the API routes
func setupRoutes(router *chi.Mux, handler *Handler) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/version", handler.Version)

		r.Get("/parameters", handler.ListParameters)
		r.Get("/parameters/{name}", handler.GetParameter)
		r.Get("/dump", handler.Dump)
	})
}

// requestLogger logs one zerolog entry per request
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// Handler returns the router, for use with httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.addr
}

// StartWithContext starts the HTTP server and shuts it down gracefully
// when ctx is cancelled
func (s *Server) StartWithContext(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("server shutdown error")
			return err
		}
		// Wait for Serve to return
		<-errChan

		s.logger.Info().Msg("server stopped gracefully")
		return nil

	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
