// BlogHub | 2026
// server.go

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bloghub-dev/bloghub/internal/config"
	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/middleware"
)

// Server owns the HTTP listener and the base middleware chain. Route
// registration happens through Router() so main stays the single place
// where domains are wired together.
type Server struct {
	httpServer *http.Server
	router     chi.Router
	logger     *slog.Logger
	cfg        *config.Config
}

type Options struct {
	Config      *config.Config
	Logger      *slog.Logger
	Verifier    middleware.TokenVerifier
	RateLimiter *middleware.RateLimiter
}

func New(opts Options) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.SecurityHeaders(opts.Config.IsProduction()))
	r.Use(middleware.CORS(opts.Config.CORS))

	// Authenticate before rate limiting so authenticated traffic is
	// keyed per user rather than per IP.
	r.Use(middleware.Authenticate(opts.Verifier))

	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Handler)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		core.NotFound(w, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		core.JSONErrorStatus(
			w,
			http.StatusMethodNotAllowed,
			"method not allowed",
		)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         opts.Config.Server.Address(),
			Handler:      r,
			ReadTimeout:  opts.Config.Server.ReadTimeout,
			WriteTimeout: opts.Config.Server.WriteTimeout,
			IdleTimeout:  opts.Config.Server.IdleTimeout,
		},
		router: r,
		logger: opts.Logger,
		cfg:    opts.Config,
	}
}

// Router exposes the mux for handler registration before Start.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening",
		"addr", s.httpServer.Addr,
		"environment", s.cfg.App.Environment,
	)

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(
		ctx,
		s.cfg.Server.ShutdownTimeout,
	)
	defer cancel()

	s.logger.Info("http server shutting down")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
