// BlogHub | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloghub-dev/bloghub/internal/admin"
	"github.com/bloghub-dev/bloghub/internal/auth"
	"github.com/bloghub-dev/bloghub/internal/blog"
	"github.com/bloghub-dev/bloghub/internal/board"
	"github.com/bloghub-dev/bloghub/internal/comment"
	"github.com/bloghub-dev/bloghub/internal/config"
	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/health"
	"github.com/bloghub-dev/bloghub/internal/middleware"
	"github.com/bloghub-dev/bloghub/internal/server"
	"github.com/bloghub-dev/bloghub/internal/template"
	"github.com/bloghub-dev/bloghub/internal/user"
)

const drainDelay = 3 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close() //nolint:errcheck // process exit path

	rdb, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer rdb.Close() //nolint:errcheck // process exit path

	logger.Info("dependencies ready",
		"app", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	// Wiring, leaf-first: repositories, services, handlers.
	tokens := auth.NewJWTManager(cfg.JWT)

	userRepo := user.NewRepository(db.DB)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	authService := auth.NewService(userRepo, tokens)
	authHandler := auth.NewHandler(
		authService,
		tokens.RefreshTTL(),
		cfg.IsProduction(),
	)

	templateRepo := template.NewRepository(db.DB)
	templateService := template.NewService(templateRepo)
	templateHandler := template.NewHandler(templateService, userService)

	blogRepo := blog.NewRepository(db.DB)
	blogService := blog.NewService(blogRepo, templateRepo)
	blogHandler := blog.NewHandler(blogService, userService)

	boardRepo := board.NewRepository(db.DB)
	boardService := board.NewService(boardRepo, blogRepo)
	boardHandler := board.NewHandler(boardService, userService)

	commentRepo := comment.NewRepository(db.DB)
	commentHandler := comment.NewHandler(commentRepo)

	healthHandler := health.NewHandler(db, rdb)
	adminHandler := admin.NewHandler(db, rdb)

	limiter := middleware.NewRateLimiter(rdb.Client, middleware.RateLimitConfig{
		Limit: middleware.PerMinute(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
		),
		KeyFunc:  middleware.KeyByUser,
		FailOpen: true,
	})

	srv := server.New(server.Options{
		Config:      cfg,
		Logger:      logger,
		Verifier:    tokens,
		RateLimiter: limiter,
	})

	router := srv.Router()
	healthHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	blogHandler.RegisterRoutes(router)
	boardHandler.RegisterRoutes(router)
	templateHandler.RegisterRoutes(router)
	commentHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	// Flip readiness first so the load balancer stops routing to us,
	// then give in-flight traffic a moment before closing the listener.
	healthHandler.SetReady(false)
	time.Sleep(drainDelay)

	shutdownCtx := context.Background()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
