// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

// Command api is the entry point for the Eduka HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minhvu-dev/eduka/internal/api"
	"github.com/minhvu-dev/eduka/internal/platform/config"
	"github.com/minhvu-dev/eduka/internal/platform/constants"
	"github.com/minhvu-dev/eduka/internal/platform/migration"
	pgstore "github.com/minhvu-dev/eduka/internal/platform/postgres"
	redisstore "github.com/minhvu-dev/eduka/internal/platform/redis"
	"github.com/minhvu-dev/eduka/internal/platform/sec"
	"github.com/minhvu-dev/eduka/internal/school/course"
	"github.com/minhvu-dev/eduka/internal/school/enrollment"
	"github.com/minhvu-dev/eduka/internal/school/student"
	"github.com/minhvu-dev/eduka/internal/school/teacher"
	"github.com/minhvu-dev/eduka/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "eduka"))
	slog.SetDefault(log)

	log.Info("[Eduka] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "eduka"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security Services ──────────────────────────────────────────────
	tokenService := sec.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiryMinutes)
	passwordHasher := sec.NewPasswordHasher(cfg.HashIterations)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	tokenDenylist := auth.NewTokenDenylist(rdb)
	authService := auth.NewService(userRepository, tokenDenylist, passwordHasher, tokenService, log)
	authHandler := auth.NewHandler(authService)

	studentRepository := student.NewPostgresRepository(pool)
	studentService := student.NewService(studentRepository, log)
	studentHandler := student.NewHandler(studentService)

	teacherRepository := teacher.NewPostgresRepository(pool)
	teacherService := teacher.NewService(teacherRepository, log)
	teacherHandler := teacher.NewHandler(teacherService)

	courseRepository := course.NewPostgresRepository(pool)
	courseService := course.NewService(courseRepository, teacherRepository, log)
	courseHandler := course.NewHandler(courseService)

	enrollmentRepository := enrollment.NewPostgresRepository(pool)
	enrollmentService := enrollment.NewService(enrollmentRepository, studentRepository, courseRepository, log)
	enrollmentHandler := enrollment.NewHandler(enrollmentService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Student:    studentHandler,
		Teacher:    teacherHandler,
		Course:     courseHandler,
		Enrollment: enrollmentHandler,
	}

	// The server context outlives startup; it feeds the rate limiter's
	// background cleanup and is cancelled on process exit.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, tokenDenylist, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
