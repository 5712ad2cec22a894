// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

// Command api is the entry point for the Registra HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the SQLite store.
//  4. Apply the idempotent schema bootstrap.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/registra-app/registra/internal/api"
	"github.com/registra-app/registra/internal/core/archive"
	"github.com/registra-app/registra/internal/core/course"
	"github.com/registra-app/registra/internal/core/instructor"
	"github.com/registra-app/registra/internal/core/search"
	"github.com/registra-app/registra/internal/core/student"
	"github.com/registra-app/registra/internal/platform/config"
	"github.com/registra-app/registra/internal/platform/constants"
	"github.com/registra-app/registra/internal/platform/database/schema"
	"github.com/registra-app/registra/internal/platform/sqlite"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "registra"))
	slog.SetDefault(log)

	log.Info("[Registra] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "registra"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("database", cfg.DatabasePath),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. SQLite ─────────────────────────────────────────────────────────
	db, err := sqlite.Open(startupCtx, cfg.DatabasePath, log)
	must(log, err, "open sqlite store")
	defer func() {
		log.Info("closing sqlite store")
		if cerr := db.Close(); cerr != nil {
			log.Error("sqlite close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Schema Bootstrap ───────────────────────────────────────────────
	must(log, sqlite.Bootstrap(startupCtx, db, schema.DDL), "bootstrap schema")

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return sqlite.Ping(context.Background(), db)
		},
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	studentRepository := student.NewSQLiteRepository(db)
	studentService := student.NewService(studentRepository, log)
	studentHandler := student.NewHandler(studentService)

	instructorRepository := instructor.NewSQLiteRepository(db)
	instructorService := instructor.NewService(instructorRepository, log)
	instructorHandler := instructor.NewHandler(instructorService)

	courseRepository := course.NewSQLiteRepository(db)
	courseService := course.NewService(courseRepository, log)
	courseHandler := course.NewHandler(courseService)

	searchRepository := search.NewSQLiteRepository(db)
	searchService := search.NewService(searchRepository, log)
	searchHandler := search.NewHandler(searchService)

	archiveRepository := archive.NewSQLiteRepository(db)
	archiveService := archive.NewService(archiveRepository, cfg.BackupDir, log)
	archiveHandler := archive.NewHandler(archiveService)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Student:    studentHandler,
		Instructor: instructorHandler,
		Course:     courseHandler,
		Search:     searchHandler,
		Archive:    archiveHandler,
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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
