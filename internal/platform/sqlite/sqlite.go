// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

// Package sqlite provides a managed SQLite connection handle and
// maintenance helpers for the Registra application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It manages the physical
// database file (via the CGo-free modernc.org/sqlite driver) and provides
// concrete implementations for the interfaces defined in the domain layer.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/registra-app/registra/internal/platform/apperr"
)

// Opinionated connection settings for the Registra workload.
const (
	// maxOpenConns serializes writers; SQLite allows one writer at a time.
	maxOpenConns = 1
	// connMaxIdleTime closes the handle after a long idle period so the
	// database file can be moved or inspected out of band.
	connMaxIdleTime = 10 * time.Minute
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// busyTimeoutMillis is how long a statement waits on a locked database.
	busyTimeoutMillis = 5000
)

// Open creates and validates a SQLite database handle at the given path.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - path: Filesystem location of the database file. The parent directory
//     is created if missing.
//   - logger: Structured logger for store-level events.
//
// Foreign key enforcement is switched on for every connection; SQLite
// defaults to OFF per connection, which would silently disable the
// relationship cascades the schema relies on.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, busyTimeoutMillis)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}

	// Apply pool tuning parameters.
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	// Validate that we can actually reach the database file.
	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite store opened",
		slog.String("path", path),
	)

	return db, nil
}

// Ping verifies that the SQLite handle is healthy.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}

	return nil
}

// Bootstrap applies the idempotent schema script to the database.
func Bootstrap(ctx context.Context, db *sql.DB, ddl string) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("sqlite: schema bootstrap failed: %w", err)
	}
	return nil
}

// NormalizeBackupPath forces a SQLite file extension on destination.
// A .db or .sqlite extension is kept as-is; anything else is replaced
// with .sqlite.
func NormalizeBackupPath(destination string) string {
	extension := filepath.Ext(destination)
	switch strings.ToLower(extension) {
	case ".db", ".sqlite":
		return destination
	}
	return strings.TrimSuffix(destination, extension) + ".sqlite"
}

// Backup writes a consistent snapshot of the live database to destination.
//
// # Safety
//
// VACUUM INTO produces a compacted, transactionally-consistent copy without
// blocking concurrent readers, so it is safe to run against a live store.
// The destination is given a .sqlite extension when it carries neither .db
// nor .sqlite, and must not already exist.
func Backup(ctx context.Context, db *sql.DB, destination string) error {
	destination = NormalizeBackupPath(destination)

	if _, err := os.Stat(destination); err == nil {
		return apperr.Conflict("Backup destination already exists")
	} else if !errors.Is(err, os.ErrNotExist) {
		return apperr.IO("Failed to inspect backup destination", err)
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return apperr.IO("Failed to create backup directory", err)
	}

	// Single quotes in the path must be doubled for the SQL literal.
	quoted := strings.ReplaceAll(destination, "'", "''")
	if _, err := db.ExecContext(ctx, fmt.Sprintf("VACUUM INTO '%s'", quoted)); err != nil {
		return apperr.IO("Backup failed", err)
	}

	return nil
}
