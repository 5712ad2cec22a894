// Copyright (c) 2026 Registra. All rights reserved.
// Author: dev@registra.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"database/sql"
	"errors"

	"modernc.org/sqlite"

	"github.com/registra-app/registra/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// SQLite extended result codes for constraint violations.
const (
	codeConstraint           = 19
	codeConstraintForeignKey = 787
	codeConstraintPrimaryKey = 1555
	codeConstraintUnique     = 2067
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations become Conflicts
	var sqliteError *sqlite.Error
	if errors.As(err, &sqliteError) {
		switch sqliteError.Code() {
		case codeConstraintPrimaryKey, codeConstraintUnique:
			return apperr.Conflict("A record with this identifier already exists")
		case codeConstraintForeignKey:
			return apperr.Conflict("Operation violates a relationship constraint")
		case codeConstraint:
			return apperr.Conflict("Operation violates a data constraint")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
