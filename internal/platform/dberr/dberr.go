// Copyright (c) 2026 GolpoHub. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Every repository passes its driver errors through [Wrap] so that the content
// catalog and the HTTP layer only ever branch on [apperr.AppError] codes.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/golpohub/golpohub/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes classified by [Wrap].
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// resource names the entity in client messages ("Story", "Author").
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream.
	if apperr.IsAppError(err) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource).WithCause(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict(resource + " already exists").WithCause(err)
		case codeForeignKeyViolation:
			return apperr.Unprocessable(resource + " references a missing record").WithCause(err)
		case codeNotNullViolation, codeCheckViolation:
			return apperr.Unprocessable(resource + " is missing a required value").WithCause(err)
		case codeInvalidText:
			// A malformed key cannot match any row.
			return apperr.NotFound(resource).WithCause(err)
		}
	}

	return apperr.Internal(err)
}
