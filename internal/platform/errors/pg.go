package errors

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgClass maps SQLSTATE codes that describe bad input rather than a broken
// store. Anything else is reported as persistence unavailable
var pgClass = map[string]ErrorCode{
	"23505": ErrorCodeConflict,        // unique_violation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation
}

// transientStates are SQLSTATE codes worth another attempt
var transientStates = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
	"57P03": true, // cannot_connect_now
}

// Persistence wraps a storage failure for the history API. Constraint
// violations keep an input code; everything else is
// ErrorCodePersistenceUnavailable. nil stays nil
func Persistence(err error, msg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		code, ok := pgClass[pgErr.Code]
		if !ok {
			code = ErrorCodePersistenceUnavailable
		}
		return WithMeta(Wrap(err, code, msg), "sqlstate", pgErr.Code)
	}
	return Wrap(err, ErrorCodePersistenceUnavailable, msg)
}

// Transient reports whether a storage error is likely to clear on its own.
// Cancellation is never transient
func Transient(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return transientStates[pgErr.Code]
	}
	var connErr *pgconn.ConnectError
	return stderrs.As(err, &connErr)
}
