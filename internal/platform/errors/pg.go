package errors

// Postgres-specific helpers for mapping pgx errors to project ErrorCodes

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we care about
const (
	pgErrUniqueViolation           = "23505"
	pgErrForeignKeyViolation       = "23503"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrLockNotAvailable     = "55P03"
	pgErrCannotConnectNow     = "57P03" // startup in progress
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// DBErrorCode maps a Postgres error to an ErrorCode with an ok flag.
// !ok means err wasn't a PgError; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case pgErrUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgErrForeignKeyViolation, pgErrStringDataRightTruncation, pgErrInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true
	case pgErrNotNullViolation, pgErrCheckViolation:
		return ErrorCodeValidation, true
	case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable:
		return ErrorCodeDB, true
	case pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	}

	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and message.
// If err is nil, returns nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports whether a database error represents a transient
// condition worth retrying. Handles structured *pgconn.PgError codes and the
// generic pgx commit text
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	root := Root(err)

	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable:
			return true
		default:
			return false
		}
	}

	s := strings.ToLower(root.Error())
	switch {
	case strings.Contains(s, "commit unexpectedly resulted in rollback"),
		strings.Contains(s, "deadlock detected"),
		strings.Contains(s, "could not serialize access"),
		strings.Contains(s, "serialization failure"):
		return true
	default:
		return false
	}
}
