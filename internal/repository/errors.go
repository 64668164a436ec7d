package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
)

// ErrDuplicateUsername is returned when a uniqueness constraint rejects a
// registration. Detection happens on the constraint error, not a pre-check,
// so concurrent registrations cannot race past it.
var ErrDuplicateUsername = errors.New("username already exists")

const (
	pgUniqueViolation       = "23505"
	sqliteConstraintUnique  = 2067
	sqliteConstraintPrimary = 1555
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqliteConstraintUnique || code == sqliteConstraintPrimary
	}
	return false
}
