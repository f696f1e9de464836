// Package pgerr classifies the Postgres error conditions the storage layer
// reacts to.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	undefinedTableCode  = "42P01"
	uniqueViolationCode = "23505"
)

// IsUndefinedTable reports whether err is a missing-relation error. List
// operations treat it as an empty result so a not-yet-migrated database
// degrades to empty listings instead of 500s.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
