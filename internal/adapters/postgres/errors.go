// Package postgres contains PostgreSQL implementations of the
// entity-store ports. They mirror the SQLite adapters; the differences
// are placeholder syntax, RETURNING clauses for generated IDs, and
// driver error mapping.
package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isConstraint reports whether err is a PostgreSQL integrity constraint
// violation (SQLSTATE class 23).
func isConstraint(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "23")
}
