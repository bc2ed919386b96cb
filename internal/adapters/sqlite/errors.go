package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isConstraint reports whether err is a SQLite constraint violation, so
// callers can surface secondary.ErrConstraint instead of a driver error.
func isConstraint(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}
