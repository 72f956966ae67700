// Package repository implements persistence for venues and seats on MySQL.
// The sentinel values below let the service layer distinguish failure
// scenarios without inspecting driver errors.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrVenueNotFound is returned when a venue does not exist or is inactive.
var ErrVenueNotFound = errors.New("venue not found")

// ErrDuplicateLocation is returned when an insert would place a second
// active seat at the same location of a venue.
var ErrDuplicateLocation = errors.New("duplicate active seat location")

const mysqlErrDuplicateEntry = 1062

// isDuplicateEntry reports whether err is MySQL's ER_DUP_ENTRY, raised by
// the (venue_id, active_location) unique key.
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// chunk splits ids into slices of at most size elements so that IN lists and
// multi-row inserts stay under the server's placeholder limit.
func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size])
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
