package query

import (
	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
)

// Result is the cursor over the rows returned by a select operation. The
// model passes it through to the caller unchanged.
type Result interface {
	// Next advances to the next row. It returns false when no row is left
	// or the cursor is in an error state.
	Next() bool

	// Scan copies the current row columns into 'dest'.
	Scan(dest ...interface{}) error

	// MapScan copies the current row into the 'dest' map keyed by the
	// column names.
	MapScan(dest map[string]interface{}) error

	// Columns returns the column names of the result set.
	Columns() ([]string, error)

	// Err returns the error that stopped the iteration, if any.
	Err() error

	// Close closes the cursor.
	Close() error
}

// ErrResult creates a Result that is in a permanent error state. Every access
// reports 'err'. Used by the builders when the select failed, so that reading
// an absent result fails observably instead of returning empty data.
func ErrResult(err error) Result {
	return &errResult{err: err}
}

// NoResult creates a Result reporting that no select was executed yet.
func NoResult() Result {
	return &errResult{err: errors.New(class.QueryNoResult, "no result: select was not executed")}
}

type errResult struct {
	err error
}

func (r *errResult) Next() bool                           { return false }
func (r *errResult) Scan(...interface{}) error            { return r.err }
func (r *errResult) MapScan(map[string]interface{}) error { return r.err }
func (r *errResult) Columns() ([]string, error)           { return nil, r.err }
func (r *errResult) Err() error                           { return r.err }
func (r *errResult) Close() error                         { return nil }
