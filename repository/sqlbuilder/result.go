package sqlbuilder

import (
	"github.com/jmoiron/sqlx"

	"github.com/tabulaorm/tabula/query"
)

// Compile time check for the query.Result implementation.
var _ query.Result = &rows{}

// rows adapts the sqlx row cursor to the query.Result contract.
type rows struct {
	*sqlx.Rows
}
