// Package repository is used to store and register the repository factories.
// A modular design allows to use and compile only required drivers.
package repository

import (
	"github.com/tabulaorm/tabula/config"
	"github.com/tabulaorm/tabula/query"
)

// Factory is the interface used for creating the query builders over a
// single connection.
type Factory interface {
	// DriverName gets the driver name for given factory.
	DriverName() string
	// New creates new query.Builder handle for the provided connection config.
	New(cfg *config.Repository) (query.Builder, error)
}
