package sqlbuilder

import (
	"github.com/jmoiron/sqlx"

	"github.com/tabulaorm/tabula/config"
	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
	"github.com/tabulaorm/tabula/query"
	"github.com/tabulaorm/tabula/repository"
)

// FactoryName is the name the sqlbuilder factory registers under.
const FactoryName = "sqlbuilder"

func init() {
	if err := repository.RegisterFactory(&Factory{}); err != nil {
		panic(err)
	}
}

// Factory is the repository.Factory that builds sqlx backed query builders.
type Factory struct{}

// DriverName implements repository.Factory interface.
func (f *Factory) DriverName() string {
	return FactoryName
}

// New implements repository.Factory interface. It opens the connection with
// the database/sql driver named in the config - the driver itself must be
// imported by the calling application.
func (f *Factory) New(cfg *config.Repository) (query.Builder, error) {
	db, err := sqlx.Connect(cfg.SQLDriver, cfg.DSN)
	if err != nil {
		return nil, errors.Newf(class.RepositoryConnectionFailed, "connecting '%s' failed: %v", cfg.SQLDriver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return New(db), nil
}
