// Package config contains the configurations for all tabula packages.
package config

import (
	"time"
)

// Config defines the configuration for the tabula models.
type Config struct {
	// AutoTableNaming defines if the table name should be resolved out of
	// the model's type name when not set explicitly.
	AutoTableNaming bool `mapstructure:"auto_table_naming"`

	// PluralizeTableName defines if the resolved table name should be
	// pluralized.
	PluralizeTableName bool `mapstructure:"pluralize_table_name"`

	// TableNameStyle is the casing convention used while resolving the
	// table names. Allowed values:
	// - camel
	// - lowercamel
	// - snake
	// - upper
	// - lower
	// An empty value leaves the resolved name as-is.
	TableNameStyle string `mapstructure:"table_name_style" validate:"isdefault|oneof=camel lowercamel snake upper lower"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug info warning error critical"`

	// SoftDelete is the soft deletion policy configuration.
	SoftDelete *SoftDelete `mapstructure:"soft_delete"`

	// Repositories contains the connection configs for the given repository
	// instance name.
	Repositories map[string]*Repository `mapstructure:"repositories" validate:"-"`

	// DefaultRepositoryName defines the default repository name.
	DefaultRepositoryName string `mapstructure:"default_repository_name"`
}

// SoftDelete defines the soft deletion policy. When enabled the model's
// delete operations are rewritten into updates of the given column.
type SoftDelete struct {
	// Enabled defines if the deletes should be rewritten into updates.
	Enabled bool `mapstructure:"enabled"`

	// Column is the column that marks the row as deleted.
	Column string `mapstructure:"column"`

	// Value defines what is written into the column. Allowed values:
	// - bool		writes a literal 'true'
	// - timestamp	lets the database write its current timestamp
	Value string `mapstructure:"value" validate:"isdefault|oneof=bool timestamp"`
}

// Repository defines the connection configuration for a single repository
// instance.
type Repository struct {
	// DriverName is the name of the registered repository factory.
	DriverName string `mapstructure:"driver_name"`

	// SQLDriver is the database/sql driver name the connection is opened
	// with, i.e. 'postgres', 'mysql'. The driver must be imported by the
	// calling application.
	SQLDriver string `mapstructure:"sql_driver"`

	// DSN is the data source name for the underlying database driver.
	DSN string `mapstructure:"dsn"`

	// MaxOpenConns sets the maximum number of the open connections.
	MaxOpenConns int `mapstructure:"max_open_conns"`

	// MaxIdleConns sets the maximum number of the idle connections.
	MaxIdleConns int `mapstructure:"max_idle_conns"`

	// ConnMaxLifetime sets the maximum amount of time a connection may be reused.
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}
