// Package tabula is a base-model abstraction sitting between the application
// domain entities and a database-agnostic query builder. A Model resolves its
// storage table name, dispatches ordered lifecycle hooks around every reading
// or mutating operation, forwards the query composition calls to a pluggable
// builder and rewrites deletes into updates when the soft deletion policy is
// enabled.
// It consists of the following packages:
// - tabula - the root package with the Model orchestrator, the hook registry
//	and the soft deletion policy.
// - config - contains the configurations for all packages.
// - namer - resolves the table names out of the model type names.
// - query - defines the builder and result boundary contracts.
// - repository - stores and registers the builder factories. A modular
//	design allows to use and compile only required drivers.
// - repository/sqlbuilder - the sqlx backed reference builder.
// - errors - used as a default error package for the tabula packages.
// - errors/class - contains the errors classification system.
// - log - is the logging interface for the tabula based applications.
package tabula
