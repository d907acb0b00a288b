package tabula

import (
	"github.com/tabulaorm/tabula/config"
	"github.com/tabulaorm/tabula/log"
	"github.com/tabulaorm/tabula/namer"
	"github.com/tabulaorm/tabula/query"
)

// Model is a handle representing one table's CRUD surface plus its lifecycle
// hooks. It owns the table identity, the last recorded error and the query
// builder handle - the pending predicate, join, ordering and limit state
// lives in the builder and is cleared by the builder after every terminal
// operation.
//
// A Model is not safe for concurrent use. In a multi-threaded environment
// each logical request must own its own instance and builder handle.
type Model struct {
	table      string
	builder    query.Builder
	hooks      *HookRegistry
	softDelete softDeletePolicy
	lastErr    error
}

// New constructs a Model over the provided builder handle. The table name is
// taken from the descriptor, or - when unset and 'auto_table_naming' is
// enabled - resolved out of the descriptor's type name. The construction is
// wrapped by the 'init' before and after hooks; the before hook fires ahead
// of the table resolution so it may still pre-set the table.
func New(builder query.Builder, desc Descriptor, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// instance registry starts as a copy, so a descriptor stays reusable
	// across instances
	hooks := NewHookRegistry()
	hooks.fold(desc.Hooks)

	softDelete := cfg.SoftDelete
	if desc.SoftDelete != nil {
		softDelete = desc.SoftDelete
	}

	m := &Model{
		table:      desc.Table,
		builder:    builder,
		hooks:      hooks,
		softDelete: newSoftDeletePolicy(softDelete),
	}

	m.hooks.Invoke(OpInit, Before, m)

	if m.table == "" && cfg.AutoTableNaming {
		m.table = namer.Resolve(desc.TypeName, cfg.PluralizeTableName, namer.ParseStyle(cfg.TableNameStyle))
	}
	m.hooks.fold(sharedHooksFor(m.table))

	log.Infof("Model constructed for table: '%s'", m.table)
	m.hooks.Invoke(OpInit, After, m)
	return m
}

// NewFor constructs a Model for the provided entity value, resolving the
// descriptor out of its type.
func NewFor(builder query.Builder, entity interface{}, cfg *config.Config) *Model {
	return New(builder, DescriptorOf(entity), cfg)
}

// Table returns the model's table name.
func (m *Model) Table() string {
	return m.table
}

// SetTable sets the model's table name. The name is mutable before the first
// query operation and must stay stable afterwards.
func (m *Model) SetTable(table string) *Model {
	m.table = table
	return m
}

// Builder returns the model's query builder handle.
func (m *Model) Builder() query.Builder {
	return m.builder
}

// LastError returns the most recently captured operation error. It is
// overwritten by each failing operation and not cleared on success.
func (m *Model) LastError() error {
	return m.lastErr
}

// Create inserts 'data' into the model's table. The before and after
// 'create' hooks wrap the insert; the after hook receives the success flag
// and fires also on failure. Returns the raw success flag, the cause of a
// failure is available via LastError.
func (m *Model) Create(data map[string]interface{}) bool {
	m.hooks.Invoke(OpCreate, Before, m, data)

	ok := m.builder.Insert(m.table, data)
	if !ok {
		m.lastErr = m.builder.LastError()
		log.Debugf("Insert into '%s' failed: %v", m.table, m.lastErr)
	}

	m.hooks.Invoke(OpCreate, After, m, data, ok)
	return ok
}

// Select executes the select over the model's table using the previously
// staged fluent state and returns the builder's result handle unchanged.
// A failed select returns a handle that reports the failure on access.
func (m *Model) Select(columns ...query.ColumnSpec) query.Result {
	m.hooks.Invoke(OpSelect, Before, m, columns)

	res := m.builder.Select(m.table, columns)
	if err := res.Err(); err != nil {
		m.lastErr = err
		log.Debugf("Select from '%s' failed: %v", m.table, err)
	}

	m.hooks.Invoke(OpSelect, After, m, columns, res)
	return res
}

// Update sets 'columns' on the rows matched by the previously staged
// predicates. Returns the raw success flag.
func (m *Model) Update(columns map[string]interface{}) bool {
	m.hooks.Invoke(OpUpdate, Before, m, columns)

	ok := m.builder.Update(m.table, columns)
	if !ok {
		m.lastErr = m.builder.LastError()
		log.Debugf("Update of '%s' failed: %v", m.table, m.lastErr)
	}

	m.hooks.Invoke(OpUpdate, After, m, columns, ok)
	return ok
}

// Delete removes the rows matched by the previously staged predicates. With
// the soft deletion enabled the delete is rewritten into an Update of the
// configured column - the rewritten mutation goes through the public update
// path, so the 'update' hooks fire inside the 'delete' hook envelope.
func (m *Model) Delete() bool {
	m.hooks.Invoke(OpDelete, Before, m)

	var ok bool
	if columns, rewrite := m.softDelete.rewrite(); rewrite {
		ok = m.Update(columns)
	} else {
		ok = m.builder.Delete(m.table)
		if !ok {
			m.lastErr = m.builder.LastError()
			log.Debugf("Delete from '%s' failed: %v", m.table, m.lastErr)
		}
	}

	m.hooks.Invoke(OpDelete, After, m, ok)
	return ok
}
