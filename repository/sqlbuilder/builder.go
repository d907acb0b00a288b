// Package sqlbuilder implements the query.Builder interface over a sqlx
// database handle. The fluent mutators stage the pending statement state,
// the terminal operations assemble a statement out of it, execute it and
// clear the state - successful or not - so consecutive statements never
// share predicates.
package sqlbuilder

import (
	"github.com/jmoiron/sqlx"

	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
	"github.com/tabulaorm/tabula/log"
	"github.com/tabulaorm/tabula/query"
)

// Compile time check for the query.Builder implementation.
var _ query.Builder = &Builder{}

// Builder is the sqlx backed query.Builder implementation.
type Builder struct {
	db      *sqlx.DB
	state   state
	lastErr error
}

// New creates a new Builder over the provided sqlx database handle.
func New(db *sqlx.DB) *Builder {
	return &Builder{db: db}
}

// state is the pending statement state accumulated by the fluent mutators.
type state struct {
	wheres   []predicate
	joins    []join
	joinCols []string
	groupBys []string
	orders   []query.SortField
	limit    *int64
	offset   *int64

	// err records a staging misuse, i.e. a join condition without any
	// join target. It fails the next terminal operation.
	err error
}

type predicate struct {
	or     bool
	group  bool
	nested []predicate
	expr   string
	values []interface{}
}

type join struct {
	kind  query.JoinKind
	table string
	conds []predicate
}

// conditions collects the predicates of a nested subtree.
type conditions struct {
	list []predicate
}

// Where implements query.Conditions interface.
func (c *conditions) Where(cond string, values ...interface{}) {
	c.list = append(c.list, predicate{expr: cond, values: values})
}

// OrWhere implements query.Conditions interface.
func (c *conditions) OrWhere(cond string, values ...interface{}) {
	c.list = append(c.list, predicate{or: true, expr: cond, values: values})
}

// Where implements query.Conditions interface.
func (b *Builder) Where(cond string, values ...interface{}) {
	b.state.wheres = append(b.state.wheres, predicate{expr: cond, values: values})
}

// OrWhere implements query.Conditions interface.
func (b *Builder) OrWhere(cond string, values ...interface{}) {
	b.state.wheres = append(b.state.wheres, predicate{or: true, expr: cond, values: values})
}

// GroupWhere implements query.Builder interface.
func (b *Builder) GroupWhere(cond string, values ...interface{}) {
	b.state.wheres = append(b.state.wheres, predicate{group: true, expr: cond, values: values})
}

// OrGroupWhere implements query.Builder interface.
func (b *Builder) OrGroupWhere(cond string, values ...interface{}) {
	b.state.wheres = append(b.state.wheres, predicate{or: true, group: true, expr: cond, values: values})
}

// NestedWhere implements query.Builder interface.
func (b *Builder) NestedWhere(fn func(sub query.Conditions)) {
	sub := &conditions{}
	fn(sub)
	b.state.wheres = append(b.state.wheres, predicate{nested: sub.list})
}

// OrNestedWhere implements query.Builder interface.
func (b *Builder) OrNestedWhere(fn func(sub query.Conditions)) {
	sub := &conditions{}
	fn(sub)
	b.state.wheres = append(b.state.wheres, predicate{or: true, nested: sub.list})
}

// Join implements query.Builder interface.
func (b *Builder) Join(table string, kind query.JoinKind) {
	b.state.joins = append(b.state.joins, join{kind: kind, table: table})
}

// JoinCond implements query.Builder interface.
func (b *Builder) JoinCond(cond string, values ...interface{}) {
	b.joinCond(predicate{expr: cond, values: values})
}

// OrJoinCond implements query.Builder interface.
func (b *Builder) OrJoinCond(cond string, values ...interface{}) {
	b.joinCond(predicate{or: true, expr: cond, values: values})
}

func (b *Builder) joinCond(p predicate) {
	if len(b.state.joins) == 0 {
		if b.state.err == nil {
			b.state.err = errors.Newf(class.QueryJoinNoTarget, "join condition '%s' provided without a join target", p.expr)
		}
		return
	}
	last := &b.state.joins[len(b.state.joins)-1]
	last.conds = append(last.conds, p)
}

// JoinCols implements query.Builder interface.
func (b *Builder) JoinCols(columns ...string) {
	b.state.joinCols = append(b.state.joinCols, columns...)
}

// GroupBy implements query.Builder interface.
func (b *Builder) GroupBy(columns ...string) {
	b.state.groupBys = append(b.state.groupBys, columns...)
}

// OrderBy implements query.Builder interface.
func (b *Builder) OrderBy(fields ...query.SortField) {
	b.state.orders = append(b.state.orders, fields...)
}

// Limit implements query.Builder interface.
func (b *Builder) Limit(limit int64) {
	b.state.limit = &limit
}

// Offset implements query.Builder interface.
func (b *Builder) Offset(offset int64) {
	b.state.offset = &offset
}

// LastError implements query.Builder interface.
func (b *Builder) LastError() error {
	return b.lastErr
}

// Insert implements query.Builder interface.
func (b *Builder) Insert(table string, data map[string]interface{}) bool {
	defer b.reset()

	stmt, args, err := buildInsert(table, data)
	if err != nil {
		b.lastErr = err
		return false
	}
	return b.exec(stmt, args)
}

// Select implements query.Builder interface.
func (b *Builder) Select(table string, columns []query.ColumnSpec) query.Result {
	defer b.reset()

	if b.state.err != nil {
		b.lastErr = b.state.err
		return query.ErrResult(b.lastErr)
	}

	stmt, args, err := buildSelect(table, columns, &b.state)
	if err != nil {
		b.lastErr = err
		return query.ErrResult(err)
	}

	log.Debugf("Executing: %s", stmt)
	r, err := b.db.Queryx(b.db.Rebind(stmt), args...)
	if err != nil {
		b.lastErr = errors.New(class.QueryExecutionFailed, err.Error())
		return query.ErrResult(b.lastErr)
	}
	return &rows{r}
}

// Update implements query.Builder interface.
func (b *Builder) Update(table string, columns map[string]interface{}) bool {
	defer b.reset()

	stmt, args, err := buildUpdate(table, columns, &b.state)
	if err != nil {
		b.lastErr = err
		return false
	}
	return b.exec(stmt, args)
}

// Delete implements query.Builder interface.
func (b *Builder) Delete(table string) bool {
	defer b.reset()

	stmt, args, err := buildDelete(table, &b.state)
	if err != nil {
		b.lastErr = err
		return false
	}
	return b.exec(stmt, args)
}

func (b *Builder) exec(stmt string, args []interface{}) bool {
	if b.state.err != nil {
		b.lastErr = b.state.err
		return false
	}

	log.Debugf("Executing: %s", stmt)
	if _, err := b.db.Exec(b.db.Rebind(stmt), args...); err != nil {
		b.lastErr = errors.New(class.QueryExecutionFailed, err.Error())
		return false
	}
	return true
}

func (b *Builder) reset() {
	b.state = state{}
}
