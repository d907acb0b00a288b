package tabula

import "github.com/tabulaorm/tabula/query"

// The fluent surface stages the pending statement state in the builder and
// returns the model itself for chaining. None of these execute a statement
// or dispatch hooks.

// Where appends the condition joined with AND.
func (m *Model) Where(cond string, values ...interface{}) *Model {
	m.builder.Where(cond, values...)
	return m
}

// OrWhere appends the condition joined with OR.
func (m *Model) OrWhere(cond string, values ...interface{}) *Model {
	m.builder.OrWhere(cond, values...)
	return m
}

// GroupWhere appends the condition as a parenthesized group joined with AND.
func (m *Model) GroupWhere(cond string, values ...interface{}) *Model {
	m.builder.GroupWhere(cond, values...)
	return m
}

// OrGroupWhere appends the condition as a parenthesized group joined with OR.
func (m *Model) OrGroupWhere(cond string, values ...interface{}) *Model {
	m.builder.OrGroupWhere(cond, values...)
	return m
}

// NestedWhere stages a nested predicate subtree joined with AND.
func (m *Model) NestedWhere(fn func(sub query.Conditions)) *Model {
	m.builder.NestedWhere(fn)
	return m
}

// OrNestedWhere stages a nested predicate subtree joined with OR.
func (m *Model) OrNestedWhere(fn func(sub query.Conditions)) *Model {
	m.builder.OrNestedWhere(fn)
	return m
}

// Join stages a join of 'table' of the given kind.
func (m *Model) Join(table string, kind query.JoinKind) *Model {
	m.builder.Join(table, kind)
	return m
}

// JoinCond appends an AND condition to the most recently staged join.
func (m *Model) JoinCond(cond string, values ...interface{}) *Model {
	m.builder.JoinCond(cond, values...)
	return m
}

// OrJoinCond appends an OR condition to the most recently staged join.
func (m *Model) OrJoinCond(cond string, values ...interface{}) *Model {
	m.builder.OrJoinCond(cond, values...)
	return m
}

// JoinCols stages the columns selected from the joined tables.
func (m *Model) JoinCols(columns ...string) *Model {
	m.builder.JoinCols(columns...)
	return m
}

// GroupBy stages the group by columns.
func (m *Model) GroupBy(columns ...string) *Model {
	m.builder.GroupBy(columns...)
	return m
}

// OrderBy stages the order by fields.
func (m *Model) OrderBy(fields ...query.SortField) *Model {
	m.builder.OrderBy(fields...)
	return m
}

// Limit stages the maximum number of returned rows.
func (m *Model) Limit(limit int64) *Model {
	m.builder.Limit(limit)
	return m
}

// Offset stages the number of skipped rows.
func (m *Model) Offset(offset int64) *Model {
	m.builder.Offset(offset)
	return m
}
