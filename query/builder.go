// Package query defines the boundary contract between the tabula models and
// the underlying statement builders. A Builder accumulates the pending
// predicate, join, grouping, ordering and limit state and consumes it while
// executing one of the terminal operations.
package query

// Builder is the interface used to build and execute the statements for a
// single connection. The fluent mutators only stage the pending state - no
// statement is built until one of the terminal operations runs.
//
// Contract: a Builder clears all of its pending state after every terminal
// operation, whether it succeeded or not, so that consecutive statements on
// the same handle never leak predicates across each other.
type Builder interface {
	Conditions

	// Insert executes the insert statement of 'data' into 'table'.
	// It returns false on failure, the cause is available via LastError.
	Insert(table string, data map[string]interface{}) bool

	// Select executes the select statement over 'table' with the provided
	// columns using the accumulated pending state. An empty column list
	// selects all columns. The returned result reports the execution
	// failures on access - it is never nil.
	Select(table string, columns []ColumnSpec) Result

	// Update executes the update statement setting 'columns' on 'table'
	// using the accumulated predicates. Returns false on failure.
	Update(table string, columns map[string]interface{}) bool

	// Delete executes the delete statement over 'table' using the
	// accumulated predicates. Returns false on failure.
	Delete(table string) bool

	// GroupWhere appends the condition as a parenthesized group joined
	// with AND.
	GroupWhere(cond string, values ...interface{})

	// OrGroupWhere appends the condition as a parenthesized group joined
	// with OR.
	OrGroupWhere(cond string, values ...interface{})

	// NestedWhere stages a nested predicate subtree joined with AND. The
	// conditions staged on 'sub' within 'fn' form the subtree.
	NestedWhere(fn func(sub Conditions))

	// OrNestedWhere stages a nested predicate subtree joined with OR.
	OrNestedWhere(fn func(sub Conditions))

	// Join stages a join of 'table' of the given kind. Conditions for the
	// join are staged afterwards with JoinCond and OrJoinCond.
	Join(table string, kind JoinKind)

	// JoinCond appends an AND condition to the most recently staged join.
	// Without a prior Join the misuse is reported on the next terminal
	// operation.
	JoinCond(cond string, values ...interface{})

	// OrJoinCond appends an OR condition to the most recently staged join.
	OrJoinCond(cond string, values ...interface{})

	// JoinCols stages the columns selected from the joined tables.
	JoinCols(columns ...string)

	// GroupBy stages the group by columns.
	GroupBy(columns ...string)

	// OrderBy stages the order by fields.
	OrderBy(fields ...SortField)

	// Limit stages the maximum number of returned rows.
	Limit(limit int64)

	// Offset stages the number of skipped rows.
	Offset(offset int64)

	// LastError returns the error of the most recent failed operation.
	LastError() error
}

// Conditions is the predicate staging surface shared by the Builder and the
// nested predicate subtrees.
type Conditions interface {
	// Where appends the condition joined with AND. The condition uses '?'
	// placeholders bound to 'values'.
	Where(cond string, values ...interface{})

	// OrWhere appends the condition joined with OR.
	OrWhere(cond string, values ...interface{})
}

// JoinKind defines the type of the staged join clause.
type JoinKind string

// Join kinds understood by the builders.
const (
	InnerJoin JoinKind = "INNER"
	LeftJoin  JoinKind = "LEFT"
	RightJoin JoinKind = "RIGHT"
)
