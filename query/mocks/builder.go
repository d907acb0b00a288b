// Package mocks contains the testify based mock implementations of the query
// package interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/tabulaorm/tabula/query"
)

// Compile time check for the query.Builder implementation.
var _ query.Builder = &Builder{}

// Builder is the query.Builder mock implementation.
type Builder struct {
	mock.Mock
}

// Insert implements query.Builder interface.
func (b *Builder) Insert(table string, data map[string]interface{}) bool {
	return b.Called(table, data).Bool(0)
}

// Select implements query.Builder interface.
func (b *Builder) Select(table string, columns []query.ColumnSpec) query.Result {
	args := b.Called(table, columns)
	if args.Get(0) == nil {
		return query.NoResult()
	}
	return args.Get(0).(query.Result)
}

// Update implements query.Builder interface.
func (b *Builder) Update(table string, columns map[string]interface{}) bool {
	return b.Called(table, columns).Bool(0)
}

// Delete implements query.Builder interface.
func (b *Builder) Delete(table string) bool {
	return b.Called(table).Bool(0)
}

// Where implements query.Conditions interface.
func (b *Builder) Where(cond string, values ...interface{}) {
	b.Called(cond, values)
}

// OrWhere implements query.Conditions interface.
func (b *Builder) OrWhere(cond string, values ...interface{}) {
	b.Called(cond, values)
}

// GroupWhere implements query.Builder interface.
func (b *Builder) GroupWhere(cond string, values ...interface{}) {
	b.Called(cond, values)
}

// OrGroupWhere implements query.Builder interface.
func (b *Builder) OrGroupWhere(cond string, values ...interface{}) {
	b.Called(cond, values)
}

// NestedWhere implements query.Builder interface.
func (b *Builder) NestedWhere(fn func(sub query.Conditions)) {
	b.Called(fn)
}

// OrNestedWhere implements query.Builder interface.
func (b *Builder) OrNestedWhere(fn func(sub query.Conditions)) {
	b.Called(fn)
}

// Join implements query.Builder interface.
func (b *Builder) Join(table string, kind query.JoinKind) {
	b.Called(table, kind)
}

// JoinCond implements query.Builder interface.
func (b *Builder) JoinCond(cond string, values ...interface{}) {
	b.Called(cond, values)
}

// OrJoinCond implements query.Builder interface.
func (b *Builder) OrJoinCond(cond string, values ...interface{}) {
	b.Called(cond, values)
}

// JoinCols implements query.Builder interface.
func (b *Builder) JoinCols(columns ...string) {
	b.Called(columns)
}

// GroupBy implements query.Builder interface.
func (b *Builder) GroupBy(columns ...string) {
	b.Called(columns)
}

// OrderBy implements query.Builder interface.
func (b *Builder) OrderBy(fields ...query.SortField) {
	b.Called(fields)
}

// Limit implements query.Builder interface.
func (b *Builder) Limit(limit int64) {
	b.Called(limit)
}

// Offset implements query.Builder interface.
func (b *Builder) Offset(offset int64) {
	b.Called(offset)
}

// LastError implements query.Builder interface.
func (b *Builder) LastError() error {
	return b.Called().Error(0)
}
