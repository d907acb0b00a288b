package tabula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tabulaorm/tabula/config"
	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
	"github.com/tabulaorm/tabula/query"
	"github.com/tabulaorm/tabula/query/mocks"
)

// okResult is a result stub for the successful selects.
type okResult struct{}

func (okResult) Next() bool                           { return false }
func (okResult) Scan(...interface{}) error            { return nil }
func (okResult) MapScan(map[string]interface{}) error { return nil }
func (okResult) Columns() ([]string, error)           { return nil, nil }
func (okResult) Err() error                           { return nil }
func (okResult) Close() error                         { return nil }

func TestNewModel(t *testing.T) {
	t.Run("PresetTable", func(t *testing.T) {
		m := New(&mocks.Builder{}, Descriptor{Table: "Users"}, &config.Config{})
		assert.Equal(t, "Users", m.Table())
	})

	t.Run("PresetTableWithAutoNaming", func(t *testing.T) {
		// Explicit table names are never overwritten by the resolution.
		m := New(&mocks.Builder{}, Descriptor{Table: "Users", TypeName: "Account"}, &config.Config{AutoTableNaming: true})
		assert.Equal(t, "Users", m.Table())
	})

	t.Run("AutoResolved", func(t *testing.T) {
		cfg := &config.Config{
			AutoTableNaming:    true,
			PluralizeTableName: true,
			TableNameStyle:     "snake",
		}
		m := New(&mocks.Builder{}, Descriptor{TypeName: "app.models.UserAccount"}, cfg)
		assert.Equal(t, "user_accounts", m.Table())
	})

	t.Run("AutoNamingDisabled", func(t *testing.T) {
		m := New(&mocks.Builder{}, Descriptor{TypeName: "User"}, &config.Config{})
		assert.Equal(t, "", m.Table())
	})

	t.Run("FromEntity", func(t *testing.T) {
		type Comment struct{}
		m := NewFor(&mocks.Builder{}, &Comment{}, &config.Config{AutoTableNaming: true, TableNameStyle: "lower"})
		assert.Equal(t, "comment", m.Table())
	})

	t.Run("InitHooks", func(t *testing.T) {
		var order []string
		hooks := NewHookRegistry().
			Register(OpInit, Before, func(args ...interface{}) {
				order = append(order, "before")
				// the before init hook may still pre-set the table
				args[0].(*Model).SetTable("overridden")
			}).
			Register(OpInit, After, func(args ...interface{}) {
				order = append(order, "after")
			})

		m := New(&mocks.Builder{}, Descriptor{TypeName: "User", Hooks: hooks}, &config.Config{AutoTableNaming: true})
		assert.Equal(t, []string{"before", "after"}, order)
		assert.Equal(t, "overridden", m.Table())
	})
}

func TestCreate(t *testing.T) {
	data := map[string]interface{}{"name": "tabula"}

	t.Run("Success", func(t *testing.T) {
		b := &mocks.Builder{}
		b.On("Insert", "users", data).Return(true).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		assert.True(t, m.Create(data))
		assert.NoError(t, m.LastError())
		b.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		execErr := errors.New(class.QueryExecutionFailed, "constraint violated")

		b := &mocks.Builder{}
		b.On("Insert", "users", data).Return(false).Once()
		b.On("LastError").Return(execErr).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		assert.False(t, m.Create(data))
		assert.Equal(t, execErr, m.LastError())
		b.AssertExpectations(t)
	})

	t.Run("ErrorKeptAfterSuccess", func(t *testing.T) {
		execErr := errors.New(class.QueryExecutionFailed, "constraint violated")

		b := &mocks.Builder{}
		b.On("Insert", "users", data).Return(false).Once()
		b.On("LastError").Return(execErr).Once()
		b.On("Insert", "users", data).Return(true).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		require.False(t, m.Create(data))
		require.True(t, m.Create(data))
		// the last error is overwritten by failures only
		assert.Equal(t, execErr, m.LastError())
	})
}

func TestSelect(t *testing.T) {
	t.Run("PassThrough", func(t *testing.T) {
		columns := query.Cols("id", "name")

		b := &mocks.Builder{}
		b.On("Select", "users", columns).Return(okResult{}).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		res := m.Select(columns...)
		assert.Equal(t, okResult{}, res)
		assert.NoError(t, m.LastError())
		b.AssertExpectations(t)
	})

	t.Run("FunctionColumn", func(t *testing.T) {
		columns := []query.ColumnSpec{query.FuncCol("COUNT", "id", "total")}

		b := &mocks.Builder{}
		b.On("Select", "users", columns).Return(okResult{}).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		m.Select(columns...)
		b.AssertExpectations(t)
	})

	t.Run("FailureRecorded", func(t *testing.T) {
		execErr := errors.New(class.QueryExecutionFailed, "malformed query")

		b := &mocks.Builder{}
		b.On("Select", "users", mock.Anything).Return(query.ErrResult(execErr)).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		res := m.Select()
		assert.False(t, res.Next())
		assert.Equal(t, execErr, res.Err())
		assert.Equal(t, execErr, m.LastError())
	})
}

func TestUpdate(t *testing.T) {
	columns := map[string]interface{}{"name": "renamed"}

	t.Run("Success", func(t *testing.T) {
		b := &mocks.Builder{}
		b.On("Update", "users", columns).Return(true).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		assert.True(t, m.Update(columns))
		b.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		execErr := errors.New(class.QueryExecutionFailed, "no such column")

		b := &mocks.Builder{}
		b.On("Update", "users", columns).Return(false).Once()
		b.On("LastError").Return(execErr).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		assert.False(t, m.Update(columns))
		assert.Equal(t, execErr, m.LastError())
	})
}

func TestDelete(t *testing.T) {
	t.Run("PassThrough", func(t *testing.T) {
		b := &mocks.Builder{}
		b.On("Delete", "users").Return(true).Once()

		m := New(b, Descriptor{Table: "users"}, &config.Config{})
		assert.True(t, m.Delete())
		b.AssertExpectations(t)
		b.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("SoftDeleteBool", func(t *testing.T) {
		b := &mocks.Builder{}
		b.On("Update", "users", map[string]interface{}{"removed": true}).Return(true).Once()

		desc := Descriptor{
			Table:      "users",
			SoftDelete: &config.SoftDelete{Enabled: true, Column: "removed", Value: "bool"},
		}
		m := New(b, desc, &config.Config{})
		assert.True(t, m.Delete())
		b.AssertExpectations(t)
		b.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("SoftDeleteTimestamp", func(t *testing.T) {
		b := &mocks.Builder{}
		b.On("Update", "users", map[string]interface{}{"deleted_at": query.CurrentTimestamp}).Return(true).Once()

		desc := Descriptor{
			Table:      "users",
			SoftDelete: &config.SoftDelete{Enabled: true, Column: "deleted_at", Value: "timestamp"},
		}
		m := New(b, desc, &config.Config{})
		assert.True(t, m.Delete())
		b.AssertExpectations(t)
		b.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("SoftDeleteLifecycle", func(t *testing.T) {
		// The rewritten mutation goes through the update path, so the
		// update hooks fire inside the delete hook envelope.
		var order []string
		hooks := NewHookRegistry().
			Register(OpDelete, Before, func(...interface{}) { order = append(order, "before delete") }).
			Register(OpUpdate, Before, func(...interface{}) { order = append(order, "before update") }).
			Register(OpUpdate, After, func(...interface{}) { order = append(order, "after update") }).
			Register(OpDelete, After, func(...interface{}) { order = append(order, "after delete") })

		b := &mocks.Builder{}
		b.On("Update", "users", mock.Anything).Return(true).Once()

		desc := Descriptor{
			Table:      "users",
			SoftDelete: &config.SoftDelete{Enabled: true, Column: "deleted_at", Value: "timestamp"},
			Hooks:      hooks,
		}
		m := New(b, desc, &config.Config{})
		require.True(t, m.Delete())
		assert.Equal(t, []string{"before delete", "before update", "after update", "after delete"}, order)
	})

	t.Run("Failure", func(t *testing.T) {
		execErr := errors.New(class.QueryExecutionFailed, "locked")

		var afterFired bool
		hooks := NewHookRegistry().
			Register(OpDelete, After, func(...interface{}) { afterFired = true })

		b := &mocks.Builder{}
		b.On("Delete", "users").Return(false).Once()
		b.On("LastError").Return(execErr).Once()

		m := New(b, Descriptor{Table: "users", Hooks: hooks}, &config.Config{})
		assert.False(t, m.Delete())
		assert.Equal(t, execErr, m.LastError())
		assert.True(t, afterFired)
	})
}

// TestHookLifecycle checks that the before and after hooks fire in the
// registration order exactly once per operation, with after firing also when
// the operation reports failure.
func TestHookLifecycle(t *testing.T) {
	data := map[string]interface{}{"name": ""}

	var order []string
	hooks := NewHookRegistry().
		Register(OpCreate, Before, func(...interface{}) { order = append(order, "before 1") }).
		Register(OpCreate, Before, func(...interface{}) { order = append(order, "before 2") }).
		Register(OpCreate, After, func(args ...interface{}) {
			order = append(order, "after")
			assert.Equal(t, false, args[len(args)-1])
		})

	execErr := errors.New(class.QueryExecutionFailed, "not null violated")

	b := &mocks.Builder{}
	b.On("Insert", "users", data).Return(false).Once()
	b.On("LastError").Return(execErr).Once()

	m := New(b, Descriptor{Table: "users", Hooks: hooks}, &config.Config{})
	require.False(t, m.Create(data))
	assert.Equal(t, []string{"before 1", "before 2", "after"}, order)
}

// TestValidationHook is the end-to-end scenario: a before create hook does
// the validation - the model itself validates nothing and forwards the
// insert regardless.
func TestValidationHook(t *testing.T) {
	data := map[string]interface{}{"name": ""}

	var rejected int
	hooks := NewHookRegistry().
		Register(OpCreate, Before, func(args ...interface{}) {
			if d, ok := args[1].(map[string]interface{}); ok && d["name"] == "" {
				rejected++
			}
		})

	b := &mocks.Builder{}
	b.On("Insert", "Users", data).Return(true).Once()

	m := New(b, Descriptor{Table: "Users", Hooks: hooks}, &config.Config{})
	assert.True(t, m.Create(data))
	assert.Equal(t, 1, rejected)
	b.AssertExpectations(t)
}

// TestFluentStagesOnly checks that the fluent surface forwards to the
// builder, returns the model for chaining and never executes a statement or
// dispatches a hook.
func TestFluentStagesOnly(t *testing.T) {
	var hookFired bool
	hooks := NewHookRegistry()
	for _, op := range []Operation{OpCreate, OpSelect, OpUpdate, OpDelete} {
		hooks.Register(op, Before, func(...interface{}) { hookFired = true })
		hooks.Register(op, After, func(...interface{}) { hookFired = true })
	}

	b := &mocks.Builder{}
	b.On("Where", "id = ?", []interface{}{1}).Once()
	b.On("OrWhere", "name = ?", []interface{}{"tabula"}).Once()
	b.On("GroupWhere", "a = ? AND b = ?", []interface{}{1, 2}).Once()
	b.On("Join", "accounts", query.LeftJoin).Once()
	b.On("JoinCond", "accounts.user_id = users.id", []interface{}(nil)).Once()
	b.On("JoinCols", []string{"accounts.balance"}).Once()
	b.On("GroupBy", []string{"name"}).Once()
	b.On("OrderBy", []query.SortField{query.Desc("created_at")}).Once()
	b.On("Limit", int64(10)).Once()
	b.On("Offset", int64(20)).Once()

	m := New(b, Descriptor{Table: "users", Hooks: hooks}, &config.Config{})
	chained := m.Where("id = ?", 1).
		OrWhere("name = ?", "tabula").
		GroupWhere("a = ? AND b = ?", 1, 2).
		Join("accounts", query.LeftJoin).
		JoinCond("accounts.user_id = users.id").
		JoinCols("accounts.balance").
		GroupBy("name").
		OrderBy(query.Desc("created_at")).
		Limit(10).
		Offset(20)

	assert.Same(t, m, chained)
	assert.False(t, hookFired)
	b.AssertExpectations(t)
	b.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	b.AssertNotCalled(t, "Select", mock.Anything, mock.Anything)
	b.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	b.AssertNotCalled(t, "Delete", mock.Anything)
}

// TestSharedHooksFolded checks that the process wide hooks registered for
// the table fire for every new instance, after the instance's own hooks.
func TestSharedHooksFolded(t *testing.T) {
	defer ResetSharedHooks("audited")

	var order []string
	RegisterSharedHook("audited", OpCreate, Before, func(...interface{}) {
		order = append(order, "shared")
	})

	hooks := NewHookRegistry().
		Register(OpCreate, Before, func(...interface{}) { order = append(order, "instance") })

	b := &mocks.Builder{}
	b.On("Insert", "audited", mock.Anything).Return(true).Once()

	m := New(b, Descriptor{Table: "audited", Hooks: hooks}, &config.Config{})
	require.True(t, m.Create(map[string]interface{}{"id": 1}))
	assert.Equal(t, []string{"instance", "shared"}, order)
}
