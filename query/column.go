package query

// ColumnSpec defines a single selected column. It is either a plain column
// name or a function applied over a column with an optional alias.
type ColumnSpec struct {
	// Func is the SQL function applied over the column, i.e. 'COUNT', 'MAX'.
	Func string

	// Column is the column name.
	Column string

	// Alias is the name the selected value is returned under.
	Alias string
}

// Col creates a plain column spec for the provided 'name'.
func Col(name string) ColumnSpec {
	return ColumnSpec{Column: name}
}

// FuncCol creates a column spec that applies the SQL function 'fn' over the
// 'column' aliased as 'alias'.
func FuncCol(fn, column, alias string) ColumnSpec {
	return ColumnSpec{Func: fn, Column: column, Alias: alias}
}

// Cols maps plain column names into their specs.
func Cols(names ...string) []ColumnSpec {
	specs := make([]ColumnSpec, len(names))
	for i, name := range names {
		specs[i] = Col(name)
	}
	return specs
}
