package query

// SortOrder defines the order of the sorted field.
type SortOrder int

const (
	// AscendingOrder sorts the field in the ascending order.
	AscendingOrder SortOrder = iota
	// DescendingOrder sorts the field in the descending order.
	DescendingOrder
)

// String implements fmt.Stringer interface.
func (o SortOrder) String() string {
	if o == DescendingOrder {
		return "DESC"
	}
	return "ASC"
}

// SortField is a single order by entry. Either Column or Func must be set -
// an entry with neither is a misuse reported by the builder at statement
// build time.
type SortField struct {
	// Column is the ordered column name.
	Column string

	// Func is an optional SQL function the ordering is computed over,
	// i.e. 'RAND()'. When set without a column the function output alone
	// defines the ordering.
	Func string

	// Order defines the sorting order.
	Order SortOrder
}

// Asc creates an ascending sort field for the 'column'.
func Asc(column string) SortField {
	return SortField{Column: column, Order: AscendingOrder}
}

// Desc creates a descending sort field for the 'column'.
func Desc(column string) SortField {
	return SortField{Column: column, Order: DescendingOrder}
}
