package query

// TimestampMark is the builder-level marker value that makes the database
// compute the current timestamp at execution time instead of binding a
// caller-provided value.
type TimestampMark struct{}

// CurrentTimestamp is the marker written as a column value to let the
// database fill in its current timestamp.
var CurrentTimestamp = TimestampMark{}

// IsCurrentTimestamp checks if the provided value is the current timestamp
// marker.
func IsCurrentTimestamp(value interface{}) bool {
	_, ok := value.(TimestampMark)
	return ok
}
