package errors

import "github.com/tabulaorm/tabula/errors/class"

// IsClass checks if given error is of given 'c' class.
func IsClass(err error, c class.Class) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Class == c
}

// ClassOf gets the class of the provided error. For errors that are not the
// tabula *Error the zero value class is returned.
func ClassOf(err error) class.Class {
	e, ok := err.(*Error)
	if !ok {
		return class.Class(0)
	}
	return e.Class
}
