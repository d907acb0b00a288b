// Package namer resolves the storage table names out of the model type names.
package namer

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// Style defines the casing transform applied to the resolved table name.
type Style int

// Casing styles for the resolved table names.
const (
	// StyleNone leaves the name as-is after the optional pluralization.
	StyleNone Style = iota
	// StyleCamel formats the name into 'CamelCaseModel'.
	StyleCamel
	// StyleLowerCamel formats the name into 'camelCaseModel'.
	StyleLowerCamel
	// StyleSnake formats the name into 'snake_case_model'.
	StyleSnake
	// StyleUpper formats the name into 'UPPERCASE'.
	StyleUpper
	// StyleLower formats the name into 'lowercase'.
	StyleLower
)

// ParseStyle gets the Style out of its config string representation. Unknown
// values map to StyleNone.
func ParseStyle(s string) Style {
	switch s {
	case "camel":
		return StyleCamel
	case "lowercamel":
		return StyleLowerCamel
	case "snake":
		return StyleSnake
	case "upper":
		return StyleUpper
	case "lower":
		return StyleLower
	}
	return StyleNone
}

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_model'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingCamel is a Namer function that converts the 'raw' into the 'CamelCaseModel'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'raw' into the 'camelCaseModel'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// Resolve derives the storage table name from the provided 'typeName'.
// Any package or namespace qualifier is stripped first, keeping only the
// terminal identifier segment. When 'pluralize' is set the bare name goes
// through the inflection dictionary. At last exactly one casing transform
// selected by 'style' is applied.
func Resolve(typeName string, pluralize bool, style Style) string {
	name := stripQualifier(typeName)
	if pluralize {
		name = inflection.Plural(name)
	}

	switch style {
	case StyleCamel:
		return NamingCamel(name)
	case StyleLowerCamel:
		return NamingLowerCamel(name)
	case StyleSnake:
		return NamingSnake(name)
	case StyleUpper:
		return strings.ToUpper(name)
	case StyleLower:
		return strings.ToLower(name)
	}
	return name
}

func stripQualifier(typeName string) string {
	if i := strings.LastIndexAny(typeName, "./\\"); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}
