package tabula

import (
	"reflect"

	"github.com/tabulaorm/tabula/config"
)

// Descriptor defines a single domain entity's model: its table identity,
// hook registrations and an optional soft deletion override. A zero value
// descriptor is valid - the table is then resolved from the type name, when
// one is given, and no hooks are registered.
type Descriptor struct {
	// Table is the explicit table name. When empty and auto table naming
	// is enabled the name is resolved out of TypeName.
	Table string

	// TypeName is the entity's type name used for the table resolution.
	// A namespace or package qualifier is allowed and gets stripped.
	TypeName string

	// SoftDelete overrides the global soft deletion config for this
	// entity when non-nil.
	SoftDelete *config.SoftDelete

	// Hooks are the entity's lifecycle hook registrations.
	Hooks *HookRegistry
}

// DescriptorOf creates a Descriptor for the provided entity value, taking
// the type name through reflection. Pointer indirections are followed.
func DescriptorOf(entity interface{}) Descriptor {
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return Descriptor{}
	}
	return Descriptor{TypeName: t.Name()}
}
