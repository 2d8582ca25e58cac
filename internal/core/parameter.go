package core

import (
	"reflect"

	"github.com/ygrebnov/typed/validation"
)

// Parameter describes one declared parameter of a wrapped function.
type Parameter struct {
	Name     string
	Position int
	// Type is the Go type a bound value must be assignable to.
	// For the variadic parameter it is the element type.
	Type       reflect.Type
	Constraint validation.Constraint
	HasDefault bool
	Default    any
	NamedOnly  bool
	Variadic   bool
}

// Declarations carries per-parameter settings collected from options.
// Entries apply in order; later entries for the same name win.
type Declarations struct {
	Names       []string
	Constraints []NamedConstraint
	Defaults    []NamedDefault
	NamedOnly   []string
}

type NamedConstraint struct {
	Name       string
	Constraint validation.Constraint
}

type NamedDefault struct {
	Name  string
	Value any
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
