package typed

import (
	"reflect"

	"github.com/ygrebnov/typed/validation"
)

type (
	Constraint    = validation.Constraint
	ArgumentError = validation.ArgumentError
)

// TypeOf returns the constraint satisfied by values of type T, values
// assignable to T, and implementations of T when T is an interface.
func TypeOf[T any]() Constraint { return validation.TypeOf[T]() }

// Type is TypeOf for a reflect.Type. Type(nil) is None().
func Type(t reflect.Type) Constraint { return validation.Type(t) }

// None returns the constraint satisfied only by nil.
func None() Constraint { return validation.None() }

// Any returns the empty constraint.
func Any() Constraint { return validation.Any() }

// Union declares a value matching any of cs. Matches does not evaluate unions.
func Union(cs ...Constraint) Constraint { return validation.Union(cs...) }

// Optional declares c or none. Matches does not evaluate optionals.
func Optional(c Constraint) Constraint { return validation.Optional(c) }

// ElementsOf declares a collection whose elements satisfy c.
// Matches does not evaluate element constraints.
func ElementsOf(c Constraint) Constraint { return validation.ElementsOf(c) }

// Matches reports whether v satisfies c. Union, Optional and ElementsOf
// constraints yield ErrUnsupportedConstraint.
func Matches(v any, c Constraint) (bool, error) { return validation.Matches(v, c) }
