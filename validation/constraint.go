package validation

import (
	"reflect"
	"slices"
	"strings"
)

// Kind classifies a Constraint. The set is closed: Matches dispatches on it.
type Kind uint8

const (
	KindAny      Kind = iota // no declared constraint
	KindType                 // plain nominal type
	KindNone                 // absence of a value (untyped nil)
	KindUnion                // one of several constraints; not evaluable
	KindOptional             // constraint or none; not evaluable
	KindElements             // collection of constraint; not evaluable
)

var kindNames = [...]string{
	KindAny:      "any",
	KindType:     "type",
	KindNone:     "none",
	KindUnion:    "union",
	KindOptional: "optional",
	KindElements: "elements",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Constraint is the declared expectation for a parameter value.
// The zero value is unconstrained and matches everything.
type Constraint struct {
	kind Kind
	typ  reflect.Type
	args []Constraint
}

// Any returns the unconstrained Constraint.
func Any() Constraint { return Constraint{} }

// TypeOf returns a nominal Constraint for T. T may be an interface type.
func TypeOf[T any]() Constraint {
	// Capture the static type of T even when T is an interface.
	return Type(reflect.TypeOf((*T)(nil)).Elem())
}

// Type returns a nominal Constraint for t. A nil t denotes the absence of a
// value, the empty interface is satisfied by every value.
func Type(t reflect.Type) Constraint {
	switch {
	case t == nil:
		return None()
	case t.Kind() == reflect.Interface && t.NumMethod() == 0:
		return Any()
	default:
		return Constraint{kind: KindType, typ: t}
	}
}

// None returns the Constraint matched only by untyped nil.
func None() Constraint { return Constraint{kind: KindNone} }

// Union declares a value matching any of cs. Matches does not evaluate unions.
func Union(cs ...Constraint) Constraint {
	return Constraint{kind: KindUnion, args: slices.Clone(cs)}
}

// Optional declares c or none. Matches does not evaluate optionals.
func Optional(c Constraint) Constraint {
	return Constraint{kind: KindOptional, args: []Constraint{c}}
}

// ElementsOf declares a collection whose elements satisfy c.
// Matches does not evaluate element constraints.
func ElementsOf(c Constraint) Constraint {
	return Constraint{kind: KindElements, args: []Constraint{c}}
}

func (c Constraint) Kind() Kind { return c.kind }

// Type returns the nominal type of a KindType constraint and nil otherwise.
func (c Constraint) Type() reflect.Type { return c.typ }

func (c Constraint) IsAny() bool { return c.kind == KindAny }

// Supported reports whether Matches can evaluate c.
func (c Constraint) Supported() bool {
	switch c.kind {
	case KindAny, KindType, KindNone:
		return true
	default:
		return false
	}
}

func (c Constraint) String() string {
	switch c.kind {
	case KindAny, KindNone:
		return c.kind.String()
	case KindType:
		return c.typ.String()
	}
	parts := make([]string, 0, len(c.args))
	for _, a := range c.args {
		parts = append(parts, a.String())
	}
	return c.kind.String() + "(" + strings.Join(parts, ", ") + ")"
}
