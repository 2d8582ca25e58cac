package validation

import (
	"fmt"
	"reflect"
	"testing"
)

func TestConstraint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		c         Constraint
		kind      Kind
		str       string
		supported bool
	}{
		{"zero value", Constraint{}, KindAny, "any", true},
		{"any", Any(), KindAny, "any", true},
		{"int", TypeOf[int](), KindType, "int", true},
		{"interface", TypeOf[fmt.Stringer](), KindType, "fmt.Stringer", true},
		{"empty interface is any", TypeOf[any](), KindAny, "any", true},
		{"nil type is none", Type(nil), KindNone, "none", true},
		{"none", None(), KindNone, "none", true},
		{"slice", TypeOf[[]int](), KindType, "[]int", true},
		{"union", Union(TypeOf[int](), None()), KindUnion, "union(int, none)", false},
		{"optional", Optional(TypeOf[string]()), KindOptional, "optional(string)", false},
		{"elements", ElementsOf(TypeOf[int]()), KindElements, "elements(int)", false},
		{"nested", ElementsOf(Union(TypeOf[int](), TypeOf[string]())), KindElements, "elements(union(int, string))", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.c.Kind() != tt.kind {
				t.Fatalf("Kind() = %s, want %s", tt.c.Kind(), tt.kind)
			}
			if tt.c.String() != tt.str {
				t.Fatalf("String() = %q, want %q", tt.c.String(), tt.str)
			}
			if tt.c.Supported() != tt.supported {
				t.Fatalf("Supported() = %v, want %v", tt.c.Supported(), tt.supported)
			}
			if tt.c.IsAny() != (tt.kind == KindAny) {
				t.Fatalf("IsAny() = %v for kind %s", tt.c.IsAny(), tt.kind)
			}
		})
	}
}

func TestConstraint_Type(t *testing.T) {
	t.Parallel()

	if got := TypeOf[int]().Type(); got != reflect.TypeOf(0) {
		t.Fatalf("TypeOf[int]().Type() = %v", got)
	}
	if got := None().Type(); got != nil {
		t.Fatalf("None().Type() = %v, want nil", got)
	}
	if got := Kind(200).String(); got != "unknown" {
		t.Fatalf("Kind(200).String() = %q", got)
	}
}

func TestUnion_CopiesArguments(t *testing.T) {
	t.Parallel()

	cs := []Constraint{TypeOf[int](), TypeOf[string]()}
	u := Union(cs...)
	cs[0] = None()
	if u.String() != "union(int, string)" {
		t.Fatalf("Union retained caller slice: %s", u)
	}
}
