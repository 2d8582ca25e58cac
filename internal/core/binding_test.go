package core

import (
	"errors"
	"testing"

	typederrors "github.com/ygrebnov/typed/errors"
)

func mustSignature(t *testing.T, fn any, d Declarations) *Signature {
	t.Helper()
	s, err := NewSignature(fn, d)
	if err != nil {
		t.Fatalf("NewSignature error: %v", err)
	}
	return s
}

func TestSignature_Bind(t *testing.T) {
	t.Parallel()

	abc := Declarations{Names: []string{"a", "b", "c"}}

	tests := []struct {
		name         string
		decl         Declarations
		args         []any
		named        map[string]any
		wantErr      error
		wantSupplied []bool
		wantValues   []any
	}{
		{
			name:         "all positional",
			decl:         abc,
			args:         []any{1, "2", 3},
			wantSupplied: []bool{true, true, true},
			wantValues:   []any{1, "2", 3},
		},
		{
			name:         "positional and named",
			decl:         abc,
			args:         []any{1, "2"},
			named:        map[string]any{"c": 3},
			wantSupplied: []bool{true, true, true},
			wantValues:   []any{1, "2", 3},
		},
		{
			name:         "all named",
			decl:         abc,
			named:        map[string]any{"c": 3, "a": 1, "b": "2"},
			wantSupplied: []bool{true, true, true},
			wantValues:   []any{1, "2", 3},
		},
		{
			name:         "partial",
			decl:         abc,
			args:         []any{1},
			wantSupplied: []bool{true, false, false},
			wantValues:   []any{1, nil, nil},
		},
		{
			name:         "explicit nil is supplied",
			decl:         abc,
			args:         []any{nil},
			wantSupplied: []bool{true, false, false},
			wantValues:   []any{nil, nil, nil},
		},
		{
			name:    "too many positional",
			decl:    abc,
			args:    []any{1, "2", 3, 4},
			wantErr: typederrors.ErrTooManyArguments,
		},
		{
			name:    "unknown name",
			decl:    abc,
			named:   map[string]any{"d": 1},
			wantErr: typederrors.ErrUnknownParameter,
		},
		{
			name:    "positional and named for same parameter",
			decl:    abc,
			args:    []any{1, "2"},
			named:   map[string]any{"b": "2"},
			wantErr: typederrors.ErrDuplicateArgument,
		},
		{
			name:         "named-only parameter skipped by positional binding",
			decl:         Declarations{Names: []string{"a", "b", "c"}, NamedOnly: []string{"a"}},
			args:         []any{"2", 3},
			named:        map[string]any{"a": 1},
			wantSupplied: []bool{true, true, true},
			wantValues:   []any{1, "2", 3},
		},
		{
			name:    "named-only parameters reject positional",
			decl:    Declarations{Names: []string{"a", "b", "c"}, NamedOnly: []string{"a", "b", "c"}},
			args:    []any{1},
			wantErr: typederrors.ErrTooManyArguments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := mustSignature(t, threeArgs, tt.decl)
			b, err := s.Bind(tt.args, tt.named)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err != nil {
				if b != nil {
					t.Fatalf("expected nil binding on error")
				}
				return
			}
			for i := range tt.wantSupplied {
				if b.Supplied(i) != tt.wantSupplied[i] {
					t.Fatalf("Supplied(%d) = %v, want %v", i, b.Supplied(i), tt.wantSupplied[i])
				}
				if b.Value(i) != tt.wantValues[i] {
					t.Fatalf("Value(%d) = %v, want %v", i, b.Value(i), tt.wantValues[i])
				}
			}
		})
	}
}

func TestSignature_Bind_Variadic(t *testing.T) {
	t.Parallel()

	s := mustSignature(t, func(prefix string, xs ...int) {}, Declarations{Names: []string{"prefix", "xs"}})

	t.Run("surplus positional", func(t *testing.T) {
		t.Parallel()
		b, err := s.Bind([]any{"p", 1, 2, 3}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.Supplied(1) || len(b.Rest()) != 3 {
			t.Fatalf("unexpected rest: supplied=%v rest=%v", b.Supplied(1), b.Rest())
		}
	})

	t.Run("no variadic values", func(t *testing.T) {
		t.Parallel()
		b, err := s.Bind([]any{"p"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Supplied(1) || len(b.Rest()) != 0 {
			t.Fatalf("variadic must not be supplied")
		}
	})

	t.Run("slice by name", func(t *testing.T) {
		t.Parallel()
		b, err := s.Bind([]any{"p"}, map[string]any{"xs": []int{4, 5}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rest := b.Rest()
		if len(rest) != 2 || rest[0] != 4 || rest[1] != 5 {
			t.Fatalf("Rest() = %v, want [4 5]", rest)
		}
	})

	t.Run("non-slice by name", func(t *testing.T) {
		t.Parallel()
		_, err := s.Bind([]any{"p"}, map[string]any{"xs": 4})
		if !errors.Is(err, typederrors.ErrInvalidVariadic) {
			t.Fatalf("expected ErrInvalidVariadic, got %v", err)
		}
	})

	t.Run("positional surplus and name", func(t *testing.T) {
		t.Parallel()
		_, err := s.Bind([]any{"p", 1}, map[string]any{"xs": []int{4}})
		if !errors.Is(err, typederrors.ErrDuplicateArgument) {
			t.Fatalf("expected ErrDuplicateArgument, got %v", err)
		}
	})
}
