package core

import (
	"reflect"
	"slices"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typed/errors"
)

// Binding maps the parameters of one call to the values supplied for them.
// It is built per call and discarded afterwards.
type Binding struct {
	values   []any
	supplied []bool
	// rest holds the values bound to the variadic parameter.
	rest []any
}

// Supplied reports whether a value was supplied for the parameter at position i.
func (b *Binding) Supplied(i int) bool { return b.supplied[i] }

// Value returns the value supplied for the parameter at position i.
func (b *Binding) Value(i int) any { return b.values[i] }

// Rest returns the values bound to the variadic parameter.
func (b *Binding) Rest() []any { return b.rest }

// Bind maps positional args and named args to parameters.
// Positional values fill the positional parameters in declaration order,
// surplus values go to the variadic parameter. Named values bind by name.
func (s *Signature) Bind(args []any, named map[string]any) (*Binding, error) {
	b := &Binding{
		values:   make([]any, len(s.params)),
		supplied: make([]bool, len(s.params)),
	}

	for i, arg := range args {
		if i < len(s.positional) {
			pi := s.positional[i]
			b.values[pi] = arg
			b.supplied[pi] = true
			continue
		}
		if s.variadic < 0 {
			return nil, errorc.With(
				errors.ErrTooManyArguments,
				errorc.String(errors.ErrorFieldFuncType, s.typ.String()),
				errorc.String(errors.ErrorFieldArgCount, strconv.Itoa(len(args))),
			)
		}
		b.rest = append(b.rest, arg)
	}
	if s.variadic >= 0 && len(b.rest) > 0 {
		b.supplied[s.variadic] = true
	}

	if len(named) == 0 {
		return b, nil
	}
	// Bind in name order so the reported error does not depend on map iteration.
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		i, err := s.lookup(name)
		if err != nil {
			return nil, err
		}
		if b.supplied[i] {
			return nil, errorc.With(errors.ErrDuplicateArgument, errorc.String(errors.ErrorFieldParamName, name))
		}
		if i == s.variadic {
			rest, err := s.spread(name, named[name])
			if err != nil {
				return nil, err
			}
			b.rest = rest
		} else {
			b.values[i] = named[name]
		}
		b.supplied[i] = true
	}
	return b, nil
}

// spread unpacks a slice passed by name to the variadic parameter.
func (s *Signature) spread(name string, v any) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(s.typ.In(s.variadic)) {
		return nil, errorc.With(
			errors.ErrInvalidVariadic,
			errorc.String(errors.ErrorFieldParamName, name),
			errorc.String(errors.ErrorFieldParamType, s.typ.In(s.variadic).String()),
			errorc.String(errors.ErrorFieldValueType, rv.Type().String()),
		)
	}
	rest := make([]any, rv.Len())
	for j := range rest {
		rest[j] = rv.Index(j).Interface()
	}
	return rest, nil
}
