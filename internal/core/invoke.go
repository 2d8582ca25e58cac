package core

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typed/errors"
	"github.com/ygrebnov/typed/validation"
)

// Invoke calls the wrapped function with the values of b, filling in defaults
// for parameters that were not supplied, and returns its results unchanged.
func (s *Signature) Invoke(b *Binding) ([]any, error) {
	in := make([]reflect.Value, 0, len(s.params)+len(b.rest))
	for i, p := range s.params {
		if p.Variadic {
			for j, v := range b.rest {
				rv, err := argValue(p, j, v)
				if err != nil {
					return nil, err
				}
				in = append(in, rv)
			}
			continue
		}

		v := b.values[i]
		if !b.supplied[i] {
			if !p.HasDefault {
				return nil, errorc.With(errors.ErrMissingArgument, errorc.String(errors.ErrorFieldParamName, p.Name))
			}
			v = p.Default
		}
		rv, err := argValue(p, -1, v)
		if err != nil {
			return nil, err
		}
		in = append(in, rv)
	}

	out := s.fn.Call(in)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

// argValue converts v for passing as p. A value the Go parameter type cannot
// hold is reported as a mismatch against that type.
func argValue(p Parameter, index int, v any) (reflect.Value, error) {
	if v == nil && nillable(p.Type) {
		return reflect.Zero(p.Type), nil
	}
	if err := validation.CheckElement(p.Name, p.Position, index, v, validation.Type(p.Type)); err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(v), nil
}
