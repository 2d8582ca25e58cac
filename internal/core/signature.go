package core

import (
	"reflect"
	"slices"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typed/errors"
	"github.com/ygrebnov/typed/validation"
)

// Signature is the immutable, precomputed view of a wrapped function.
type Signature struct {
	fn     reflect.Value
	typ    reflect.Type
	params []Parameter
	index  map[string]int
	// positional lists the parameter indices bindable by position, in order.
	positional []int
	variadic   int // index of the variadic parameter, -1 if none
}

// NewSignature introspects fn once and applies d on top of the parameters
// implied by its Go type.
func NewSignature(fn any, d Declarations) (*Signature, error) {
	if fn == nil {
		return nil, errors.ErrNilFunc
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, errorc.With(errors.ErrNotFunc, errorc.String(errors.ErrorFieldFuncType, v.Type().String()))
	}
	if v.IsNil() {
		return nil, errorc.With(errors.ErrNilFunc, errorc.String(errors.ErrorFieldFuncType, v.Type().String()))
	}

	t := v.Type()
	s := &Signature{
		fn:       v,
		typ:      t,
		params:   slices.Clone(baseParameters(t)),
		variadic: -1,
	}

	if d.Names != nil {
		if err := s.setNames(d.Names); err != nil {
			return nil, err
		}
	}
	s.index = make(map[string]int, len(s.params))
	for i, p := range s.params {
		s.index[p.Name] = i
	}

	for _, nc := range d.Constraints {
		if err := s.setConstraint(nc.Name, nc.Constraint); err != nil {
			return nil, err
		}
	}
	for _, nd := range d.Defaults {
		if err := s.setDefault(nd.Name, nd.Value); err != nil {
			return nil, err
		}
	}
	for _, name := range d.NamedOnly {
		i, err := s.lookup(name)
		if err != nil {
			return nil, err
		}
		if s.params[i].Variadic {
			return nil, errorc.With(errors.ErrInvalidVariadic, errorc.String(errors.ErrorFieldParamName, name))
		}
		s.params[i].NamedOnly = true
	}

	for i, p := range s.params {
		switch {
		case p.Variadic:
			s.variadic = i
		case !p.NamedOnly:
			s.positional = append(s.positional, i)
		}
	}
	return s, nil
}

// Parameters returns a copy of the declared parameters in declaration order.
func (s *Signature) Parameters() []Parameter { return slices.Clone(s.params) }

// Parameter returns the parameter declared under name.
func (s *Signature) Parameter(name string) (Parameter, bool) {
	i, ok := s.index[name]
	if !ok {
		return Parameter{}, false
	}
	return s.params[i], true
}

// Func returns the wrapped function value.
func (s *Signature) Func() reflect.Value { return s.fn }

func (s *Signature) Type() reflect.Type { return s.typ }

func (s *Signature) setNames(names []string) error {
	if len(names) != len(s.params) {
		return errorc.With(
			errors.ErrInvalidNames,
			errorc.String(errors.ErrorFieldFuncType, s.typ.String()),
			errorc.String(errors.ErrorFieldArgCount, strconv.Itoa(len(names))),
		)
	}
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if _, dup := seen[name]; dup || name == "" {
			return errorc.With(
				errors.ErrInvalidNames,
				errorc.String(errors.ErrorFieldParamName, name),
				errorc.String(errors.ErrorFieldParamPosition, strconv.Itoa(i)),
			)
		}
		seen[name] = struct{}{}
		s.params[i].Name = name
	}
	return nil
}

func (s *Signature) lookup(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, errorc.With(
			errors.ErrUnknownParameter,
			errorc.String(errors.ErrorFieldParamName, name),
			errorc.String(errors.ErrorFieldFuncType, s.typ.String()),
		)
	}
	return i, nil
}

// setConstraint declares c for the named parameter. c must be evaluable and
// every value it admits must be passable to the Go parameter type.
func (s *Signature) setConstraint(name string, c validation.Constraint) error {
	i, err := s.lookup(name)
	if err != nil {
		return err
	}
	p := &s.params[i]

	if !c.Supported() {
		return errorc.With(
			errors.ErrUnsupportedConstraint,
			errorc.String(errors.ErrorFieldParamName, name),
			errorc.String(errors.ErrorFieldConstraint, c.String()),
			errorc.String(errors.ErrorFieldConstraintKind, c.Kind().String()),
		)
	}

	var compatible bool
	switch c.Kind() {
	case validation.KindAny:
		compatible = validation.Type(p.Type).IsAny()
	case validation.KindNone:
		compatible = nillable(p.Type)
	case validation.KindType:
		compatible = c.Type().AssignableTo(p.Type)
	}
	if !compatible {
		return errorc.With(
			errors.ErrIncompatibleConstraint,
			errorc.String(errors.ErrorFieldParamName, name),
			errorc.String(errors.ErrorFieldParamType, p.Type.String()),
			errorc.String(errors.ErrorFieldConstraint, c.String()),
		)
	}

	p.Constraint = c
	return nil
}

// setDefault records value as the default of the named parameter.
// Defaults are not checked against the constraint, only against the Go type.
func (s *Signature) setDefault(name string, value any) error {
	i, err := s.lookup(name)
	if err != nil {
		return err
	}
	p := &s.params[i]

	var ok bool
	switch {
	case p.Variadic:
		ok = false
	case value == nil:
		ok = nillable(p.Type)
	default:
		ok = reflect.TypeOf(value).AssignableTo(p.Type)
	}
	if !ok {
		return errorc.With(
			errors.ErrInvalidDefault,
			errorc.String(errors.ErrorFieldParamName, name),
			errorc.String(errors.ErrorFieldParamType, p.Type.String()),
			errorc.String(errors.ErrorFieldValueType, typeName(value)),
		)
	}

	p.HasDefault = true
	p.Default = value
	return nil
}

func typeName(v any) string {
	if v == nil {
		return validation.KindNone.String()
	}
	return reflect.TypeOf(v).String()
}
