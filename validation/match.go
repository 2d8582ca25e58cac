package validation

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typed/errors"
)

// Matches reports whether value satisfies c.
//
//   - KindAny accepts every value, including nil.
//   - KindNone accepts only untyped nil.
//   - KindType accepts a non-nil value whose dynamic type is the constraint type,
//     is assignable to it, or implements it when it is an interface.
//
// Any other kind yields ErrUnsupportedConstraint.
func Matches(value any, c Constraint) (bool, error) {
	switch c.kind {
	case KindAny:
		return true, nil
	case KindNone:
		return value == nil, nil
	case KindType:
		if value == nil {
			return false, nil
		}
		return isInstance(reflect.TypeOf(value), c.typ), nil
	default:
		return false, errorc.With(
			errors.ErrUnsupportedConstraint,
			errorc.String(errors.ErrorFieldConstraint, c.String()),
			errorc.String(errors.ErrorFieldConstraintKind, c.kind.String()),
		)
	}
}

func isInstance(valueType, t reflect.Type) bool {
	if valueType == t {
		return true
	}
	// Accept assignable values (identical underlying types, interface implementations).
	if valueType.AssignableTo(t) {
		return true
	}
	return t.Kind() == reflect.Interface && valueType.Implements(t)
}

// Check validates the value bound to the named parameter at position against c.
// It returns *ArgumentError on mismatch and the Matches error for an unsupported c.
func Check(name string, position int, value any, c Constraint) error {
	return check(name, position, -1, value, c)
}

// CheckElement is Check for the index-th element bound to a variadic parameter.
func CheckElement(name string, position, index int, value any, c Constraint) error {
	return check(name, position, index, value, c)
}

func check(name string, position, index int, value any, c Constraint) error {
	ok, err := Matches(value, c)
	if err != nil {
		return errorc.With(err, errorc.String(errors.ErrorFieldParamName, name))
	}
	if ok {
		return nil
	}

	ae := &ArgumentError{
		Parameter:  name,
		Position:   position,
		Index:      index,
		Value:      value,
		Constraint: c,
		Actual:     reflect.TypeOf(value),
	}
	ae.Err = errorc.With(
		errors.ErrArgumentTypeMismatch,
		errorc.String(errors.ErrorFieldParamName, name),
		errorc.String(errors.ErrorFieldParamPosition, strconv.Itoa(position)),
		errorc.String(errors.ErrorFieldConstraint, c.String()),
		errorc.String(errors.ErrorFieldValueType, ae.actualName()),
		errorc.String(errors.ErrorFieldValue, fmt.Sprint(value)),
	)
	if index >= 0 {
		ae.Err = errorc.With(ae.Err, errorc.String(errors.ErrorFieldParamIndex, strconv.Itoa(index)))
	}
	return ae
}
