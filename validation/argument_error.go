package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// ArgumentError reports an argument whose runtime type does not satisfy the
// declared constraint of its parameter.
// It unwraps to the underlying cause so callers can use errors.Is/As.
type ArgumentError struct {
	Parameter  string       // declared parameter name
	Position   int          // declared parameter position
	Index      int          // element index for a variadic parameter, -1 otherwise
	Value      any          // offending value as supplied
	Constraint Constraint   // declared constraint
	Actual     reflect.Type // runtime type of Value; nil for untyped nil
	Err        error        // ErrArgumentTypeMismatch with structured fields
}

// Error reports the argument in readable form. The structured fields stay on Err.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %s=%v: expected %s, got %s", e.path(), e.Value, e.Constraint, e.actualName())
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// MarshalJSON exports ArgumentError as an object with parameter, expected, actual, and message fields.
func (e *ArgumentError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Parameter string `json:"parameter"`
		Position  int    `json:"position"`
		Index     *int   `json:"index,omitempty"`
		Expected  string `json:"expected"`
		Actual    string `json:"actual"`
		Message   string `json:"message"`
	}{
		Parameter: e.Parameter,
		Position:  e.Position,
		Index:     e.indexPtr(),
		Expected:  e.Constraint.String(),
		Actual:    e.actualName(),
		Message:   msg,
	})
}

func (e *ArgumentError) path() string {
	if e.Index >= 0 {
		return e.Parameter + "[" + strconv.Itoa(e.Index) + "]"
	}
	return e.Parameter
}

func (e *ArgumentError) indexPtr() *int {
	if e.Index < 0 {
		return nil
	}
	i := e.Index
	return &i
}

func (e *ArgumentError) actualName() string {
	if e.Actual == nil {
		return KindNone.String()
	}
	return e.Actual.String()
}
