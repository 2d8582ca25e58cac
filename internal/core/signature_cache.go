package core

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/ygrebnov/typed/constants"
	"github.com/ygrebnov/typed/validation"
)

// baseParamsCache holds the parameter list derived from a func type alone.
var baseParamsCache sync.Map // map[reflect.Type][]Parameter

// baseParameters returns the parameters of func type t with generated names
// and constraints implied by the Go parameter types. The result is shared
// between callers and must be cloned before modification.
func baseParameters(t reflect.Type) []Parameter {
	if v, ok := baseParamsCache.Load(t); ok {
		return v.([]Parameter)
	}

	n := t.NumIn()
	params := make([]Parameter, n)
	for i := 0; i < n; i++ {
		in := t.In(i)
		variadic := t.IsVariadic() && i == n-1
		if variadic {
			in = in.Elem()
		}
		params[i] = Parameter{
			Name:     constants.ParamNamePrefix + strconv.Itoa(i),
			Position: i,
			Type:     in,
			// Empty interface parameters carry no constraint.
			Constraint: validation.Type(in),
			Variadic:   variadic,
		}
	}

	v, _ := baseParamsCache.LoadOrStore(t, params)
	return v.([]Parameter)
}
