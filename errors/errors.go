package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typed/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Validation errors. Use errors.Is to match.
var (
	ErrArgumentTypeMismatch  = namespace.NewError("argument type mismatch")
	ErrUnsupportedConstraint = namespace.NewError("unsupported constraint")
)

// Sentinel errors for Wrap misuses.
var (
	ErrNilFunc                = namespace.NewError("nil function")
	ErrNotFunc                = namespace.NewError("value is not a function")
	ErrInvalidNames           = namespace.NewError("invalid parameter names")
	ErrUnknownParameter       = namespace.NewError("unknown parameter")
	ErrIncompatibleConstraint = namespace.NewError("constraint incompatible with parameter type")
	ErrInvalidDefault         = namespace.NewError("invalid default value")
)

// Sentinel errors for argument binding.
var (
	ErrTooManyArguments  = namespace.NewError("too many positional arguments")
	ErrDuplicateArgument = namespace.NewError("multiple values for parameter")
	ErrMissingArgument   = namespace.NewError("missing argument")
	ErrInvalidVariadic   = namespace.NewError("invalid variadic argument")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentParam      = "param"
	keySegmentConstraint = "constraint"
	keySegmentValue      = "value"
)

// Exported structured error field keys
var (
	ErrorFieldParamName     = newKey("name", keySegmentParam)     // typed.param.name
	ErrorFieldParamPosition = newKey("position", keySegmentParam) // typed.param.position
	ErrorFieldParamType     = newKey("type", keySegmentParam)     // typed.param.type
	ErrorFieldParamIndex    = newKey("index", keySegmentParam)    // typed.param.index (variadic element)
)

var (
	ErrorFieldConstraint     = newKey("expected", keySegmentConstraint) // typed.constraint.expected
	ErrorFieldConstraintKind = newKey("kind", keySegmentConstraint)     // typed.constraint.kind
)

var (
	ErrorFieldValueType = newKey("type", keySegmentValue) // typed.value.type
	ErrorFieldValue     = newKey("repr", keySegmentValue) // typed.value.repr
)

var (
	ErrorFieldFuncType = newKey("func_type")
	ErrorFieldArgCount = newKey("arg_count")
	ErrorFieldCause    = newKey("cause")
)
