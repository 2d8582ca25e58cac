package typed

import "github.com/ygrebnov/typed/errors"

// Sentinel errors re-exported for convenience. Use errors.Is to match.
var (
	ErrArgumentTypeMismatch  = errors.ErrArgumentTypeMismatch
	ErrUnsupportedConstraint = errors.ErrUnsupportedConstraint

	ErrNilFunc                = errors.ErrNilFunc
	ErrNotFunc                = errors.ErrNotFunc
	ErrInvalidNames           = errors.ErrInvalidNames
	ErrUnknownParameter       = errors.ErrUnknownParameter
	ErrIncompatibleConstraint = errors.ErrIncompatibleConstraint
	ErrInvalidDefault         = errors.ErrInvalidDefault

	ErrTooManyArguments  = errors.ErrTooManyArguments
	ErrDuplicateArgument = errors.ErrDuplicateArgument
	ErrMissingArgument   = errors.ErrMissingArgument
	ErrInvalidVariadic   = errors.ErrInvalidVariadic
)
