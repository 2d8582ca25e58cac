package typed

import (
	"context"
	"errors"
	"log/slog"

	typederrors "github.com/ygrebnov/typed/errors"
	"github.com/ygrebnov/typed/internal/core"
)

// Parameter describes one declared parameter of a wrapped function.
type Parameter = core.Parameter

// Func is a wrapped function. It is immutable and safe for concurrent use
// if the wrapped function is.
type Func struct {
	sig    *core.Signature
	logger *slog.Logger
}

// Call invokes the wrapped function with positional arguments.
func (f *Func) Call(args ...any) ([]any, error) {
	return f.CallNamed(args, nil)
}

// CallNamed binds args by position and named by parameter name, validates the
// bound values in declaration order, and calls the wrapped function.
// On the first mismatch it returns *ArgumentError and the function is not called.
// The results of the function are returned unchanged.
func (f *Func) CallNamed(args []any, named map[string]any) ([]any, error) {
	b, err := f.bind(args, named)
	if err != nil {
		return nil, err
	}
	out, err := f.sig.Invoke(b)
	if err != nil {
		f.logRejected(err)
		return nil, err
	}
	return out, nil
}

// Validate binds and validates args and named without calling the wrapped function.
func (f *Func) Validate(args []any, named map[string]any) error {
	_, err := f.bind(args, named)
	return err
}

func (f *Func) bind(args []any, named map[string]any) (*core.Binding, error) {
	b, err := f.sig.Bind(args, named)
	if err == nil {
		err = f.sig.Validate(b)
	}
	if err != nil {
		f.logRejected(err)
		return nil, err
	}
	return b, nil
}

// Parameters returns the declared parameters in declaration order.
func (f *Func) Parameters() []Parameter { return f.sig.Parameters() }

// Parameter returns the parameter declared under name.
func (f *Func) Parameter(name string) (Parameter, bool) { return f.sig.Parameter(name) }

// Unwrap returns the wrapped function.
func (f *Func) Unwrap() any { return f.sig.Func().Interface() }

func (f *Func) logRejected(err error) {
	if f.logger == nil || !f.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String(string(typederrors.ErrorFieldFuncType), f.sig.Type().String()),
		slog.Any(string(typederrors.ErrorFieldCause), err),
	}
	var ae *ArgumentError
	if errors.As(err, &ae) {
		attrs = append(attrs,
			slog.String(string(typederrors.ErrorFieldParamName), ae.Parameter),
			slog.String(string(typederrors.ErrorFieldConstraint), ae.Constraint.String()),
		)
	}
	f.logger.LogAttrs(context.Background(), slog.LevelDebug, "call rejected", attrs...)
}
