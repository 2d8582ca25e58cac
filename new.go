package typed

import (
	"log/slog"
	"slices"

	"github.com/ygrebnov/typed/internal/core"
)

// Wrap introspects fn once and returns a Func that validates arguments against
// the declared parameter constraints before calling fn.
//
// Every parameter whose Go type is not the empty interface is constrained by
// that type. Options name parameters, narrow constraints, and declare defaults.
func Wrap(fn any, opts ...Option) (*Func, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	sig, err := core.NewSignature(fn, cfg.decl)
	if err != nil {
		return nil, err
	}
	return &Func{sig: sig, logger: cfg.logger}, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap(fn any, opts ...Option) *Func {
	f, err := Wrap(fn, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Option configures a Func at construction time.
type Option func(*config)

type config struct {
	decl   core.Declarations
	logger *slog.Logger
}

// WithNames names the parameters of the wrapped function in declaration order.
// One unique, non-empty name per parameter is required. Without it parameters
// are named arg0, arg1, and so on.
func WithNames(names ...string) Option {
	names = slices.Clone(names)
	return func(c *config) {
		c.decl.Names = names
	}
}

// WithConstraint declares the constraint of the named parameter, replacing the
// one implied by its Go type. Every value the constraint admits must be
// passable as the Go parameter type.
func WithConstraint(name string, constraint Constraint) Option {
	return func(c *config) {
		c.decl.Constraints = append(c.decl.Constraints, core.NamedConstraint{Name: name, Constraint: constraint})
	}
}

// WithDefault declares the value passed for the named parameter when a call
// does not supply one. Defaults are trusted and never validated.
func WithDefault(name string, value any) Option {
	return func(c *config) {
		c.decl.Defaults = append(c.decl.Defaults, core.NamedDefault{Name: name, Value: value})
	}
}

// WithNamedOnly marks parameters that can only be bound by name.
func WithNamedOnly(names ...string) Option {
	names = slices.Clone(names)
	return func(c *config) {
		c.decl.NamedOnly = append(c.decl.NamedOnly, names...)
	}
}

// WithLogger sets the logger rejected calls are reported to at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
