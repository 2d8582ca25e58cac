package core

import (
	"github.com/ygrebnov/typed/validation"
)

// Validate checks the supplied values of b against the declared constraints
// in declaration order and returns the first failure.
// Parameters without a supplied value are skipped, defaults are never checked.
func (s *Signature) Validate(b *Binding) error {
	for i, p := range s.params {
		if !b.supplied[i] || p.Constraint.IsAny() {
			continue
		}
		if p.Variadic {
			for j, v := range b.rest {
				if err := validation.CheckElement(p.Name, p.Position, j, v, p.Constraint); err != nil {
					return err
				}
			}
			continue
		}
		if err := validation.Check(p.Name, p.Position, b.values[i], p.Constraint); err != nil {
			return err
		}
	}
	return nil
}
