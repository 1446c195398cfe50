// Package guard implements a small defensive pattern that keeps value
// objects and commands from being used unless they were created through
// their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types whose zero value must not pass
// validation. A guard created by NewConstructorGuard validates; the zero
// value does not.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns err, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
