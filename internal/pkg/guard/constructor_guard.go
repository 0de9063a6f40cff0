// Package guard provides a marker that lets value objects detect whether they
// were built by their constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries so a zero value fails validation.
//
// Example:
//
//	type SaveStateCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSaveStateCommand() SaveStateCommand {
//	    return SaveStateCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c SaveStateCommand) Validate() error {
//	    return c.guard.Validate(ErrSaveStateCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
