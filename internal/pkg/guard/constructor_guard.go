// Package guard lets value objects, aggregates, commands and queries tell a
// constructor-built instance apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a field in types whose zero value is invalid.
// Only NewConstructorGuard produces a guard that passes Validate, so a struct
// literal or a zero value fails validation.
//
// Example usage:
//
//	var ErrWeightNotConstructed = errors.New("Weight must be created via NewWeight")
//
//	type Weight struct {
//	    grams int64
//	    guard guard.ConstructorGuard
//	}
//
//	func (w Weight) Validate() error {
//	    return w.guard.Validate(ErrWeightNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
