// Package guard provides ConstructorGuard, a zero-size-ish marker that lets
// commands and queries detect whether they were built through their
// constructor or declared as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value came from its constructor.
//
// Example:
//
//	type DispatchActionCommand struct {
//	    orderID kernel.OrderID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c DispatchActionCommand) Validate() error {
//	    return c.guard.Validate(ErrDispatchActionCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// for a zero-value guard, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
