// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so code paths can insist that objects were
// built through their designated constructor function.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard maintains an internal flag that is only set
// when the object is created via NewConstructorGuard; a zero-value guard fails
// validation.
//
// Example usage:
//
//	var ErrScheduleNotConstructed = errors.New("Schedule must be created via NewSchedule")
//
//	type Schedule struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSchedule(id kernel.UUID) (Schedule, error) {
//	    return Schedule{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Schedule) Validate() error {
//	    return s.guard.Validate(ErrScheduleNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns validationError for zero-value guards, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
