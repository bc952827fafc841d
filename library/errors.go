package library

import "fmt"

// The catalog surfaces three error categories. Callers match them with
// errors.As; nothing here is fatal, and a failed operation leaves the
// catalog's prior state unchanged.

// ValidationError means the caller supplied a value that violates a static
// precondition (negative counts, empty required dates, out-of-range copies).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// StateError means the operation is disallowed in the entity's current state,
// such as checking out a book with no available copies. Retrying with
// different input may succeed; retrying the same call will not.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return e.Reason }

// NotFoundError means the referenced book or transaction id has no matching
// record in the catalog.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func stateErrorf(format string, args ...any) error {
	return &StateError{Reason: fmt.Sprintf(format, args...)}
}
