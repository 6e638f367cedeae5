// Package errorspkg provides common app errors.
//
// Every failure returned by the ledger wraps exactly one of the kinds below, so
// callers can branch with errors.Is without knowing the concrete sentinel.
package errorspkg

import "errors"

var (
	// ErrInternal indicates an unexpected failure.
	ErrInternal = errors.New("internal")
	// ErrValidation indicates malformed or out-of-domain input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a uniqueness violation or incompatible references.
	ErrConflict = errors.New("conflict")
	// ErrNotFound indicates a reference to an unknown identifier.
	ErrNotFound = errors.New("not found")
)

// Kind returns the name of the error kind err belongs to.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not found"
	default:
		return "internal"
	}
}
