package errs

import "errors"

// Category markers. Domain sentinels are marked with one of these so that the
// transport layer can pick a status without knowing every concrete error.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("operation not permitted")

	// Lifecycle refusals
	ErrNotPending     = errors.New("reservation is not pending")
	ErrNotCancellable = errors.New("reservation cannot be cancelled")
	ErrNotOwner       = errors.New("principal does not own the reservation")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrDuplicate       = errors.New("already exists")
	ErrInUse           = errors.New("still referenced")

	// Broken invariant, never a user error
	ErrIntegrity = errors.New("integrity violation")
)

// NewKind creates a sentinel error marked with the given category.
func NewKind(msg string, category error) error {
	return Mark(New(msg), category)
}
