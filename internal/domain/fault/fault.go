package fault

import (
	"errors"
	"fmt"
)

// Shared error taxonomy. Every usecase returns one of these sentinels
// (possibly wrapped) so the HTTP layer can map them to a status without
// string matching.
var (
	// ErrValidation: malformed or missing input. Recoverable by the caller.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound: record absent, or present but outside the caller's
	// visibility. Non-owners get the same error either way.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized: the caller's role is not recognized at all.
	ErrUnauthorized = errors.New("invalid role, contact admin")
	// ErrStorage: the backing store failed; the enclosing transaction has
	// been rolled back.
	ErrStorage = errors.New("storage failure")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
