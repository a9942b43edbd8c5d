package errs

import "errors"

// Error categories shared by the usecase and handler layers.
// Concrete errors are marked with one of these via Mark.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
	ErrStore        = errors.New("store failure")
)

var categories = []error{
	ErrValidation,
	ErrNotFound,
	ErrInvalidState,
	ErrConflict,
	ErrStore,
}

// Validation creates a new error marked as a validation failure.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}
