// internal/core/ports/errors.go
package ports

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the acting principal does not own
	// the record. Handlers report it identically to ErrNotFound so
	// callers cannot learn which ids exist.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation marks a rejected payload. Handlers map it to a 400
	// with the validation message; any other service error is reported
	// generically.
	ErrValidation = errors.New("validation failed")
)
