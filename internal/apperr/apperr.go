package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required input object is nil.
	// No I/O is attempted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotAuthorized is returned when the caller's identity context is
	// not authenticated. Surfaced before any repository call.
	ErrNotAuthorized = errors.New("user is not authenticated")
)

// EntityNotFoundError is returned when an ownership-scoped operation
// matched zero rows, either because the id does not exist or because it
// belongs to a different user. The two cases are deliberately
// indistinguishable.
type EntityNotFoundError struct {
	Entity string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// IsNotFound reports whether err is an EntityNotFoundError.
func IsNotFound(err error) bool {
	var notFound *EntityNotFoundError
	return errors.As(err, &notFound)
}
