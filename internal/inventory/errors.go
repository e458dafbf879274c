package inventory

import (
	"errors"
	"fmt"
)

var (
	ErrUndoExpired       = errors.New("undo window has expired")
	ErrMissingRestaurant = errors.New("restaurant id is missing")
	ErrPermissionDenied  = errors.New("permission denied")
)

// FieldError reports the first form field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsFieldError unwraps a *FieldError from err.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	ok := errors.As(err, &fe)
	return fe, ok
}
