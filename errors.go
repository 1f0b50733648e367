package interpolation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMode is returned for values that do not name a declared mode.
	ErrInvalidMode = errors.New("invalid interpolation mode")

	// ErrUnresolved is matched by every ResolutionError.
	ErrUnresolved = errors.New("interpolator not registered")
)

// ResolutionError reports a namespace that has no handle for a mode's identifier.
// It means the toolkit build does not support the mode; retrying will not help.
type ResolutionError struct {
	Namespace  string
	Mode       Mode
	Identifier string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %s has no %q", e.Mode, e.Namespace, e.Identifier)
}

// Unwrap returns ErrUnresolved.
func (e *ResolutionError) Unwrap() error {
	return ErrUnresolved
}
