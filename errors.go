package templatest

import (
	"errors"
	"fmt"
)

// Sentinel errors for registration.
// Callers should use errors.Is/errors.As.
var (
	// ErrNameConflict is returned when a template name is already registered.
	ErrNameConflict = errors.New("templatest: registered name conflict")
	// ErrEmptyName is returned when a template's name is empty, e.g. derived from
	// a provider type whose identifier has no capitalised words.
	ErrEmptyName = errors.New("templatest: empty template name")
)

// NameConflictError wraps ErrNameConflict with the type that could not be
// registered and the name it collided on.
// Use errors.Is(err, ErrNameConflict) and errors.As(err, &conflictErr) to inspect.
type NameConflictError struct {
	Identifier string
	Name       string
	Err        error
}

// Error implements error.
func (e *NameConflictError) Error() string {
	return fmt.Sprintf("templatest: registered name conflict at %s: %q", e.Identifier, e.Name)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *NameConflictError) Unwrap() error { return e.Err }

// Compile-time check that NameConflictError implements error.
var _ error = (*NameConflictError)(nil)
