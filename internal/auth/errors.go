package auth

import (
	"errors"
	"strings"
)

var (
	ErrEmailTaken    = errors.New("Email already registered")
	ErrUsernameTaken = errors.New("Username already registered")
)

// ValidationError carries every signup violation at once; signup does not
// short-circuit on the first failure.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}
