package service

import (
	"errors"
	"fmt"
)

// Error kinds shared by every service. Handlers map these to status codes;
// anything else is an internal error.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrForbidden    = errors.New("forbidden")
)

// invalidf wraps ErrInvalidInput with the violated constraint.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
