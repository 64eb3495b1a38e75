// Package common defines shared constants and sentinel errors used across
// the registry engine, its stores and the transport layer. Callers should use
// errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrorDuplicateKey = errors.New("duplicate key")

	// Engine-level errors.
	ErrorInvalidInput = errors.New("invalid input")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInternal     = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Reserved kinds. Declared for API compatibility; no operation returns them yet.
	ErrorAccessDenied = errors.New("access denied")
	ErrorAdminOnly    = errors.New("admin only")
	ErrorRestricted   = errors.New("restricted")
	ErrorDuplicate    = errors.New("duplicate")
)

// ValidationError reports which field of a write request broke its bounds.
// It matches ErrorInvalidInput with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrorInvalidInput
}
