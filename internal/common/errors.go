// Package common defines shared constants and sentinel errors used across
// the Findra client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")

	// Resource errors.
	ErrNotFound = errors.New("not found")

	// Request payload rejected by the backend; the concrete field messages
	// travel in api.ValidationError, which wraps this sentinel.
	ErrValidation = errors.New("validation failed")

	// Client-local flow control.
	ErrInternal = errors.New("internal error")
)
