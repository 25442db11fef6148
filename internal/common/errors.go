// Package common defines sentinel errors shared by the store, domain and CLI
// layers of gophroster. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorUnknownBackend = errors.New("unknown store backend")

	// Session-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorCanceled     = errors.New("canceled")

	// Allocation / record assembly errors.
	ErrorInvalidRole  = errors.New("invalid role")
	ErrorInvalidCount = errors.New("invalid record count")
	ErrorMissingField = errors.New("missing field")
	ErrorIDCollision  = errors.New("user id already in use")

	// Input errors.
	ErrorInvalidInput = errors.New("invalid input")
)
