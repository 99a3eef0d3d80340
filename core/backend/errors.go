package backend

import "errors"

var (
	// ErrNotFound is returned when the named object does not exist.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidConfig is returned when a backend is constructed from an
	// incomplete or malformed configuration.
	ErrInvalidConfig = errors.New("invalid backend configuration")
)
