package models

import "errors"

// Domain errors shared across layers. Transport maps these to HTTP codes.
var (
	// ErrNotFound is returned when a release lookup by id matches no row.
	ErrNotFound = errors.New("release not found")

	// ErrForbidden is returned when the acting user lacks the privilege
	// for the requested operation.
	ErrForbidden = errors.New("operation requires a privileged user")

	// ErrInvalidInput is returned for requests that fail validation guards.
	ErrInvalidInput = errors.New("invalid input")
)
