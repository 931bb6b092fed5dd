package usecase

import "errors"

// Failure kinds surfaced to callers. The transport layer maps them to
// status codes; anything unmatched is treated as internal.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflicting state")
)
