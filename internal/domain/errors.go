package domain

import "errors"

// Domain errors (no external dependencies). The HTTP layer maps these to
// status codes in one place; everything else becomes a generic 500.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrConflict     = errors.New("conflict with current state")
)
