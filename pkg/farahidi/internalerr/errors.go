package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidCatalogue = errors.New("invalid catalogue")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
