package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotBuilt      = errors.New("pipeline not built")
	ErrAlreadyBuilt  = errors.New("pipeline already built")
)
