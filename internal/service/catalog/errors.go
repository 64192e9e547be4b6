package catalog

import "errors"

var (
	// ErrInvalidInput is returned for a malformed catalog service.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected catalog failures.
	ErrInternal = errors.New("catalog: internal error")
)
