package domain

import "errors"

// Domain-level errors
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrStoreUnconfigured = errors.New("database not configured")
)
