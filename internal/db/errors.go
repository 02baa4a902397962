package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidEntry  = errors.New("invalid entry")
)
