package store

import "errors"

var (
	// ErrNotFound wraps the no-rows case for every lookup in this package.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a signup collides with the
	// unique email constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
