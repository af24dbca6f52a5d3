package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a write violates the email uniqueness
	// constraint at the storage layer.
	ErrDuplicateEmail = errors.New("email already exists")
)
