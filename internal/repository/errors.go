package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when an entity fails a store constraint.
	ErrInvalidInput = errors.New("invalid input")
)
