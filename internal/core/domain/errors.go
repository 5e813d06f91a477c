package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileRequired indicates no input text was supplied at all.
	// It is reported before the validator or simulator is invoked.
	ErrFileRequired = errors.New("File required")

	// ErrMalformedInput indicates the simulator was handed text that
	// does not satisfy the input grammar. Callers must validate first.
	ErrMalformedInput = errors.New("malformed simulator input")
)
