package store

import "errors"

var (
	// ErrNotFound indicates the referenced pattern does not exist.
	ErrNotFound = errors.New("pattern not found")

	// ErrInvalidTransition indicates a lifecycle transition outside the
	// allowed set.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")

	// ErrConflict indicates a concurrent writer got there first: a
	// lifecycle transition found the pattern's status already changed,
	// or an insert lost a unique-constraint race. The transaction is
	// poisoned after the race; callers retry on a fresh one.
	ErrConflict = errors.New("concurrent pattern write conflict")
)
