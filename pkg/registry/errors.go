package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateContract indicates two contracts registered the same name.
	ErrDuplicateContract = errors.New("duplicate contract name")

	// ErrMissingDependency indicates a required collaborator was not
	// injected at wire time.
	ErrMissingDependency = errors.New("missing required dependency")

	// ErrNoHandler indicates no binding matched the message.
	ErrNoHandler = errors.New("no handler matched")
)

// Handler error discipline: handlers return structured error values and
// the dispatcher translates them into commit/retry/DLQ decisions. Only
// invariant violations halt a partition.

// TransientError marks a failure worth redelivering (DB timeout, bus
// unavailable). The dispatcher does not commit the offset.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return fmt.Sprintf("transient: %v", e.Err) }
func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err as a transient failure.
func Transient(err error) error {
	return &TransientError{Err: err}
}

// IsTransient reports whether err is transient.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// PermanentError marks a domain or validation failure that redelivery
// cannot fix. The dispatcher routes the message to the DLQ and commits.
type PermanentError struct {
	Kind string // validation | domain
	Err  error
}

func (e *PermanentError) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *PermanentError) Unwrap() error { return e.Err }

// Validation wraps err as a permanent validation failure.
func Validation(err error) error {
	return &PermanentError{Kind: "validation", Err: err}
}

// Domain wraps err as a permanent domain failure.
func Domain(err error) error {
	return &PermanentError{Kind: "domain", Err: err}
}

// AsPermanent extracts a permanent error, if any.
func AsPermanent(err error) (*PermanentError, bool) {
	var pe *PermanentError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// InvariantError marks an impossible state or corruption. The dispatcher
// halts the partition's worker, preserving order, and raises an
// operational alert.
type InvariantError struct {
	Err error
}

func (e *InvariantError) Error() string { return fmt.Sprintf("invariant violation: %v", e.Err) }
func (e *InvariantError) Unwrap() error { return e.Err }

// Invariant wraps err as an invariant violation.
func Invariant(err error) error {
	return &InvariantError{Err: err}
}

// IsInvariant reports whether err is an invariant violation.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
