package board

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// current state. The state is left untouched.
var ErrInvalidTransition = errors.New("operation not allowed in current board state")

// ValidationError is a local form check that failed before any remote call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RemoteError wraps a failed studio API call. Message is what was shown to the operator.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func invalidTransition(operation string, mode Mode) error {
	return fmt.Errorf("%s in %s: %w", operation, mode, ErrInvalidTransition)
}
