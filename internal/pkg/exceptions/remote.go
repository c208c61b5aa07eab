package exceptions

import (
	"errors"
	"fmt"
)

// RemoteError is a non-2xx answer from the studio API as seen by its clients.
// Detail holds the server supplied explanation, empty when the body carried none.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("studio api responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("studio api responded with status %d: %s", e.StatusCode, e.Detail)
}

// DisplayMessage resolves the text shown to an operator for a failed call.
func DisplayMessage(err error, fallback string) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Detail != "" {
		return remoteErr.Detail
	}
	return fallback
}
