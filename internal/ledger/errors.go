package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when a request got no usable response.
	ErrTransport = errors.New("ledger transport failure")

	// ErrMalformedResponse is returned when a response arrived but could not be
	// decoded or broke a data invariant. It is a transport failure.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrTransport)

	// ErrObservationTimeout is returned when the client stopped waiting for an
	// expected state change. The ledger did not reject anything.
	ErrObservationTimeout = errors.New("observation timed out")
)

// ApplicationError is a response with a rejecting status. Message holds the
// server supplied text, if any.
type ApplicationError struct {
	StatusCode int
	Message    string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ledger rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("ledger rejected request with status %d: %s", e.StatusCode, e.Message)
}

// MessageOf returns the server message carried by err, or fallback when err
// is not an application failure or has no message.
func MessageOf(err error, fallback string) string {
	var appErr *ApplicationError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
