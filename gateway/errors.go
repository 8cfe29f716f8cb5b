package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned for 401 responses. Stored credentials have
	// already been cleared through the credential source by the time callers
	// see this.
	ErrUnauthorized = errors.New("gateway: unauthorized")

	// ErrNotFound is returned for 404 responses so callers can render an
	// explicit not-found state.
	ErrNotFound = errors.New("gateway: not found")

	// ErrServer is returned for 5xx responses and for envelopes the backend
	// marks unsuccessful.
	ErrServer = errors.New("gateway: server error")

	// ErrConnection is returned when no response arrives at all: transport
	// failure or the request timeout.
	ErrConnection = errors.New("gateway: connection error")
)

// ValidationError carries field-keyed validation failures, either decoded
// from a 422 response or produced client side before any request is made.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// FieldError reports the first error recorded for the given field, if any.
func (e *ValidationError) FieldError(field string) (string, bool) {
	msgs, ok := e.Fields[field]
	if !ok || len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}
