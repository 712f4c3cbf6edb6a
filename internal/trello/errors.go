package trello

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes of the Trello API client.
// These can be checked using errors.Is() for programmatic error handling.
var (
	// ErrConfig indicates that the API key or token was missing or blank
	// when the client was constructed. This is fatal to the process, not
	// to an individual call: no request is ever attempted without
	// credentials.
	ErrConfig = errors.New("trello credentials not configured")

	// ErrValidation indicates that caller-supplied input failed a
	// required-field check before any remote call was made.
	ErrValidation = errors.New("invalid input")

	// ErrAuth indicates that Trello rejected the credentials (HTTP 401
	// or 403).
	ErrAuth = errors.New("invalid trello credentials")

	// ErrNotFound indicates that the referenced board, list, or card
	// does not exist (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited indicates that Trello is throttling requests
	// (HTTP 429). The client never retries; backing off is the
	// caller's responsibility.
	ErrRateLimited = errors.New("trello rate limit exceeded")

	// ErrTransport indicates a network-level failure: timeout, DNS,
	// connection reset.
	ErrTransport = errors.New("network error")

	// ErrProtocol indicates that the Trello response could not be
	// parsed into the expected shape, or carried a status code outside
	// the documented contract.
	ErrProtocol = errors.New("unexpected trello response")
)

// APIError carries the context of a failed client operation: which
// operation ran, which identifier it targeted, and the HTTP status if
// the request made it that far. Unwrap returns the matching sentinel so
// callers can branch with errors.Is without parsing messages.
type APIError struct {
	// Op is the client operation name, e.g. "get_board".
	Op string

	// ID is the identifier involved, if any.
	ID string

	// Status is the HTTP status code, or zero when the request never
	// received a response.
	Status int

	// Kind is the sentinel this error maps to.
	Kind error

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := "trello: " + e.Op
	if e.ID != "" {
		msg += " " + e.ID
	}
	msg += ": " + e.Kind.Error()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.Status)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the sentinel error for use with errors.Is().
func (e *APIError) Unwrap() error {
	return e.Kind
}

// errNoUpdateFields rejects partial updates that carry no fields.
var errNoUpdateFields = errors.New("at least one field must be set")

func errInvalidItemState(state string) error {
	return fmt.Errorf("state must be %q or %q, got %q", CheckItemComplete, CheckItemIncomplete, state)
}

func errInvalidLabelColor(color string) error {
	return fmt.Errorf("unknown label color %q", color)
}

// newValidationError reports a missing required field before any
// request is issued.
func newValidationError(op, field string) *APIError {
	return &APIError{
		Op:    op,
		Kind:  ErrValidation,
		Cause: fmt.Errorf("%s is required", field),
	}
}

// kindForStatus maps an HTTP status code to its sentinel error.
// 2xx codes never reach this function.
func kindForStatus(status int) error {
	switch status {
	case 400:
		return ErrValidation
	case 401, 403:
		return ErrAuth
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	default:
		return ErrProtocol
	}
}
