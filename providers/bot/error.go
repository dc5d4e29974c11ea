package bot

import "fmt"

// ErrorKind classifies client failures so callers can react to the broad
// category without parsing messages.
type ErrorKind string

const (
	// ErrNetwork indicates a transport or connectivity failure: the request
	// never produced a usable response (DNS, TLS, connection reset, timeout).
	ErrNetwork ErrorKind = "network"

	// ErrResponse indicates the backend answered with a non-success status.
	ErrResponse ErrorKind = "response"

	// ErrFormat indicates the backend answered successfully but the payload
	// did not match the expected shape.
	ErrFormat ErrorKind = "format"

	// ErrUnknown covers usage errors: unrouteable identifiers, unresolved
	// keys, missing required input.
	ErrUnknown ErrorKind = "unknown"
)

// Error is the failure record carried by [Result] values and failing streams.
// Clients convert every failure into one of these instead of aborting, so a
// multi-provider caller always gets a full picture of what went wrong where.
type Error struct {
	Kind    ErrorKind
	Message string
	// Cause is the underlying error, if any. Exposed via Unwrap for errors.Is
	// and errors.As chains.
	Cause error
}

// NewError creates an Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorWithCause creates an Error wrapping an underlying cause.
func NewErrorWithCause(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}
