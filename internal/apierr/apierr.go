// Package apierr defines the two error kinds surfaced by the Pesapal
// client: Error for network/API failures and ValidationError for input
// rejected before any network activity. Callers branch on the kind via
// errors.As.
package apierr

import (
	"encoding/json"
	"fmt"
)

// Error is the network/API error kind. It covers transport failures,
// non-2xx HTTP replies, malformed JSON bodies, gateway-reported error
// objects, authentication failures, and refund/cancel policy violations.
type Error struct {
	Message    string
	StatusCode int             // HTTP status (0 for failures without one)
	Raw        json.RawMessage // response payload, when one was read
	Underlying error           // original error, when one exists
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("pesapal: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return "pesapal: " + e.Message
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// New builds an API error with just a message.
func New(message string) *Error {
	return &Error{Message: message}
}

// Newf builds an API error from a format string.
func Newf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an API error that keeps err on the chain.
func Wrap(message string, err error) *Error {
	return &Error{Message: message, Underlying: err}
}

// ValidationError is the locally-raised input-validation kind: empty
// required fields, invalid enumerated values, non-positive amounts.
// It is never produced by a network exchange.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "pesapal: " + e.Message
}

// Invalid builds a validation error with the given message.
func Invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Invalidf builds a validation error from a format string.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
