package pesapal

import (
	"errors"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
)

// The client raises exactly two error kinds. Error covers everything
// that involved (or should have involved) the gateway: transport
// failures, non-2xx statuses, malformed JSON, gateway-reported error
// objects, authentication failures, and refund/cancel policy
// violations. ValidationError covers input rejected locally before any
// network activity.

// Error is the network/API error kind.
type Error = apierr.Error

// ValidationError is the input-validation error kind.
type ValidationError = apierr.ValidationError

// IsAPIError reports whether err is the network/API kind.
func IsAPIError(err error) bool {
	var e *apierr.Error
	return errors.As(err, &e)
}

// IsValidationError reports whether err is the input-validation kind.
func IsValidationError(err error) bool {
	var e *apierr.ValidationError
	return errors.As(err, &e)
}
