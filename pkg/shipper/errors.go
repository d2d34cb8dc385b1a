package shipper

import (
	"errors"
	"fmt"
	"strings"
)

// CarrierError represents an error signaled by a shipping carrier.
type CarrierError struct {
	Carrier    string
	Code       string
	Message    string
	StatusCode int
	Retryable  bool
	Cause      error
}

// Error implements the error interface.
func (e *CarrierError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Carrier, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Carrier, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *CarrierError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for CarrierError.
func (e *CarrierError) Is(target error) bool {
	t, ok := target.(*CarrierError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewCarrierError creates a new CarrierError.
func NewCarrierError(carrier, code, message string) *CarrierError {
	return &CarrierError{
		Carrier: carrier,
		Code:    code,
		Message: message,
	}
}

// WithCause adds a cause to the error.
func (e *CarrierError) WithCause(err error) *CarrierError {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *CarrierError) WithStatusCode(code int) *CarrierError {
	e.StatusCode = code
	return e
}

// WithRetryable marks the error as retryable.
func (e *CarrierError) WithRetryable(retryable bool) *CarrierError {
	e.Retryable = retryable
	return e
}

// AmbiguousTrackingError is returned when a tracking query matches more than
// one shipment. The caller must retry with one of the listed unique
// identifiers.
type AmbiguousTrackingError struct {
	Identifiers []string
}

// Error implements the error interface.
func (e *AmbiguousTrackingError) Error() string {
	return fmt.Sprintf("multiple matches were found, specify a unique identifier: %s",
		strings.Join(e.Identifiers, ", "))
}

// Sentinel errors for common shipping scenarios.
var (
	// ErrMultiplePackages indicates shipment creation was attempted with more
	// than one package, which is not supported.
	ErrMultiplePackages = errors.New("multiple packages are not supported")

	// ErrShipmentNotFound indicates the carrier has no shipment for the
	// supplied identifier.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrResponseContent indicates the carrier signaled an error inside an
	// otherwise well-formed response.
	ErrResponseContent = errors.New("carrier response content error")

	// ErrNoTrackingDetails indicates a tracking response carried no track
	// detail entries.
	ErrNoTrackingDetails = errors.New("the response did not contain tracking details")

	// ErrNoStatusInformation indicates a tracking response carried no status
	// detail block.
	ErrNoStatusInformation = errors.New("tracking response does not contain status information")

	// ErrNoStatusCode indicates a tracking status block carried no code.
	ErrNoStatusCode = errors.New("tracking response does not contain status code")

	// ErrCancellationFailed indicates the carrier rejected a cancellation.
	ErrCancellationFailed = errors.New("cancellation failed")

	// ErrServiceUnavailable indicates the carrier service is temporarily unavailable.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRateLimitExceeded indicates the carrier rate limit was exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrAuthenticationFailed indicates carrier authentication failed.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrCarrierNotFound indicates the requested carrier is not registered.
	ErrCarrierNotFound = errors.New("carrier not found")
)

// IsRetryable returns true if the error is retryable.
func IsRetryable(err error) bool {
	var carrierErr *CarrierError
	if errors.As(err, &carrierErr) {
		return carrierErr.Retryable
	}
	return errors.Is(err, ErrServiceUnavailable) || errors.Is(err, ErrRateLimitExceeded)
}
