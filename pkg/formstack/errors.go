package formstack

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// APIError represents a failed Formstack API call. It covers both non-2xx
// HTTP statuses and 2xx responses whose payload carries a "status":"error"
// marker; callers get a single failure channel either way.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Status is the payload-level status marker, "error" for API-level
	// failures. Empty when the payload had none.
	Status string
	// Message is the error text extracted from the payload, if any.
	Message string
	// Raw is the full response payload.
	Raw []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("formstack: %s (status %d)", e.Message, e.StatusCode)
	}

	return fmt.Sprintf("formstack: request failed (status %d)", e.StatusCode)
}

// ValidationError reports an argument that failed a precondition check
// before any network I/O was attempted.
type ValidationError struct {
	// Field names the offending argument.
	Field string
	// Reason describes the failed check.
	Reason string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAccessTokenRequired = errors.New("access token or token source is required")
	ErrEndpointRequired    = errors.New("endpoint path is required")
	ErrUnsupportedVerb     = errors.New("unsupported HTTP verb")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
)

// IsAPIError checks if the error is a Formstack API failure.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsValidation checks if the error is a precondition failure.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// NewAPIErrorFromResponse builds an APIError from a response status and
// payload. The status marker and message are pulled from the payload when it
// is JSON; Formstack reports the text under either "error" or "message"
// depending on the endpoint.
func NewAPIErrorFromResponse(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Raw:        body,
	}

	if status := gjson.GetBytes(body, "status"); status.Exists() {
		apiErr.Status = status.String()
	}

	if msg := gjson.GetBytes(body, "error"); msg.Exists() {
		apiErr.Message = msg.String()
	} else if msg := gjson.GetBytes(body, "message"); msg.Exists() {
		apiErr.Message = msg.String()
	}

	return apiErr
}
