package scraper

import "fmt"

// ErrorType categorizes different types of scrape client errors
type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "validation"
	ErrorTypeNetwork         ErrorType = "network"
	ErrorTypeTimeout         ErrorType = "timeout"
	ErrorTypeServer          ErrorType = "server"
	ErrorTypeInvalidResponse ErrorType = "invalid_response"
)

// ClientError represents a structured error from a scrape service call
type ClientError struct {
	Type    ErrorType
	Message string
	Status  int // HTTP status for server errors, zero otherwise
	Cause   error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// IsRetryable returns true if the error is likely to succeed on retry.
// Only health polling acts on this; scrape submissions are never retried.
func (e *ClientError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork, ErrorTypeTimeout:
		return true
	case ErrorTypeServer:
		return e.Status >= 500 || e.Status == 0
	default:
		return false
	}
}

// UserMessage returns the message shown in the error area. Server error
// strings pass through verbatim; transport problems keep the underlying
// error text so the user can see what actually failed.
func (e *ClientError) UserMessage() string {
	switch e.Type {
	case ErrorTypeNetwork:
		if e.Cause != nil {
			return fmt.Sprintf("Request failed: %v", e.Cause)
		}
		return "Request failed. Please check that the scrape service is running."
	case ErrorTypeTimeout:
		return "The scrape timed out. The pages may be slow to load or the service may be busy."
	case ErrorTypeInvalidResponse:
		return "Received an invalid response from the scrape service. Please try again."
	default:
		return e.Message
	}
}

func newValidationError(message string) *ClientError {
	return &ClientError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

func newNetworkError(cause error) *ClientError {
	return &ClientError{
		Type:    ErrorTypeNetwork,
		Message: "Network error",
		Cause:   cause,
	}
}

func newTimeoutError(cause error) *ClientError {
	return &ClientError{
		Type:    ErrorTypeTimeout,
		Message: "Request timed out",
		Cause:   cause,
	}
}

func newServerError(status int, message string) *ClientError {
	return &ClientError{
		Type:    ErrorTypeServer,
		Message: message,
		Status:  status,
	}
}

func newInvalidResponseError(message string, cause error) *ClientError {
	return &ClientError{
		Type:    ErrorTypeInvalidResponse,
		Message: message,
		Cause:   cause,
	}
}
