package errors

import (
	"fmt"
)

// AppError is the unified error type returned by the client.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches another *AppError by code, so errors.Is(err, &AppError{Code: ...})
// works as a kind check.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// FetchFailed creates an AppError for a collection request that did not
// succeed. status is the HTTP status received, or 0 when no response arrived.
func FetchFailed(resource string, status int) *AppError {
	return &AppError{
		Code:    ErrCodeFetchFailed,
		Message: fmt.Sprintf("Failed to fetch %s", resource),
		Details: map[string]any{"resource": resource, "status": status},
	}
}

// NotFound creates an AppError for a lookup key absent from a fetched collection.
func NotFound(resource string, key any, message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: map[string]any{"resource": resource, "key": key},
	}
}

// InvalidInput creates an AppError for rejected caller input.
func InvalidInput(field, message string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Details: details,
	}
}

// MalformedResponse creates an AppError for a response body that could not be
// decoded into the expected schema.
func MalformedResponse(resource string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedResponse,
		Message: fmt.Sprintf("Malformed %s response", resource),
		Details: map[string]any{"resource": resource},
		Cause:   cause,
	}
}
