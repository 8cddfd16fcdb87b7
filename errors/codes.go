package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeFetchFailed indicates a collection request did not answer HTTP 200
	// or could not be sent at all.
	ErrCodeFetchFailed ErrorCode = "FETCH_FAILED"
	// ErrCodeNotFound indicates a fetched collection held no matching element.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates caller-supplied input was rejected before any I/O.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMalformedResponse indicates the response body did not have the expected shape.
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
)
