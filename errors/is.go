package errors

import (
	stderrors "errors"
)

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "" when there is none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsFetchFailure reports whether err is a FETCH_FAILED error.
func IsFetchFailure(err error) bool { return CodeOf(err) == ErrCodeFetchFailed }

// IsNotFound reports whether err is a NOT_FOUND error.
func IsNotFound(err error) bool { return CodeOf(err) == ErrCodeNotFound }

// IsInvalidInput reports whether err is an INVALID_INPUT error.
func IsInvalidInput(err error) bool { return CodeOf(err) == ErrCodeInvalidInput }

// IsMalformedResponse reports whether err is a MALFORMED_RESPONSE error.
func IsMalformedResponse(err error) bool { return CodeOf(err) == ErrCodeMalformedResponse }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
