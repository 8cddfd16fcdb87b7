package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCode
		isNil  bool
	}{
		{200, 0, true},
		{201, ErrCodeUnexpectedStatus, false},
		{204, ErrCodeUnexpectedStatus, false},
		{302, ErrCodeUnexpectedStatus, false},
		{400, ErrCodeValidation, false},
		{401, ErrCodeAuth, false},
		{403, ErrCodeAuth, false},
		{404, ErrCodeNotFound, false},
		{429, ErrCodeRateLimit, false},
		{500, ErrCodeServer, false},
		{503, ErrCodeServer, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("HTTP %d", tt.status), func(t *testing.T) {
			err := ClassifyStatusCode(tt.status, nil)
			if tt.isNil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Code != tt.want {
				t.Errorf("expected code %s, got %s", tt.want, err.Code)
			}
			if err.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, err.StatusCode)
			}
		})
	}
}

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeAuth, "auth"},
		{ErrCodeNotFound, "not_found"},
		{ErrCodeRateLimit, "rate_limit"},
		{ErrCodeValidation, "validation"},
		{ErrCodeServer, "server"},
		{ErrCodeUnexpectedStatus, "unexpected_status"},
		{ErrCodeDecode, "decode"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Format(t *testing.T) {
	e := &Error{StatusCode: 500, Code: ErrCodeServer, Message: "HTTP 500"}
	if got := e.Error(); got != "httpclient: server (HTTP 500): HTTP 500" {
		t.Errorf("unexpected message %q", got)
	}

	e = NewConnectionError(errors.New("connection refused"))
	if got := e.Error(); got != "httpclient: connection: connection refused" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestErrorHelpers(t *testing.T) {
	cause := errors.New("boom")

	if !IsTimeout(NewTimeoutError(cause)) {
		t.Error("expected IsTimeout")
	}
	if !IsConnection(NewConnectionError(cause)) {
		t.Error("expected IsConnection")
	}
	if !IsNotFound(ClassifyStatusCode(404, nil)) {
		t.Error("expected IsNotFound")
	}
	if !IsServerError(ClassifyStatusCode(502, nil)) {
		t.Error("expected IsServerError")
	}
	if !IsDecode(NewDecodeError(200, []byte("{"), cause)) {
		t.Error("expected IsDecode")
	}
	if IsTimeout(cause) {
		t.Error("plain error should not be a timeout")
	}

	wrapped := fmt.Errorf("fetch: %w", NewTimeoutError(cause))
	if !IsTimeout(wrapped) {
		t.Error("expected IsTimeout through wrapping")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
}

func TestStatusCodeOf(t *testing.T) {
	if got := StatusCodeOf(ClassifyStatusCode(503, nil)); got != 503 {
		t.Errorf("expected 503, got %d", got)
	}
	if got := StatusCodeOf(NewConnectionError(errors.New("x"))); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := StatusCodeOf(errors.New("plain")); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
