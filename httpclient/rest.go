package httpclient

import (
	"context"
	"encoding/json"
)

// TypedResponse wraps a response with a decoded body of type T.
type TypedResponse[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
}

// Get performs a GET request and decodes the JSON response into type T.
// The body is only decoded for HTTP 200; an empty or invalid body yields a
// decode error.
func Get[T any](a *Adapter, ctx context.Context, req Request) (*TypedResponse[T], error) {
	req.Method = "GET"

	resp, err := a.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var data T
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return nil, NewDecodeError(resp.StatusCode, resp.Body, err)
	}

	return &TypedResponse[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Data:       data,
	}, nil
}
