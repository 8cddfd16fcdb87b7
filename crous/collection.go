package crous

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/crousapi/errors"
	"github.com/kbukum/crousapi/httpclient"
	"github.com/kbukum/crousapi/validation"
)

// Resource collection names, used in error messages, logs and metrics.
const (
	resourceRegions     = "regions"
	resourceRestaurants = "restaurants"
	resourceMenus       = "menus"
)

// fetchCollection issues one GET for path and maps the decoded array through
// convert, preserving server order. W is the wire schema of one element.
func fetchCollection[W any, R any](ctx context.Context, t *httpclient.Adapter, resource, path string, convert func(W) R) ([]R, error) {
	resp, err := httpclient.Get[[]W](t, ctx, httpclient.Request{
		Path:     path,
		Resource: resource,
	})
	if err != nil {
		return nil, mapTransportError(resource, err)
	}

	// A JSON null decodes to a nil slice without error.
	if resp.Data == nil {
		return nil, errors.MalformedResponse(resource, errNullCollection)
	}
	if err := validation.ValidateEach(resp.Data); err != nil {
		return nil, malformedPayload(resource, err)
	}

	out := make([]R, len(resp.Data))
	for i, w := range resp.Data {
		out[i] = convert(w)
	}
	return out, nil
}

// findFirst returns the first element satisfying match.
func findFirst[R any](items []R, match func(R) bool) (R, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero R
	return zero, false
}

// mapTransportError converts an httpclient error into the client taxonomy.
// Decode failures on a 200 body are MALFORMED_RESPONSE. Everything else,
// including transport failures without a status, is FETCH_FAILED.
func mapTransportError(resource string, err error) error {
	if httpclient.IsDecode(err) {
		return errors.MalformedResponse(resource, err)
	}
	return errors.FetchFailed(resource, httpclient.StatusCodeOf(err)).
		WithDetail("reason", fetchFailureReason(err)).
		WithCause(err)
}

// fetchFailureReason is the "reason" detail of a FETCH_FAILED error.
func fetchFailureReason(err error) string {
	switch {
	case httpclient.IsTimeout(err):
		return "timeout"
	case httpclient.IsConnection(err):
		return "connection"
	case httpclient.IsNotFound(err):
		return "not_found"
	case httpclient.IsServerError(err):
		return "server_error"
	default:
		return "unexpected_status"
	}
}

// malformedPayload reports a schema violation in a decoded payload. The
// INVALID_INPUT error from validation is flattened so the result only
// matches MALFORMED_RESPONSE.
func malformedPayload(resource string, err error) error {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return errors.MalformedResponse(resource, err)
	}
	return errors.MalformedResponse(resource, stderrors.New(appErr.Message)).
		WithDetail("fields", appErr.Details["fields"])
}

var errNullCollection = stderrors.New("response body is null")
