// Package httpclient is the transport under the catering client: it resolves
// request paths against a base URL, sets the Accept and User-Agent headers,
// executes a single attempt per call and classifies the outcome.
//
// Success is defined strictly as HTTP 200. Every other status is returned as
// an *Error carrying the status code; the body is never decoded in that case.
//
// # Basic Usage
//
//	a, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.croustillant.menu/v1",
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := httpclient.Get[[]wireRegion](a, ctx, httpclient.Request{
//	    Path:     "/regions",
//	    Resource: "regions",
//	})
//
// Every request opens a span on the global OpenTelemetry tracer provider and,
// when WithMetrics is given, records request metrics.
package httpclient
