package httpclient

import "net/http"

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method. Defaults to GET.
	Method string
	// Path is appended to the adapter's BaseURL.
	Path string
	// Resource labels the request in logs, spans and metrics (e.g. "regions").
	Resource string
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}
