package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/crousapi/logger"
	"github.com/kbukum/crousapi/observability"
)

// Adapter is the HTTP transport used by the resolvers. It holds no per-call
// state and is safe for concurrent use.
type Adapter struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	tracer     trace.Tracer
	metrics    *observability.ClientMetrics
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l.WithComponent(a.config.Name)
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is left as is.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		if c != nil {
			a.httpClient = c
		}
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(a *Adapter) { a.metrics = m }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(a *Adapter) {
		if t != nil {
			a.tracer = t
		}
	}
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	a := &Adapter{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    logger.NewNop(),
		tracer: observability.Tracer(observability.InstrumentationName),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Do executes a single HTTP request and returns the complete response.
// When the status is not 200 the response is returned together with an *Error.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.NewString()
	method := req.method()

	ctx, span := a.tracer.Start(ctx, fmt.Sprintf("%s %s", method, req.Resource),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrHTTPMethod, method),
			attribute.String(observability.AttrResource, req.Resource),
			attribute.String(observability.AttrRequestID, requestID),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := a.executeRequest(ctx, req)
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
		span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if a.metrics != nil {
		a.metrics.RecordRequest(ctx, req.Resource, method, status, duration)
		if err != nil {
			a.metrics.RecordError(ctx, req.Resource, errorType(err))
		}
	}

	fields := logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldResource, req.Resource,
		logger.FieldMethod, method,
		logger.FieldURL, a.resolveURL(req.Path),
		logger.FieldStatus, status,
		logger.FieldDuration, duration.Milliseconds(),
	)
	if err != nil && status == 0 {
		a.log.WithError(err).Warn("request failed", fields)
	} else {
		a.log.Debug("request completed", fields)
	}

	return resp, err
}

// executeRequest builds and sends the HTTP request.
func (a *Adapter) executeRequest(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
	}

	// Non-200 bodies are drained up to maxDrainBytes but never interpreted.
	if classErr := ClassifyStatusCode(resp.StatusCode, nil); classErr != nil {
		_, _ = io.CopyN(io.Discard, resp.Body, maxDrainBytes)
		return result, classErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}
	result.Body = body

	return result, nil
}

// maxDrainBytes bounds how much of a rejected body is read so the
// connection can be reused.
const maxDrainBytes = 64 << 10

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.method(), a.resolveURL(req.Path), nil)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", a.config.UserAgent)

	return httpReq, nil
}

// resolveURL joins path onto the base URL.
func (a *Adapter) resolveURL(path string) string {
	return strings.TrimRight(a.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

func errorType(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Code.String()
	}
	return "unknown"
}

// Close releases idle connections held by the adapter.
func (a *Adapter) Close() {
	a.httpClient.CloseIdleConnections()
}

