// Package observability wires OpenTelemetry tracing and metrics for the
// catering client.
//
// The HTTP transport always creates spans through the global tracer provider,
// which is a no-op until an application installs one:
//
//	shutdown, err := observability.Setup(ctx, cfg.Telemetry, "crous", version.Version)
//	defer shutdown(ctx)
//
// Request metrics are recorded through ClientMetrics:
//
//	metrics, err := observability.NewClientMetrics(observability.Meter(observability.InstrumentationName))
//	metrics.RecordRequest(ctx, "regions", http.MethodGet, 200, duration)
package observability
