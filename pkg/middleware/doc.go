// Package middleware instruments rendering.
//
// Streaming adapters report every render to an Observer: Start is called
// before the first chunk and Finish after the last one, with the number of
// chunks and bytes written and the error that ended the render, if any.
//
// # Prometheus Metrics
//
//	metrics := middleware.Prometheus(middleware.WithNamespace("shop"))
//	handler := stream.Handler(page, stream.WithObserver(metrics))
//
// Metrics collected:
//   - htgo_renders_total: renders by page and status
//   - htgo_render_duration_seconds: render duration by page
//   - htgo_render_errors_total: failed renders by page and error kind
//   - htgo_render_bytes: bytes written per render
//   - htgo_active_streams: renders in progress
//
// # OpenTelemetry
//
// OpenTelemetry starts a span per render using the global tracer provider.
// The span context is returned from Start so lazy children rendered under
// the request context become child spans:
//
//	middleware.OpenTelemetry(middleware.WithTracerName("shop"))
//
// # Logging
//
// Logging reports renders to a *slog.Logger: failures at error level,
// successful renders at debug level.
//
// Observers are combined with Chain.
package middleware
