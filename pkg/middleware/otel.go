package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for htgo renders.
const defaultTracerName = "htgo"

// OTelConfig configures the OpenTelemetry observer.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "htgo").
	TracerName string

	// Filter determines which pages to trace. If nil, all pages are traced.
	Filter func(page string) bool

	// Attributes are added to every span.
	Attributes []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry observer.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithPageFilter sets a filter function for pages.
func WithPageFilter(filter func(page string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributes adds attributes to every span.
func WithAttributes(attrs ...attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

type tracing struct {
	config OTelConfig
	tracer trace.Tracer
}

// OpenTelemetry creates an Observer that wraps every render in a span.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in main() before serving:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) Observer {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	return &tracing{config: config, tracer: otel.Tracer(config.TracerName)}
}

func (t *tracing) Start(ctx context.Context, page string) context.Context {
	if t.config.Filter != nil && !t.config.Filter(page) {
		return ctx
	}
	attrs := append([]attribute.KeyValue{attribute.String("htgo.page", page)}, t.config.Attributes...)
	ctx, _ = t.tracer.Start(ctx, "htgo.render "+page,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx
}

func (t *tracing) Finish(ctx context.Context, page string, stats Stats, err error) {
	if t.config.Filter != nil && !t.config.Filter(page) {
		return
	}
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.Int("htgo.chunks", stats.Chunks),
		attribute.Int64("htgo.bytes", stats.Bytes),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
