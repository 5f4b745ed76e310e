package middleware

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htgo/internal/errors"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusRecordsSuccessAndError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := Prometheus(WithRegistry(reg), WithNamespace("test"))

	ctx := m.Start(context.Background(), "/")
	if got := metricGaugeValue(t, m.activeStreams); got != 1 {
		t.Fatalf("active_streams = %v, want 1", got)
	}
	m.Finish(ctx, "/", Stats{Chunks: 4, Bytes: 120, Duration: time.Millisecond}, nil)

	ctx = m.Start(context.Background(), "/")
	m.Finish(ctx, "/", Stats{Chunks: 1}, errors.New("H001"))

	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/", "success")); got != 1 {
		t.Errorf("renders_total(success) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/", "error")); got != 1 {
		t.Errorf("renders_total(error) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.renderErrors.WithLabelValues("/", "type")); got != 1 {
		t.Errorf("render_errors_total(type) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.chunksTotal); got != 5 {
		t.Errorf("chunks_total = %v, want 5", got)
	}
	if got := metricGaugeValue(t, m.activeStreams); got != 0 {
		t.Errorf("active_streams = %v, want 0", got)
	}
	if got := metricHistogramCount(t, m.renderDuration.WithLabelValues("/")); got != 2 {
		t.Errorf("render_duration_seconds count = %d, want 2", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_renders_total" {
			found = true
		}
	}
	if !found {
		t.Error("test_renders_total not registered")
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{context.Canceled, "canceled"},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), "canceled"},
		{errors.New("H030"), "lookup"},
		{fmt.Errorf("stream: %w", errors.New("H032")), "mode"},
		{stderrors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.expected {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.expected)
		}
	}
}

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Start(ctx context.Context, page string) context.Context {
	*r.log = append(*r.log, "start "+r.name)
	return ctx
}

func (r recorder) Finish(ctx context.Context, page string, stats Stats, err error) {
	*r.log = append(*r.log, "finish "+r.name)
}

func TestChainOrder(t *testing.T) {
	var log []string
	c := Chain(recorder{"a", &log}, nil, recorder{"b", &log})
	ctx := c.Start(context.Background(), "/")
	c.Finish(ctx, "/", Stats{}, nil)

	want := "start a,start b,finish b,finish a"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Nop must be usable as is.
	Nop.Finish(Nop.Start(context.Background(), "/"), "/", Stats{}, nil)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := Logging(logger)

	obs.Finish(context.Background(), "/ok", Stats{Chunks: 2, Bytes: 10}, nil)
	obs.Finish(context.Background(), "/bad", Stats{}, errors.Errorf("H001", `"x"`))
	obs.Finish(context.Background(), "/gone", Stats{}, context.Canceled)

	out := buf.String()
	for _, want := range []string{
		`level=DEBUG msg="render finished" page=/ok chunks=2 bytes=10`,
		`level=ERROR msg="render failed" page=/bad`,
		`level=INFO msg="render canceled" page=/gone`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestOpenTelemetry(t *testing.T) {
	obs := OpenTelemetry(WithTracerName("test"), WithAttributes(attribute.String("app", "demo")))
	ctx := obs.Start(context.Background(), "/")
	if trace.SpanFromContext(ctx) == nil {
		t.Fatal("expected a span in the returned context")
	}
	obs.Finish(ctx, "/", Stats{Chunks: 1}, stderrors.New("boom"))
}

func TestOpenTelemetryFilter(t *testing.T) {
	obs := OpenTelemetry(WithPageFilter(func(page string) bool { return page != "/healthz" }))
	base := context.Background()
	if ctx := obs.Start(base, "/healthz"); ctx != base {
		t.Error("filtered page should keep the original context")
	}
	obs.Finish(base, "/healthz", Stats{}, nil)
}
