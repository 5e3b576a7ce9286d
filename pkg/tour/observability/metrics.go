package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records tour metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordExampleExecution records an example execution with its duration and fault status.
	RecordExampleExecution(ctx context.Context, name string, duration time.Duration, err error)

	// RecordRun records a run completion.
	RecordRun(ctx context.Context, success bool, duration time.Duration)

	// RecordJournalEntry records the output size of a journaled example.
	RecordJournalEntry(ctx context.Context, name string, outputBytes int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	exampleExecutions metric.Int64Counter
	exampleLatency    metric.Float64Histogram
	exampleFaults     metric.Int64Counter
	runs              metric.Int64Counter
	runLatency        metric.Float64Histogram
	outputBytes       metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("tour")

	exampleExecutions, err := meter.Int64Counter("tour.example.executions",
		metric.WithDescription("Number of example executions"),
	)
	if err != nil {
		return nil, err
	}

	exampleLatency, err := meter.Float64Histogram("tour.example.latency_ms",
		metric.WithDescription("Example execution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	exampleFaults, err := meter.Int64Counter("tour.example.faults",
		metric.WithDescription("Number of example faults"),
	)
	if err != nil {
		return nil, err
	}

	runs, err := meter.Int64Counter("tour.run.runs",
		metric.WithDescription("Number of tour runs"),
	)
	if err != nil {
		return nil, err
	}

	runLatency, err := meter.Float64Histogram("tour.run.latency_ms",
		metric.WithDescription("Tour run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	outputBytes, err := meter.Int64Histogram("tour.journal.output_bytes",
		metric.WithDescription("Bytes printed by a journaled example"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		exampleExecutions: exampleExecutions,
		exampleLatency:    exampleLatency,
		exampleFaults:     exampleFaults,
		runs:              runs,
		runLatency:        runLatency,
		outputBytes:       outputBytes,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before the first call:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordExampleExecution records an example execution.
func (m *otelMetrics) RecordExampleExecution(ctx context.Context, name string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("example", name),
	}

	m.exampleExecutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.exampleLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.exampleFaults.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordRun records a run.
func (m *otelMetrics) RecordRun(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.runLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordJournalEntry records a journaled example's output size.
func (m *otelMetrics) RecordJournalEntry(ctx context.Context, name string, outputBytes int64) {
	attrs := []attribute.KeyValue{
		attribute.String("example", name),
	}
	m.outputBytes.Record(ctx, outputBytes, metric.WithAttributes(attrs...))
}
