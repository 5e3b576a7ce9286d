package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("tour")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRunSpan starts a span for the entire run.
	StartRunSpan(ctx context.Context, runID string, examples int) (context.Context, trace.Span)

	// StartExampleSpan starts a span for one example.
	// The example span should be a child of the run span.
	StartExampleSpan(ctx context.Context, name string, index int) (context.Context, trace.Span)

	// RecordOutput attaches the number of bytes an example printed to its span.
	RecordOutput(span trace.Span, outputBytes int64)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before running:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRunSpan starts a span for the entire run.
func (m *otelSpanManager) StartRunSpan(ctx context.Context, runID string, examples int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "tour.run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("run.examples", examples),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartExampleSpan starts a span for an example.
func (m *otelSpanManager) StartExampleSpan(ctx context.Context, name string, index int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "tour.example."+name,
		trace.WithAttributes(
			attribute.String("example.name", name),
			attribute.Int("example.index", index),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// RecordOutput sets example.output_bytes on span.
func (m *otelSpanManager) RecordOutput(span trace.Span, outputBytes int64) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Int64("example.output_bytes", outputBytes))
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
