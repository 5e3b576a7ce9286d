package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	// Rebind the package-level tracer to the test provider
	tracer = otel.Tracer("tour")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestSpanManager_RunAndExampleSpans(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	m := NewSpanManager()

	ctx, runSpan := m.StartRunSpan(context.Background(), "run-123", 2)
	_, okSpan := m.StartExampleSpan(ctx, "hello", 0)
	m.RecordOutput(okSpan, 14)
	m.EndSpanWithError(okSpan, nil)
	_, badSpan := m.StartExampleSpan(ctx, "faults", 1)
	m.EndSpanWithError(badSpan, errors.New("index out of range"))
	m.EndSpanWithError(runSpan, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 3)

	hello, faults, run := spans[0], spans[1], spans[2]
	assert.Equal(t, "tour.example.hello", hello.Name)
	assert.Equal(t, "tour.example.faults", faults.Name)
	assert.Equal(t, "tour.run", run.Name)

	assert.Equal(t, run.SpanContext.SpanID(), hello.Parent.SpanID())
	assert.Equal(t, run.SpanContext.SpanID(), faults.Parent.SpanID())

	assert.Equal(t, codes.Ok, hello.Status.Code)
	assert.Equal(t, codes.Error, faults.Status.Code)
	assert.Equal(t, "index out of range", faults.Status.Description)
	require.Len(t, faults.Events, 1) // RecordError adds an exception event

	attrs := map[string]any{}
	for _, kv := range run.Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, "run-123", attrs["run.id"])
	assert.Equal(t, int64(2), attrs["run.examples"])

	helloAttrs := map[string]any{}
	for _, kv := range hello.Attributes {
		helloAttrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, "hello", helloAttrs["example.name"])
	assert.Equal(t, int64(0), helloAttrs["example.index"])
	assert.Equal(t, int64(14), helloAttrs["example.output_bytes"])
}

func TestSpanManager_EndNilSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSpanManager().RecordOutput(nil, 1)
		NewSpanManager().EndSpanWithError(nil, errors.New("x"))
	})
}
