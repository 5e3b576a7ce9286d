package tour

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// testLogHandler captures log records for testing.
type testLogHandler struct {
	buf   *bytes.Buffer
	level slog.Level
}

func newTestLogHandler() *testLogHandler {
	return &testLogHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testLogHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *testLogHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *testLogHandler) getRecords() []map[string]any {
	var records []map[string]any
	for _, line := range bytes.Split(h.buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(line, &m); err == nil {
			records = append(records, m)
		}
	}
	return records
}

func messages(records []map[string]any) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r["msg"].(string))
	}
	return out
}

func TestRunAll_ObservabilityLogger(t *testing.T) {
	t.Run("logs run and example lifecycle", func(t *testing.T) {
		handler := newTestLogHandler()
		logger := slog.New(handler)

		reg := NewRegistry().
			Register("a", makePrintingExample("a")).
			Register("b", makePrintingExample("b"))

		var buf bytes.Buffer
		_, err := RunAll(testCtx(&buf), reg, WithObservabilityLogger(logger), WithRunID("log-run"))
		require.NoError(t, err)

		records := handler.getRecords()
		assert.Equal(t, []string{
			"tour run starting",
			"example starting",
			"example completed",
			"example starting",
			"example completed",
			"tour run completed",
		}, messages(records))

		last := records[len(records)-1]
		assert.Equal(t, "log-run", last["run_id"])
		assert.EqualValues(t, 2, last["examples_executed"])
	})

	t.Run("logs fault with last example", func(t *testing.T) {
		handler := newTestLogHandler()
		logger := slog.New(handler)

		reg := NewRegistry().Register("bad", makeFailingExample(errors.New("broken")))

		var buf bytes.Buffer
		_, err := RunAll(testCtx(&buf), reg, WithObservabilityLogger(logger))
		require.Error(t, err)

		records := handler.getRecords()
		require.NotEmpty(t, records)
		last := records[len(records)-1]
		assert.Equal(t, "tour run failed", last["msg"])
		assert.Equal(t, "ERROR", last["level"])
		assert.Equal(t, "bad", last["last_example"])
	})

	t.Run("example logger carries run context", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))

		reg := NewRegistry().
			Register("first", makePrintingExample("first")).
			Register("second", func(ctx Context) error {
				ctx.Logger().Info("printing")
				return nil
			})

		var buf bytes.Buffer
		ctx := NewContext(context.Background(), WithOutput(&buf), WithLogger(logger))
		_, err := RunAll(ctx, reg, WithRunID("ctx-run"))
		require.NoError(t, err)

		var record map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
		assert.Equal(t, "printing", record["msg"])
		assert.Equal(t, "ctx-run", record["run_id"])
		assert.Equal(t, "second", record["example"])
		assert.EqualValues(t, 1, record["index"])
	})

	t.Run("logger output stays out of example output", func(t *testing.T) {
		handler := newTestLogHandler()
		reg := NewRegistry().Register("a", makePrintingExample("a"))

		var buf bytes.Buffer
		_, err := RunAll(testCtx(&buf), reg, WithObservabilityLogger(slog.New(handler)))
		require.NoError(t, err)
		assert.Equal(t, "running a\n", buf.String())
	})
}

// TestRunAll_MetricsAndTracing installs SDK providers once for the package:
// the observability package binds to the first global providers it sees.
func TestRunAll_MetricsAndTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalTP := otel.GetTracerProvider()
	originalMP := otel.GetMeterProvider()
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	defer func() {
		otel.SetTracerProvider(originalTP)
		otel.SetMeterProvider(originalMP)
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	}()

	reg := NewRegistry().
		Register("good", makePrintingExample("good")).
		Register("bad", makeFailingExample(errors.New("broken"))).
		Register("never", makePrintingExample("never"))

	var buf bytes.Buffer
	_, err := RunAll(testCtx(&buf), reg, WithMetrics(true), WithTracing(true), WithRunID("traced"))
	require.Error(t, err)

	t.Run("spans", func(t *testing.T) {
		spans := exporter.GetSpans()
		names := make([]string, 0, len(spans))
		for _, s := range spans {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"tour.example.good", "tour.example.bad", "tour.run"}, names)

		run := spans[2]
		assert.Equal(t, codes.Error, run.Status.Code)
		for _, s := range spans[:2] {
			assert.Equal(t, run.SpanContext.SpanID(), s.Parent.SpanID())
		}
		assert.Equal(t, codes.Ok, spans[0].Status.Code)
		assert.Equal(t, codes.Error, spans[1].Status.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(context.Background(), &rm))

		found := map[string]metricdata.Metrics{}
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				found[m.Name] = m
			}
		}

		executions, ok := found["tour.example.executions"]
		require.True(t, ok)
		sum, ok := executions.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		var total int64
		for _, dp := range sum.DataPoints {
			total += dp.Value
		}
		assert.Equal(t, int64(2), total)

		assert.Contains(t, found, "tour.example.faults")
		assert.Contains(t, found, "tour.run.runs")
		assert.Contains(t, found, "tour.run.latency_ms")
	})
}
