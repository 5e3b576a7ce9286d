package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// setupTelemetry installs global OpenTelemetry providers for whichever
// signals are enabled. Finished spans are logged as they end; metrics are
// collected once and logged by the returned shutdown function.
func setupTelemetry(logger *slog.Logger, metrics, tracing bool) func(context.Context) error {
	var shutdowns []func(context.Context) error

	if tracing {
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(&spanLogExporter{logger: logger}),
		)
		otel.SetTracerProvider(tp)
		shutdowns = append(shutdowns, tp.Shutdown)
	}

	if metrics {
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		otel.SetMeterProvider(mp)
		shutdowns = append(shutdowns, func(ctx context.Context) error {
			var rm metricdata.ResourceMetrics
			if err := reader.Collect(ctx, &rm); err != nil {
				return fmt.Errorf("collect metrics: %w", err)
			}
			logMetrics(ctx, logger, rm)
			return mp.Shutdown(ctx)
		})
	}

	return func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}
		return errors.Join(errs...)
	}
}

// spanLogExporter writes each finished span as one log record.
type spanLogExporter struct {
	logger *slog.Logger
}

func (e *spanLogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		attrs := []slog.Attr{
			slog.String("name", s.Name()),
			slog.String("trace_id", s.SpanContext().TraceID().String()),
			slog.String("span_id", s.SpanContext().SpanID().String()),
			slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
			slog.String("status", s.Status().Code.String()),
		}
		if s.Parent().IsValid() {
			attrs = append(attrs, slog.String("parent_id", s.Parent().SpanID().String()))
		}
		e.logger.LogAttrs(ctx, slog.LevelInfo, "span", attrs...)
	}
	return nil
}

func (e *spanLogExporter) Shutdown(context.Context) error {
	return nil
}

// logMetrics writes one log record per metric and attribute set.
func logMetrics(ctx context.Context, logger *slog.Logger, rm metricdata.ResourceMetrics) {
	enc := attribute.DefaultEncoder()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					logger.LogAttrs(ctx, slog.LevelInfo, "metric",
						slog.String("name", m.Name),
						slog.String("attributes", dp.Attributes.Encoded(enc)),
						slog.Int64("value", dp.Value))
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					logger.LogAttrs(ctx, slog.LevelInfo, "metric",
						slog.String("name", m.Name),
						slog.String("attributes", dp.Attributes.Encoded(enc)),
						slog.Uint64("count", dp.Count),
						slog.Float64("sum", dp.Sum))
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					logger.LogAttrs(ctx, slog.LevelInfo, "metric",
						slog.String("name", m.Name),
						slog.String("attributes", dp.Attributes.Encoded(enc)),
						slog.Uint64("count", dp.Count),
						slog.Int64("sum", dp.Sum))
				}
			}
		}
	}
}
