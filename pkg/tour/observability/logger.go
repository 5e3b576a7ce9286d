// Package observability provides structured logging, metrics and tracing
// for tour runs.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
)

// EnrichLogger adds run context to a logger.
// Returns a new logger with run_id, example, and index fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123", "bindings", 1)
//	enriched.Info("printing") // includes run_id, example, index
func EnrichLogger(logger *slog.Logger, runID, example string, index int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("example", example),
		slog.Int("index", index),
	)
}

// LogRunStart logs the start of a run.
func LogRunStart(logger *slog.Logger, runID string, examples int) {
	if logger == nil {
		return
	}
	logger.Info("tour run starting",
		slog.String("run_id", runID),
		slog.Int("examples", examples),
	)
}

// LogRunComplete logs successful run completion.
func LogRunComplete(logger *slog.Logger, runID string, durationMs float64, executed int) {
	if logger == nil {
		return
	}
	logger.Info("tour run completed",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("examples_executed", executed),
	)
}

// LogRunError logs a run that stopped on a fault.
func LogRunError(logger *slog.Logger, runID string, err error, durationMs float64, lastExample string) {
	if logger == nil {
		return
	}
	logger.Error("tour run failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
		slog.String("last_example", lastExample),
	)
}

// LogExampleStart logs example execution start.
func LogExampleStart(logger *slog.Logger, name string, index int) {
	if logger == nil {
		return
	}
	logger.Debug("example starting",
		slog.String("example", name),
		slog.Int("index", index),
	)
}

// LogExampleComplete logs successful example completion.
func LogExampleComplete(logger *slog.Logger, name string, durationMs float64, outputBytes int64) {
	if logger == nil {
		return
	}
	logger.Debug("example completed",
		slog.String("example", name),
		slog.Float64("duration_ms", durationMs),
		slog.Int64("output_bytes", outputBytes),
	)
}

// LogExampleError logs an example fault.
func LogExampleError(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Error("example failed",
		slog.String("example", name),
		slog.String("error", err.Error()),
	)
}

// LogJournalEntry logs a recorded journal entry.
func LogJournalEntry(logger *slog.Logger, name string, status string) {
	if logger == nil {
		return
	}
	logger.Debug("journal entry recorded",
		slog.String("example", name),
		slog.String("status", status),
	)
}

// LogJournalError logs a journal failure (non-fatal).
func LogJournalError(logger *slog.Logger, name string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal failed",
		slog.String("example", name),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// LogResume logs where a resumed run picks up.
func LogResume(logger *slog.Logger, runID string, from int, remaining int) {
	if logger == nil {
		return
	}
	logger.Info("tour run resuming",
		slog.String("run_id", runID),
		slog.Int("from_index", from),
		slog.Int("remaining", remaining),
	)
}
