package tour

import (
	"log/slog"

	"github.com/randalmurphal/gotour/pkg/tour/journal"
	"github.com/randalmurphal/gotour/pkg/tour/observability"
)

// runConfig holds configuration for a run.
type runConfig struct {
	logger              *slog.Logger
	metrics             observability.MetricsRecorder
	spans               observability.SpanManager
	journal             journal.Store
	runID               string
	journalFailureFatal bool
}

// defaultRunConfig returns the default run configuration:
// no run-level logging, no metrics, no tracing, no journal.
func defaultRunConfig() runConfig {
	return runConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// RunOption configures run behavior.
type RunOption func(*runConfig)

// WithObservabilityLogger sets the logger for run-level events
// (run start/complete, example start/complete/fault, journal writes).
//
// This is separate from the Context logger handed to examples.
func WithObservabilityLogger(logger *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
func WithMetrics(enabled bool) RunOption {
	return func(c *runConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry tracing using the global tracer provider.
// Produces a tour.run span with one tour.example.<name> child per example.
func WithTracing(enabled bool) RunOption {
	return func(c *runConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithJournal records each example's outcome in store.
// Requires WithRunID.
//
// Example:
//
//	store, _ := journal.NewSQLiteStore("./tour.db")
//	defer store.Close()
//	report, err := tour.RunAll(ctx, reg,
//	    tour.WithJournal(store),
//	    tour.WithRunID("run-123"))
func WithJournal(store journal.Store) RunOption {
	return func(c *runConfig) {
		c.journal = store
	}
}

// WithRunID sets the run identifier used for journaling and observability.
// Overrides the Context's run ID.
func WithRunID(id string) RunOption {
	return func(c *runConfig) {
		c.runID = id
	}
}

// WithJournalFailureFatal makes journal write failures stop the run with a
// *JournalError. By default they are logged and the run continues.
func WithJournalFailureFatal(fatal bool) RunOption {
	return func(c *runConfig) {
		c.journalFailureFatal = fatal
	}
}
