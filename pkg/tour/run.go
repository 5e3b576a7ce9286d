package tour

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/randalmurphal/gotour/pkg/tour/journal"
	"github.com/randalmurphal/gotour/pkg/tour/observability"
)

// Report summarizes a run.
type Report struct {
	// RunID identifies the run in logs, spans and the journal.
	RunID string
	// Completed lists the examples that returned normally, in execution order.
	Completed []string
	// Duration is the wall time of the run.
	Duration time.Duration
}

// RunAll executes every example of reg exactly once, in registration order.
//
// The first fault stops the run: examples after it do not execute. An error
// returned by an action comes back as *ExampleError, a panic as *PanicError.
// Both unwrap to the original cause. The returned Report is never nil and
// lists what completed before the fault.
//
// A nil or empty registry is a no-op.
//
// Example:
//
//	ctx := tour.NewContext(context.Background())
//	report, err := tour.RunAll(ctx, reg)
//	if err != nil {
//	    // report.Completed holds the examples that ran before the fault
//	}
func RunAll(ctx Context, reg *Registry, opts ...RunOption) (*Report, error) {
	if ctx == nil {
		return &Report{}, ErrNilContext
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return runFrom(ctx, reg.Examples(), 0, &cfg)
}

// runFrom executes examples[start:] with full observability.
func runFrom(ctx Context, examples []Example, start int, cfg *runConfig) (report *Report, runErr error) {
	if cfg.journal != nil && cfg.runID == "" {
		return &Report{}, ErrRunIDRequired
	}

	rc := asRunContext(ctx)
	if cfg.runID != "" && cfg.runID != rc.runID {
		rc = rc.withRunID(cfg.runID)
	}
	report = &Report{RunID: rc.runID, Completed: []string{}}

	startTime := time.Now()
	observability.LogRunStart(cfg.logger, rc.runID, len(examples)-start)

	spanCtx, runSpan := cfg.spans.StartRunSpan(rc, rc.runID, len(examples)-start)
	defer func() {
		cfg.spans.EndSpanWithError(runSpan, runErr)

		report.Duration = time.Since(startTime)
		cfg.metrics.RecordRun(spanCtx, runErr == nil, report.Duration)

		durationMs := float64(report.Duration.Milliseconds())
		if runErr != nil {
			observability.LogRunError(cfg.logger, rc.runID, runErr, durationMs, faultedExample(runErr))
		} else {
			observability.LogRunComplete(cfg.logger, rc.runID, durationMs, len(report.Completed))
		}
	}()

	for i := start; i < len(examples); i++ {
		ex := examples[i]

		// Check for cancellation before starting the next example
		select {
		case <-rc.Done():
			return report, &CancellationError{
				Name:  ex.Name,
				Index: i,
				Cause: rc.Err(),
			}
		default:
		}

		observability.LogExampleStart(cfg.logger, ex.Name, i)

		exSpanCtx, exSpan := cfg.spans.StartExampleSpan(spanCtx, ex.Name, i)
		out := &countingWriter{w: rc.out}
		exCtx := rc.forExample(ex.Name, i, out)
		exCtx.Context = exSpanCtx

		exStart := time.Now()
		err := executeExample(exCtx, ex, i)
		duration := time.Since(exStart)

		cfg.metrics.RecordExampleExecution(exSpanCtx, ex.Name, duration, err)
		cfg.spans.RecordOutput(exSpan, out.n)
		cfg.spans.EndSpanWithError(exSpan, err)

		jerr := record(exSpanCtx, cfg, rc.runID, i, ex.Name, out.n, duration, err)

		if err != nil {
			observability.LogExampleError(cfg.logger, ex.Name, err)
			if jerr != nil {
				return report, errors.Join(err, jerr)
			}
			return report, err
		}
		if jerr != nil {
			return report, jerr
		}
		observability.LogExampleComplete(cfg.logger, ex.Name, float64(duration.Milliseconds()), out.n)
		report.Completed = append(report.Completed, ex.Name)
	}

	return report, nil
}

// executeExample runs one action, converting a panic into *PanicError
// and a returned error into *ExampleError.
func executeExample(ctx Context, ex Example, index int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				Name:  ex.Name,
				Index: index,
				Value: r,
				Stack: string(debug.Stack()),
			}
		}
	}()

	if err := ex.Action(ctx); err != nil {
		return &ExampleError{
			Name:  ex.Name,
			Index: index,
			Err:   err,
		}
	}
	return nil
}

// record appends the example outcome to the journal, if one is configured.
// Returns a *JournalError only when journal failures are fatal.
func record(ctx context.Context, cfg *runConfig, runID string, index int, name string, outputBytes int64, duration time.Duration, exErr error) error {
	if cfg.journal == nil {
		return nil
	}

	entry := journal.Entry{
		RunID:       runID,
		Index:       index,
		Name:        name,
		Status:      journal.StatusCompleted,
		OutputBytes: outputBytes,
		Duration:    duration,
		Timestamp:   time.Now().UTC(),
	}
	if exErr != nil {
		entry.Status = journal.StatusFailed
		entry.Error = exErr.Error()
	}

	if err := cfg.journal.Append(entry); err != nil {
		if cfg.journalFailureFatal {
			return &JournalError{Name: name, Op: "append", Err: err}
		}
		observability.LogJournalError(cfg.logger, name, "append", err)
		return nil
	}

	observability.LogJournalEntry(cfg.logger, name, string(entry.Status))
	cfg.metrics.RecordJournalEntry(ctx, name, outputBytes)
	return nil
}

// Resume continues a journaled run. Examples recorded as completed at the
// head of the registry are skipped; execution restarts at the first example
// that failed or never ran, and journaling continues under the same run ID.
//
// The Report lists only the examples executed by this call. A run whose
// examples all completed returns an empty Report.
//
// Example:
//
//	// Previous run faulted at example 4
//	report, err := tour.Resume(ctx, reg, store, "run-123")
func Resume(ctx Context, reg *Registry, store journal.Store, runID string, opts ...RunOption) (*Report, error) {
	if ctx == nil {
		return &Report{}, ErrNilContext
	}

	entries, err := store.List(runID)
	if err != nil {
		return &Report{}, fmt.Errorf("list journal: %w", err)
	}
	if len(entries) == 0 {
		return &Report{}, fmt.Errorf("%w: %s", ErrNoJournal, runID)
	}

	examples := reg.Examples()
	for _, e := range entries {
		if e.Index >= len(examples) {
			return &Report{}, fmt.Errorf("%w: entry %d (%s) beyond %d examples",
				ErrJournalMismatch, e.Index, e.Name, len(examples))
		}
		if examples[e.Index].Name != e.Name {
			return &Report{}, fmt.Errorf("%w: entry %d is %q, registry has %q",
				ErrJournalMismatch, e.Index, e.Name, examples[e.Index].Name)
		}
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.journal = store
	cfg.runID = runID

	from := journal.CompletedPrefix(entries)
	observability.LogResume(cfg.logger, runID, from, len(examples)-from)

	return runFrom(ctx, examples, from, &cfg)
}
