/*
Package tour runs an ordered registry of small demonstration programs.

# Overview

An Example is a name plus an Action. A Registry keeps examples in the order
they were registered, and RunAll executes them in that order, each exactly
once. Examples share nothing but the output writer, so the only invariant the
runner protects is ordering: output appears registry-first, statement-second.

# Basic Usage

	func loopDemo(ctx tour.Context) error {
	    counter := 0
	    for {
	        counter++
	        if counter == 10 {
	            break
	        }
	    }
	    fmt.Fprintln(ctx.Output(), "test loop result is", counter*2)
	    return nil
	}

	func main() {
	    reg := tour.NewRegistry().
	        Register("loop_demo", loopDemo).
	        Register("while_demo", whileDemo)

	    ctx := tour.NewContext(context.Background())
	    if _, err := tour.RunAll(ctx, reg); err != nil {
	        log.Fatal(err)
	    }
	}

# Faults

The runner does not recover from faults. The first example that returns an
error or panics stops the run, and nothing after it executes:

	report, err := tour.RunAll(ctx, reg)
	var exErr *tour.ExampleError
	if errors.As(err, &exErr) {
	    log.Printf("example %s failed: %v", exErr.Name, exErr.Err)
	}

	var panicErr *tour.PanicError
	if errors.As(err, &panicErr) {
	    log.Printf("example %s panicked: %v\n%s", panicErr.Name, panicErr.Value, panicErr.Stack)
	}

report.Completed lists the examples that finished before the fault.

# Journaling

A journal records every example outcome so a faulted run can be resumed:

	store, err := journal.NewSQLiteStore("./tour.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

	_, err = tour.RunAll(ctx, reg,
	    tour.WithJournal(store),
	    tour.WithRunID("run-123"))

	// Later: pick up at the example that failed
	_, err = tour.Resume(ctx, reg, store, "run-123")

# Observability

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	_, err := tour.RunAll(ctx, reg,
	    tour.WithObservabilityLogger(logger),
	    tour.WithMetrics(true),
	    tour.WithTracing(true))

Logs include structured fields: run_id, example, index, duration_ms.
OpenTelemetry metrics: tour.example.executions, tour.example.latency_ms, etc.
OpenTelemetry tracing: tour.run > tour.example.{name} spans.

# Thread Safety

  - Registry is safe for concurrent reads; register everything before running
  - Context is immutable
  - journal.Store implementations are safe for concurrent use
*/
package tour
