package tour

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/randalmurphal/gotour/pkg/tour/observability"
)

// Context provides execution context to examples.
// It extends context.Context with the output writer, a logger and
// identity of the run and the example being executed.
//
// Context is immutable after creation. The runner derives a context
// for each example with the example name and index filled in.
type Context interface {
	context.Context

	// Output returns the writer examples print to.
	// Never returns nil - defaults to os.Stdout.
	Output() io.Writer

	// Logger returns the configured logger, enriched with run and example context.
	// Never returns nil - defaults to slog.Default().
	Logger() *slog.Logger

	// RunID returns the unique identifier for this run.
	// Auto-generated if not configured.
	RunID() string

	// Example returns the name of the example being executed.
	// Empty string outside of an example.
	Example() string

	// Index returns the registry position of the example being executed,
	// or -1 outside of an example.
	Index() int
}

// runContext is the internal implementation of Context.
type runContext struct {
	context.Context

	out     io.Writer
	logger  *slog.Logger
	runID   string
	example string
	index   int
}

// Output returns the output writer.
func (c *runContext) Output() io.Writer {
	return c.out
}

// Logger returns the configured logger.
func (c *runContext) Logger() *slog.Logger {
	return c.logger
}

// RunID returns the run identifier.
func (c *runContext) RunID() string {
	return c.runID
}

// Example returns the current example name.
func (c *runContext) Example() string {
	return c.example
}

// Index returns the current example index.
func (c *runContext) Index() int {
	return c.index
}

// ContextOption configures a Context.
type ContextOption func(*runContext)

// WithOutput sets the writer examples print to.
func WithOutput(w io.Writer) ContextOption {
	return func(c *runContext) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger sets the logger for the context.
// The logger will be enriched with run_id, example and index during execution.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *runContext) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithContextRunID sets the run identifier for the context.
// If not set, a UUID will be auto-generated.
// For journaling, use WithRunID() as a RunOption.
func WithContextRunID(id string) ContextOption {
	return func(c *runContext) {
		c.runID = id
	}
}

// NewContext creates a run context from a standard context.
//
// Example:
//
//	ctx := tour.NewContext(context.Background(),
//	    tour.WithOutput(&buf),
//	    tour.WithContextRunID("run-123"))
func NewContext(ctx context.Context, opts ...ContextOption) Context {
	rc := &runContext{
		Context: ctx,
		out:     os.Stdout,
		logger:  slog.Default(),
		runID:   uuid.New().String(),
		index:   -1,
	}

	for _, opt := range opts {
		opt(rc)
	}

	return rc
}

// forExample returns a context describing the given example.
// Output is replaced by out so the runner can count bytes written.
func (c *runContext) forExample(name string, index int, out io.Writer) *runContext {
	return &runContext{
		Context: c.Context,
		out:     out,
		logger:  observability.EnrichLogger(c.logger, c.runID, name, index),
		runID:   c.runID,
		example: name,
		index:   index,
	}
}

// asRunContext adapts any Context to the internal implementation.
func asRunContext(ctx Context) *runContext {
	if rc, ok := ctx.(*runContext); ok {
		return rc
	}
	return &runContext{
		Context: ctx,
		out:     ctx.Output(),
		logger:  ctx.Logger(),
		runID:   ctx.RunID(),
		example: ctx.Example(),
		index:   ctx.Index(),
	}
}

// countingWriter counts bytes passed through to the wrapped writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// withRunID returns a copy of the context carrying a different run ID.
func (c *runContext) withRunID(runID string) *runContext {
	cp := *c
	cp.runID = runID
	return &cp
}
