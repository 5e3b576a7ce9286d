package tour

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry use and execution.
var (
	// ErrNilContext indicates RunAll() or Resume() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrUnknownExample indicates Select() was asked for a name that is not registered.
	ErrUnknownExample = errors.New("unknown example")
)

// Sentinel errors for journaling and resume.
var (
	// ErrRunIDRequired indicates a journal was configured without a run ID.
	ErrRunIDRequired = errors.New("run ID required for journaling")

	// ErrNoJournal indicates no journal entries exist for the run.
	ErrNoJournal = errors.New("no journal entries found for run")

	// ErrJournalMismatch indicates the journal does not describe the given registry.
	ErrJournalMismatch = errors.New("journal does not match registry")
)

// ExampleError wraps an error returned by an example's action.
// The original error is preserved and reachable through Unwrap.
type ExampleError struct {
	// Name is the display name of the example that failed.
	Name string
	// Index is the example's position in the registry.
	Index int
	// Err is the error returned by the action.
	Err error
}

// Error implements the error interface.
func (e *ExampleError) Error() string {
	return fmt.Sprintf("example %d (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExampleError) Unwrap() error {
	return e.Err
}

// PanicError captures a panic raised by an example's action.
// It includes the stack trace for debugging.
type PanicError struct {
	// Name is the display name of the example that panicked.
	Name string
	// Index is the example's position in the registry.
	Index int
	// Value is the value passed to panic().
	Value any
	// Stack is the full stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("example %d (%s) panicked: %v", e.Index, e.Name, e.Value)
}

// Unwrap returns the panic value when it is itself an error
// (runtime errors such as index out of range are).
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// CancellationError reports a run stopped because its context was done.
type CancellationError struct {
	// Name is the example that was about to run.
	Name string
	// Index is that example's position in the registry.
	Index int
	// Cause is context.Canceled or context.DeadlineExceeded.
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("cancelled before example %d (%s): %v", e.Index, e.Name, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}

// JournalError wraps errors from journal operations.
// It is only returned when journal failures are configured as fatal.
type JournalError struct {
	// Name is the example whose outcome could not be recorded.
	Name string
	// Op is the operation that failed ("append", "list").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	return fmt.Sprintf("journal %s at example %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *JournalError) Unwrap() error {
	return e.Err
}

// faultedExample returns the example a run error points at, or "".
func faultedExample(err error) string {
	var exErr *ExampleError
	if errors.As(err, &exErr) {
		return exErr.Name
	}
	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		return panicErr.Name
	}
	var cancelErr *CancellationError
	if errors.As(err, &cancelErr) {
		return cancelErr.Name
	}
	var journalErr *JournalError
	if errors.As(err, &journalErr) {
		return journalErr.Name
	}
	return ""
}
