// Package journal records the outcome of each example in a run so that a
// faulted run can be inspected or resumed.
package journal

import (
	"errors"
	"time"
)

// Status is the recorded outcome of one example.
type Status string

const (
	// StatusCompleted marks an example whose action returned normally.
	StatusCompleted Status = "completed"
	// StatusFailed marks an example whose action returned an error or panicked.
	StatusFailed Status = "failed"
)

// Entry is one journaled example outcome.
type Entry struct {
	RunID       string
	Index       int
	Name        string
	Status      Status
	OutputBytes int64
	Duration    time.Duration
	Error       string
	Timestamp   time.Time
}

// Store persists journal entries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append records an entry. An entry for the same (RunID, Index)
	// replaces the earlier one.
	Append(entry Entry) error

	// List returns all entries for a run, ordered by index.
	// Returns empty slice (not error) if run has no entries.
	List(runID string) ([]Entry, error)

	// DeleteRun removes all entries for a run.
	// Returns nil if run has no entries.
	DeleteRun(runID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for journal operations.
var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("journal store closed")

	// ErrInvalidEntry indicates an entry without a run ID or with a negative index.
	ErrInvalidEntry = errors.New("invalid journal entry")
)

// validate checks the fields every store relies on.
func (e Entry) validate() error {
	if e.RunID == "" || e.Index < 0 {
		return ErrInvalidEntry
	}
	return nil
}

// CompletedPrefix returns how many entries, starting at index 0, are
// consecutively marked completed. Entries must be ordered by index.
func CompletedPrefix(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Index != n || e.Status != StatusCompleted {
			break
		}
		n++
	}
	return n
}
