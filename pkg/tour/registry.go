package tour

import (
	"errors"
	"fmt"
	"sync"
)

// Action is the body of an example. It receives the run context and writes
// whatever it demonstrates to ctx.Output().
//
// Returning a non-nil error is an example fault: the run stops there.
//
// Example:
//
//	func hello(ctx tour.Context) error {
//	    fmt.Fprintln(ctx.Output(), "Hello, world!")
//	    return nil
//	}
type Action func(ctx Context) error

// Example is one named demonstration routine.
// The name is for display only and need not be unique.
type Example struct {
	Name   string
	Action Action
}

// Registry is an ordered list of examples. Registration order is
// execution order.
//
// Registry is NOT meant to be mutated while a run is in progress.
// Build it once at start-up, then hand it to RunAll.
//
// Example:
//
//	reg := tour.NewRegistry().
//	    Register("loop_demo", loopDemo).
//	    Register("while_demo", whileDemo)
type Registry struct {
	mu       sync.RWMutex
	examples []Example
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a named example.
// Returns the registry for method chaining.
//
// Panics if action is nil.
func (r *Registry) Register(name string, action Action) *Registry {
	if action == nil {
		panic("tour: example action cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples = append(r.examples, Example{Name: name, Action: action})
	return r
}

// Append registers every example of other after the ones already present.
// Returns the registry for method chaining.
func (r *Registry) Append(other *Registry) *Registry {
	if other == nil {
		return r
	}
	examples := other.Examples()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples = append(r.examples, examples...)
	return r
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.examples)
}

// Names returns example names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.examples))
	for i, ex := range r.examples {
		names[i] = ex.Name
	}
	return names
}

// Examples returns a copy of the registered examples in order.
func (r *Registry) Examples() []Example {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Example, len(r.examples))
	copy(out, r.examples)
	return out
}

// Select returns a new registry holding the examples whose names are listed,
// in registration order. Every example carrying a listed name is kept.
// Unknown names are reported together.
func (r *Registry) Select(names ...string) (*Registry, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	selected := NewRegistry()
	found := make(map[string]bool, len(names))
	for _, ex := range r.Examples() {
		if wanted[ex.Name] {
			selected.examples = append(selected.examples, ex)
			found[ex.Name] = true
		}
	}

	var errs []error
	for _, n := range names {
		if !found[n] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownExample, n))
			found[n] = true
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return selected, nil
}
