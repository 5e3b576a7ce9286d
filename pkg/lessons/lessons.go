// Package lessons holds the demonstration bodies of the tour, one example per
// topic. Every lesson prints to ctx.Output() and nothing else.
//
// Registry returns the default run in teaching order. Faults returns the
// examples that fail on purpose; they are never part of the default run.
package lessons

import (
	"github.com/randalmurphal/gotour/pkg/tour"
)

// Registry returns a fresh registry with every lesson, in teaching order.
func Registry() *tour.Registry {
	return tour.NewRegistry().
		Register("hello", hello).
		Register("bindings", bindings).
		Register("functions", functions).
		Register("branches", branches).
		Register("ownership", ownership).
		Register("structs", structs).
		Register("enums", enums).
		Register("matching", matching).
		Register("generics", generics).
		Register("control_flow", controlFlow).
		Register("objects", objects)
}

// Faults returns a fresh registry of examples that fault when run.
// The CLI appends it after the lessons when include_faults is set.
func Faults() *tour.Registry {
	return tour.NewRegistry().
		Register("index_fault", indexFault)
}
