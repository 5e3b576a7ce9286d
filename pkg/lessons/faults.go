package lessons

import (
	"fmt"

	"github.com/randalmurphal/gotour/pkg/tour"
)

// indexFault reads one past the end of a slice and panics with a runtime
// index error. With an array and a constant index the compiler catches it:
//
//	arr := [3]int{1, 2, 3}
//	arr[3] <-- compile-time error: index 3 out of bounds
func indexFault(ctx tour.Context) error {
	values := []int{1, 2, 3}
	i := len(values)

	fmt.Fprintf(ctx.Output(), "reading index %d of %d\n", i, len(values))
	fmt.Fprintln(ctx.Output(), values[i])
	return nil
}
