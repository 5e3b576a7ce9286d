package lessons

import (
	"fmt"
	"io"

	"github.com/randalmurphal/gotour/pkg/tour"
)

func branches(ctx tour.Context) error {
	out := ctx.Output()

	ifExp(out)
	ifAsValue(out)
	if err := LoopDemo(ctx); err != nil {
		return err
	}
	if err := WhileDemo(ctx); err != nil {
		return err
	}
	indexedWhile(out)
	rangeIter(out)
	reverseRange(out)
	return nil
}

func ifExp(out io.Writer) {
	num := 7

	if num < 5 {
		fmt.Fprintln(out, "Condition is true")
	} else {
		fmt.Fprintln(out, "Condition is false")
	}
}

func ifAsValue(out io.Writer) {
	condition := true

	number := 6
	if condition {
		number = 5
	}

	fmt.Fprintf(out, "The value of test_if_con is %d\n", number)
}

// LoopDemo breaks out of an unbounded loop once the counter reaches 10
// and prints twice the counter. A result other than 20 is a fault.
func LoopDemo(ctx tour.Context) error {
	counter := 0

	var result int
	for {
		counter++
		if counter == 10 {
			result = counter * 2
			break
		}
	}

	if result != 20 {
		return fmt.Errorf("loop result is %d, want 20", result)
	}

	fmt.Fprintf(ctx.Output(), "test loop result is %d\n", result)
	return nil
}

// WhileDemo counts down from 3 with a condition-only for loop.
func WhileDemo(ctx tour.Context) error {
	out := ctx.Output()

	number := 3
	for number != 0 {
		fmt.Fprintf(out, "%d!\n", number)
		number--
	}

	fmt.Fprintln(out, "LIFTOFF!!!")
	return nil
}

func indexedWhile(out io.Writer) {
	a := [5]int{10, 20, 30, 40, 50}

	index := 0
	for index < len(a) {
		fmt.Fprintf(out, "the value of test_for is %d\n", a[index])
		index++
	}
}

func rangeIter(out io.Writer) {
	a := [5]int{10, 20, 30, 40, 50}

	for _, element := range a {
		fmt.Fprintf(out, "the iter value is %d\n", element)
	}
}

func reverseRange(out io.Writer) {
	for number := 3; number >= 1; number-- {
		fmt.Fprintf(out, "rev is %d\n", number)
	}

	fmt.Fprintln(out, "LIFTOFF!!!")
}
