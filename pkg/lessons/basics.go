package lessons

import (
	"fmt"
	"io"
	"strings"

	"github.com/randalmurphal/gotour/pkg/tour"
)

func hello(ctx tour.Context) error {
	fmt.Fprintln(ctx.Output(), "Hello, world!")
	return nil
}

func bindings(ctx tour.Context) error {
	out := ctx.Output()

	// Constants cannot be reassigned.
	const x int32 = 1
	// x = 3 <-- compile-time error: cannot assign to x

	mutable := 1
	mutable = 4
	mutable += 2

	// Typed literals
	y := int32(13)
	f := float64(1.3)

	// Inferred: int and float64
	implicitX := 1
	implicitF := 1.3

	sum := x + y + 13
	fmt.Fprintln(out, "sum:", sum)
	fmt.Fprintln(out, "mutable:", mutable)
	fmt.Fprintf(out, "inferred: %T %T\n", implicitX, implicitF)

	greeting := "hello world!"
	fmt.Fprintln(out, f, greeting)

	// Three ways to build the same string.
	s := "hello world"
	s2 := fmt.Sprint("hello world")
	var sb strings.Builder
	sb.WriteString("hello world")
	s3 := sb.String()

	sSlice := s
	fmt.Fprintln(out, s, sSlice)
	fmt.Fprintln(out, s == s2, s2 == s3)
	fmt.Fprintln(out, s[6:11], s[6:], s[:5])

	// Arrays have a fixed size, slices grow.
	fourInts := [4]int32{1, 2, 3, 4}
	vector := []int32{1, 2, 3, 4}
	vector = append(vector, 5)
	// append(fourInts, 5) <-- compile-time error: fourInts is not a slice

	slice := vector
	slice2 := vector[1:4]
	fmt.Fprintf(out, "%v | %v\n", vector, slice2)

	fmt.Fprintln(out, fourInts[1])
	fmt.Fprintln(out, vector[2])
	fmt.Fprintln(out, slice[3])

	// Multiple return values stand in for tuples.
	a, b, c := triple()
	fmt.Fprintln(out, a, b, c)
	fmt.Fprintln(out, b)

	return nil
}

func triple() (int32, string, float64) {
	return 1, "hello", 3.4
}

func functions(ctx tour.Context) error {
	out := ctx.Output()

	anotherFunction(out, 10, 9)
	newScope(out)

	x := five()
	fmt.Fprintln(out, "The value of five function is", x)

	x = plusOne(5)
	fmt.Fprintln(out, "The value of plus one is:", x)

	fmt.Fprintln(out, "add2(1, 3) =", add2(1, 3))
	return nil
}

func anotherFunction(out io.Writer, x, y int32) {
	fmt.Fprintln(out, "The value of x is:", x)
	fmt.Fprintln(out, "The value of y is:", y)
}

func newScope(out io.Writer) {
	x := 5

	var u int
	{
		x := 3
		u = x + 1
	}

	fmt.Fprintln(out, "The value of new scope:", u)
	fmt.Fprintln(out, "The outer x is still:", x)
}

func five() int32 {
	return 5
}

func plusOne(x int32) int32 {
	return x + 1
}

func add2(x, y int32) int32 {
	return x + y
}
