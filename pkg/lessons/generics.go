package lessons

import (
	"fmt"

	"github.com/randalmurphal/gotour/pkg/tour"
)

// foo holds a single value of any type.
type foo[T any] struct {
	bar T
}

// fooInt32 is another name for foo[int32], not a new type.
type fooInt32 = foo[int32]

func newFoo[T any](bar T) foo[T] {
	return foo[T]{bar: bar}
}

// Bar returns the held value.
func (f foo[T]) Bar() T {
	return f.bar
}

// option is either some value or none.
type option[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) option[T] {
	return option[T]{value: v, ok: true}
}

func none[T any]() option[T] {
	return option[T]{}
}

func (o option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// result is either a value or an error of any type.
type result[T, E any] struct {
	value T
	err   E
	isErr bool
}

func okResult[T, E any](v T) result[T, E] {
	return result[T, E]{value: v}
}

func errResult[T, E any](e E) result[T, E] {
	return result[T, E]{err: e, isErr: true}
}

func (r result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

type frobnicator[T any] interface {
	frobnicate() option[T]
}

// fabulous requires everything a frobnicator does, plus fab.
type fabulous[T any] interface {
	frobnicator[T]
	fab() fabulous[T]
}

func (f foo[T]) frobnicate() option[T] {
	return some(f.bar)
}

func (f foo[T]) fab() fabulous[T] {
	return f
}

func generics(ctx tour.Context) error {
	out := ctx.Output()

	x := fooInt32{bar: 12}
	var y foo[int32] = x
	fmt.Fprintln(out, "y.bar =", y.bar)

	fmt.Fprintln(out, "newFoo(123).Bar() =", newFoo(123).Bar())

	var fr frobnicator[int] = foo[int]{bar: 1}
	fmt.Fprintln(out, fr.frobnicate())
	fmt.Fprintln(out, none[int]())

	fmt.Fprintln(out, okResult[int, string](42))
	fmt.Fprintln(out, errResult[int]("boom"))

	var fab fabulous[string] = newFoo("fab")
	fmt.Fprintln(out, fab.fab().frobnicate())
	return nil
}
