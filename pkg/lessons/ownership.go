package lessons

import (
	"fmt"
	"io"
	"slices"

	"github.com/randalmurphal/gotour/pkg/tour"
)

func ownership(ctx tour.Context) error {
	out := ctx.Output()

	s := "hello"
	s += ", world!"
	fmt.Fprintln(out, s)

	assignString(out)
	cloneSlice(out)

	s1 := givesBack()
	s3 := takesAndGivesBack("hello")
	fmt.Fprintf(out, "gave %s, took and gave back %s\n", s1, s3)

	copyVersusAlias(out)
	return nil
}

// assignString shows that assignment never invalidates the source:
// strings are immutable, so both names stay usable.
func assignString(out io.Writer) {
	s1 := "hello"
	s2 := s1
	// A move-only language rejects any later use of s1 here. Go does not.

	fmt.Fprintf(out, "%s, world!\n", s2)
	fmt.Fprintf(out, "s1 = %s, s2 = %s\n", s1, s2)
}

// cloneSlice contrasts sharing a backing array with copying it.
func cloneSlice(out io.Writer) {
	s1 := []byte("hello")

	alias := s1
	alias[0] = 'y'
	fmt.Fprintf(out, "after writing through alias: s1 = %s\n", s1)

	s2 := slices.Clone(s1)
	s2[0] = 'j'
	fmt.Fprintf(out, "after writing the clone: s1 = %s, s2 = %s\n", s1, s2)
}

func givesBack() string {
	someString := "hello"
	return someString
}

func takesAndGivesBack(aString string) string {
	return aString
}

type fooBoo struct {
	v int32
}

// copyVersusAlias shows struct assignment copying and pointer assignment aliasing.
func copyVersusAlias(out io.Writer) {
	x := fooBoo{v: 1}
	y := x
	y.v = 2
	fmt.Fprintf(out, "copy: x = %v, y = %v\n", x, y)

	p := &fooBoo{v: 1}
	q := p
	q.v = 2
	fmt.Fprintf(out, "alias: p = %v, q = %v\n", *p, *q)
}
