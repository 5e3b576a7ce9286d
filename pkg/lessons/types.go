package lessons

import (
	"fmt"

	"github.com/randalmurphal/gotour/pkg/tour"
)

type point3 struct {
	x, y, z int32
}

// point2 is built positionally, the closest Go gets to a tuple struct.
type point2 struct {
	a, b int32
}

func structs(ctx tour.Context) error {
	out := ctx.Output()

	origin := point3{x: 0, y: 0, z: 0}
	fmt.Fprintf(out, "origin: %+v\n", origin)

	origin2 := point2{0, 0}
	fmt.Fprintf(out, "origin2: %v\n", origin2)

	p := point3{x: 1, y: 2, z: 3}
	x, y, z := p.x, p.y, p.z
	fmt.Fprintln(out, "destructured:", x, y, z)
	return nil
}

// direction is a C-like enum.
type direction int

const (
	left direction = iota
	right
	up
	down
)

func (d direction) String() string {
	switch d {
	case left:
		return "Left"
	case right:
		return "Right"
	case up:
		return "Up"
	case down:
		return "Down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// message is a closed set of variants. Only types in this package can
// implement it.
type message interface {
	isMessage()
}

type quit struct{}

type write struct {
	text string
}

type move struct {
	x, y int32
}

func (quit) isMessage()  {}
func (write) isMessage() {}
func (move) isMessage()  {}

func enums(ctx tour.Context) error {
	out := ctx.Output()

	u, d := up, down
	fmt.Fprintf(out, "up = %v (%d), down = %v (%d)\n", u, int(u), d, int(d))
	fmt.Fprintln(out, "unknown:", direction(9))

	msgs := []message{quit{}, write{text: "Hello!"}, move{x: 20, y: 120}}
	for _, m := range msgs {
		fmt.Fprintf(out, "%T %+v\n", m, m)
	}
	return nil
}

func describe(m message) string {
	switch m := m.(type) {
	case quit:
		return "quitting..."
	case write:
		return "Writing: " + m.text
	case move:
		return fmt.Sprintf("Move to: (%d, %d)", m.x, m.y)
	default:
		return "unknown message"
	}
}

type fooBar struct {
	x int32
	y message
}

// classify checks the cases in order; the first match wins.
func classify(b fooBar) string {
	if _, ok := b.y.(quit); ok && b.x == 0 {
		return "Quitting with x = 0!"
	}
	if b.x == 2 {
		return "x is 2"
	}
	if m, ok := b.y.(move); ok && b.x == m.x {
		return fmt.Sprintf("x's match! y = %d", m.y)
	}
	return "sink for everything unmatched"
}

func matching(ctx tour.Context) error {
	out := ctx.Output()

	for _, m := range []message{quit{}, write{text: "Hello!"}, move{x: 20, y: 120}} {
		fmt.Fprintln(out, describe(m))
	}

	bars := []fooBar{
		{x: 15, y: quit{}},
		{x: 0, y: quit{}},
		{x: 2, y: write{text: "two"}},
		{x: 20, y: move{x: 20, y: 120}},
		{x: 21, y: move{x: 20, y: 120}},
	}
	for _, b := range bars {
		fmt.Fprintln(out, classify(b))
	}
	return nil
}
