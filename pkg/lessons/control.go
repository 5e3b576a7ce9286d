package lessons

import (
	"fmt"

	"github.com/randalmurphal/gotour/pkg/tour"
)

func controlFlow(ctx tour.Context) error {
	out := ctx.Output()

	array := [3]int{1, 2, 3}
	for _, i := range array {
		fmt.Fprintln(out, i)
	}

	for i := range 10 {
		fmt.Fprintf(out, "%d ", i)
	}
	fmt.Fprintln(out)

	one := 1
	if one == 1 {
		fmt.Fprintln(out, "Math works!")
	} else {
		fmt.Fprintln(out, "Oh no...")
	}

	good := true
	value := "bad"
	if good {
		value = "good"
	}
	fmt.Fprintln(out, "value is", value)

	x := 0
	for x < 10 {
		x++
		if x == 5 {
			continue
		}
		fmt.Fprintf(out, "x = %d\n", x)
	}

	// Unbounded loop, left with break after three greetings.
	greetings := 0
	for {
		fmt.Fprintln(out, "Hello!")
		greetings++
		if greetings == 3 {
			break
		}
	}
	return nil
}

type point struct {
	x, y int32
}

// pointAdd is the free-function form of point.add.
func pointAdd(a, b point) point {
	return point{x: a.x + b.x, y: a.y + b.y}
}

func newPoint(x, y int32) point {
	return point{x: x, y: y}
}

// add reads p through a value receiver.
func (p point) add(other point) point {
	return point{x: p.x + other.x, y: p.y + other.y}
}

// setX writes p through a pointer receiver.
func (p *point) setX(x int32) {
	p.x = x
}

func objects(ctx tour.Context) error {
	out := ctx.Output()

	fmt.Fprintf(out, "%+v\n", pointAdd(newPoint(1, 2), newPoint(3, 4)))

	p1 := newPoint(5, 2)
	// p1 is addressable, so p1.setX is (&p1).setX.
	p1.setX(10)

	p2 := newPoint(3, 1)
	fmt.Fprintf(out, "%+v\n", p1.add(p2))
	return nil
}
