package rover_test

import (
	"math"
	"testing"

	. "github.com/enetx/behave/rover"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertNear(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPoint_Dist(t *testing.T) {
	assertNear(t, Point{}.Dist(Point{X: 3, Y: 4}), 5)
	assertNear(t, Point{X: 1, Y: 1}.Dist(Point{X: 1, Y: 1}), 0)
}

func TestPoint_BearingTo(t *testing.T) {
	assertNear(t, Point{}.BearingTo(Point{X: 1}), 0)
	assertNear(t, Point{}.BearingTo(Point{Y: 1}), 90)
	assertNear(t, Point{}.BearingTo(Point{X: -1}), 180)
	assertNear(t, Point{}.BearingTo(Point{Y: -1}), -90)
}

func TestNormalizeAngle(t *testing.T) {
	assertNear(t, NormalizeAngle(0), 0)
	assertNear(t, NormalizeAngle(190), -170)
	assertNear(t, NormalizeAngle(-190), 170)
	assertNear(t, NormalizeAngle(360), 0)
	assertNear(t, NormalizeAngle(180), 180)
	assertNear(t, NormalizeAngle(-180), 180)
}

func TestGrid_MarkAndLookup(t *testing.T) {
	gr := NewGrid(0.5)
	if !gr.Empty() {
		t.Fatal("new grid should be empty")
	}

	gr.Mark(Point{X: 1.1, Y: 2.1})

	assertEqual(t, gr.Blocked(Cell{Col: 2, Row: 4}), true)
	assertEqual(t, gr.Blocked(Cell{Col: 0, Row: 0}), false)
	assertEqual(t, gr.CellOf(Point{X: 1.1, Y: 2.1}), Cell{Col: 2, Row: 4})
	assertEqual(t, gr.Center(Cell{Col: 2, Row: 4}), Point{X: 1.25, Y: 2.25})
}

func TestGrid_Bounds(t *testing.T) {
	gr := NewGrid(1)
	gr.Mark(Point{X: 0.5, Y: 0.5})
	gr.Mark(Point{X: 3.5, Y: -2.5})

	lo, hi := gr.Bounds()
	assertEqual(t, lo, Cell{Col: 0, Row: -3})
	assertEqual(t, hi, Cell{Col: 3, Row: 0})
}

func TestGrid_NilSafe(t *testing.T) {
	var gr *Grid

	if !gr.Empty() {
		t.Fatal("nil grid should be empty")
	}

	assertEqual(t, gr.Blocked(Cell{}), false)
}
