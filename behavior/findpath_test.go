package behavior_test

import (
	"testing"

	"github.com/enetx/behave"
	. "github.com/enetx/behave/behavior"
	"github.com/enetx/behave/rover"
)

func TestFindPath_WritesRoute(t *testing.T) {
	fp := NewFindPath("plan", nil)

	gr := rover.NewGrid(1)
	gr.Mark(rover.Point{X: 2.5, Y: 0.5})
	gr.Mark(rover.Point{X: 2.5, Y: 1.5})

	ctx := behave.NewContext().With(KeyTarget, rover.Point{X: 4.5, Y: 0.5})
	st := located(rover.Point{X: 0.5, Y: 0.5}, 0)

	res := fp.Process(st, gr, fp.Activate(ctx))
	assertEqual(t, res.Exit, behave.ExitCompleted)
	assertEqual(t, res.Cmd, rover.Halt())

	route := res.Ctx.Points(KeyPath)
	assertTrue(t, route.IsSome())
	assertEqual(t, route.Some()[len(route.Some())-1], rover.Point{X: 4.5, Y: 0.5})
}

func TestFindPath_AtTargetReportsReached(t *testing.T) {
	fp := NewFindPath("plan", nil)

	gr := rover.NewGrid(1)
	gr.Mark(rover.Point{X: 9.5, Y: 9.5})

	here := rover.Point{X: 1.2, Y: 1.2}
	ctx := behave.NewContext().With(KeyTarget, here)

	res := fp.Process(located(here, 0), gr, fp.Activate(ctx))
	assertEqual(t, res.Exit, behave.ExitTargetReached)

	// Reached means no route is ever produced, not a one-point route.
	assertTrue(t, res.Ctx.Points(KeyPath).IsNone())
}

func TestFindPath_MissingTargetIsNoPath(t *testing.T) {
	fp := NewFindPath("plan", nil)

	res := fp.Process(at(0), nil, fp.Activate(behave.NewContext()))
	assertEqual(t, res.Exit, behave.ExitNoPath)
}

func TestFindPath_EnclosedTargetIsNoPath(t *testing.T) {
	fp := NewFindPath("plan", nil)

	gr := rover.NewGrid(1)
	for _, p := range []rover.Point{
		{X: 4.5, Y: 5.5}, {X: 6.5, Y: 5.5}, {X: 5.5, Y: 4.5}, {X: 5.5, Y: 6.5},
	} {
		gr.Mark(p)
	}

	ctx := behave.NewContext().With(KeyTarget, rover.Point{X: 5.5, Y: 5.5})
	res := fp.Process(located(rover.Point{X: 0.5, Y: 0.5}, 0), gr, fp.Activate(ctx))

	assertEqual(t, res.Exit, behave.ExitNoPath)
	assertTrue(t, res.Ctx.Points(KeyPath).IsNone())
}
