package behavior_test

import (
	"testing"
	"time"

	"github.com/enetx/behave"
	. "github.com/enetx/behave/behavior"
	"github.com/enetx/behave/rover"
)

func gotoCtx(target rover.Point) behave.Context {
	return behave.NewContext().With(KeyTarget, target)
}

func TestGoto_ArrivesOnFirstTick(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 0, 0)

	// Target already within arrival distance at activation.
	res := run(drive, located(rover.Point{X: 5, Y: 5}, 0), gotoCtx(rover.Point{X: 5, Y: 5}))
	assertEqual(t, res.Exit, behave.ExitCompleted)
	assertEqual(t, res.Cmd, rover.Halt())

	res = run(drive, located(rover.Point{X: 5.2, Y: 5}, 0), gotoCtx(rover.Point{X: 5, Y: 5}))
	assertEqual(t, res.Exit, behave.ExitCompleted)
}

func TestGoto_SteersTowardTarget(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 0, 0)

	res := run(drive, located(rover.Point{}, 0), gotoCtx(rover.Point{X: 10, Y: 0}))
	assertEqual(t, res.Exit, behave.ExitStay)
	assertTrue(t, res.Cmd.Motor.Speed > 0)
	assertEqual(t, res.Cmd.Motor.Turn, 0) // dead ahead

	// Target due north of a robot facing east: hard left.
	res = run(drive, located(rover.Point{}, 0), gotoCtx(rover.Point{X: 0, Y: 10}))
	assertTrue(t, res.Cmd.Motor.Turn > 0)
}

func TestGoto_MissingTargetIsUnreachable(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 0, 0)

	res := run(drive, located(rover.Point{}, 0), behave.NewContext())
	assertEqual(t, res.Exit, behave.ExitUnreachable)
}

func TestGoto_StallsToUnreachable(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 0, time.Second)
	target := rover.Point{X: 10, Y: 0}

	// The robot never moves; distance never improves.
	res := run(drive, located(rover.Point{}, 0), gotoCtx(target))
	assertEqual(t, res.Exit, behave.ExitStay)

	res = drive.Process(located(rover.Point{}, 500*time.Millisecond), nil, res.Ctx)
	assertEqual(t, res.Exit, behave.ExitStay)

	res = drive.Process(located(rover.Point{}, 1100*time.Millisecond), nil, res.Ctx)
	assertEqual(t, res.Exit, behave.ExitUnreachable)
}

func TestGoto_ProgressResetsStallClock(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 0, time.Second)
	target := rover.Point{X: 10, Y: 0}

	res := run(drive, located(rover.Point{}, 0), gotoCtx(target))

	// Progress at 900ms rearms the stall clock.
	res = drive.Process(located(rover.Point{X: 1}, 900*time.Millisecond), nil, res.Ctx)
	assertEqual(t, res.Exit, behave.ExitStay)

	res = drive.Process(located(rover.Point{X: 1}, 1500*time.Millisecond), nil, res.Ctx)
	assertEqual(t, res.Exit, behave.ExitStay)

	res = drive.Process(located(rover.Point{X: 1}, 2000*time.Millisecond), nil, res.Ctx)
	assertEqual(t, res.Exit, behave.ExitUnreachable)
}

func TestGoto_SensedObstacleTrips(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 1.0, 0)

	st := sensed(0.5, 0, 0)
	res := run(drive, st, gotoCtx(rover.Point{X: 10, Y: 0}))

	assertEqual(t, res.Exit, behave.ExitObstacle)
	assertEqual(t, res.Ctx.Point(KeyObstacle).Unwrap(), rover.Point{X: 0.5, Y: 0})
}

func TestGoto_BlockedTripsObstacle(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 0, 0)

	st := located(rover.Point{}, 0)
	st.Blocked = true

	res := run(drive, st, gotoCtx(rover.Point{X: 10, Y: 0}))
	assertEqual(t, res.Exit, behave.ExitObstacle)
}

func TestGoto_ProcessIsPure(t *testing.T) {
	drive := NewGoto("goto", 0.3, 0.5, 0, time.Second)

	ctx := drive.Activate(gotoCtx(rover.Point{X: 10, Y: 0}))
	st := located(rover.Point{X: 1, Y: 1}, 0)

	first := drive.Process(st, nil, ctx)
	second := drive.Process(st, nil, ctx)

	assertEqual(t, first.Exit, second.Exit)
	assertEqual(t, first.Cmd, second.Cmd)
	assertEqual(t, first.Ctx.Len(), second.Ctx.Len())
	assertTrue(t, ctx.Float("goto.best").IsNone()) // input untouched
}
