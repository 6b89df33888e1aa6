package behavior_test

import (
	"math/rand/v2"
	"testing"

	"github.com/enetx/behave"
	. "github.com/enetx/behave/behavior"
	"github.com/enetx/behave/rover"
)

func TestScan_SweepsThenCompletes(t *testing.T) {
	scan := NewScan("scan", 0, -45, 0, 45)
	ctx := scan.Activate(behave.NewContext())

	for _, head := range []float64{-45, 0, 45} {
		res := scan.Process(at(0), nil, ctx)
		assertEqual(t, res.Exit, behave.ExitStay)
		assertEqual(t, res.Cmd, rover.Command{Head: head})
		ctx = res.Ctx
	}

	res := scan.Process(at(0), nil, ctx)
	assertEqual(t, res.Exit, behave.ExitCompleted)
	assertEqual(t, res.Cmd, rover.Halt())
}

func TestScan_DefaultSweepHasFivePositions(t *testing.T) {
	scan := NewScan("scan", 0)
	ctx := scan.Activate(behave.NewContext())

	ticks := 0
	for {
		res := scan.Process(at(0), nil, ctx)
		if res.Exit != behave.ExitStay {
			assertEqual(t, res.Exit, behave.ExitCompleted)
			break
		}

		ticks++
		ctx = res.Ctx
	}

	assertEqual(t, ticks, 5)
}

func TestScan_ObstacleInterruptsSweep(t *testing.T) {
	scan := NewScan("scan", 1.0)

	res := run(scan, sensed(0.4, 30, 0), behave.NewContext())
	assertEqual(t, res.Exit, behave.ExitObstacle)
	assertEqual(t, res.Ctx.Point(KeyObstacle).Unwrap(), rover.Point{X: 0.4, Y: 0})
	assertEqual(t, res.Cmd, rover.Halt())
}

func TestScan_DistantObstacleIgnored(t *testing.T) {
	scan := NewScan("scan", 1.0, 0)

	res := run(scan, sensed(2.5, 0, 0), behave.NewContext())
	assertEqual(t, res.Exit, behave.ExitStay)
}

func TestScan_BlockedInterruptsSweep(t *testing.T) {
	scan := NewScan("scan", 0)

	st := at(0)
	st.Blocked = true

	res := run(scan, st, behave.NewContext())
	assertEqual(t, res.Exit, behave.ExitBlocked)
}

func TestScan_ReactivationRewindsSweep(t *testing.T) {
	scan := NewScan("scan", 0, -45, 0, 45)

	res := run(scan, at(0), behave.NewContext())
	assertEqual(t, res.Cmd.Head, -45.0)

	// Re-entering starts the sweep over.
	res = run(scan, at(0), res.Ctx)
	assertEqual(t, res.Cmd.Head, -45.0)
}

func TestRandomScan_SeededSweepIsReproducible(t *testing.T) {
	sweep := func() []float64 {
		scan := NewRandomScan("scan", 0, rand.New(rand.NewPCG(7, 7)))
		ctx := scan.Activate(behave.NewContext())

		var heads []float64
		for {
			res := scan.Process(at(0), nil, ctx)
			if res.Exit != behave.ExitStay {
				break
			}

			heads = append(heads, res.Cmd.Head)
			ctx = res.Ctx
		}

		return heads
	}

	first, second := sweep(), sweep()
	assertEqual(t, len(first), 5)
	for i := range first {
		assertEqual(t, first[i], second[i])
		assertTrue(t, first[i] >= -90 && first[i] <= 90)
	}
}

func TestRandomScan_ProcessIsPure(t *testing.T) {
	scan := NewRandomScan("scan", 0, rand.New(rand.NewPCG(1, 1)))
	ctx := scan.Activate(behave.NewContext())

	// The plan was drawn at activation; two ticks over the same context
	// must command the same head angle.
	first := scan.Process(at(0), nil, ctx)
	second := scan.Process(at(0), nil, ctx)

	assertEqual(t, first.Cmd.Head, second.Cmd.Head)
}
