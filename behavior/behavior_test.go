package behavior_test

import (
	"testing"
	"time"

	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertTrue(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true, got false")
	}
}

// at builds a snapshot for a tick at the given offset from t0.
func at(offset time.Duration) rover.Status {
	return rover.Status{Time: time.Unix(1000, 0).Add(offset)}
}

// located builds a snapshot with the robot standing at p.
func located(p rover.Point, offset time.Duration) rover.Status {
	st := at(offset)
	st.Location = p

	return st
}

// sensed builds a snapshot with an obstacle at distance d on the given
// relative bearing.
func sensed(d, bearing float64, offset time.Duration) rover.Status {
	st := at(offset)
	st.Obstacle = g.Some(rover.Obstacle{
		Point:    rover.Point{X: d, Y: 0},
		Distance: d,
		Bearing:  bearing,
	})

	return st
}

// run activates the state and processes one tick, mirroring the engine's
// entry sequence.
func run(s behave.State, st rover.Status, ctx behave.Context) behave.Result {
	return s.Process(st, nil, s.Activate(ctx))
}
