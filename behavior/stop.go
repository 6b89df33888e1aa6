package behavior

import (
	"time"

	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// Stop halts the robot. With a positive timeout it exits "timeout" once
// that much tick time has passed since activation; otherwise it stays
// halted forever, which makes it a usable terminal state.
type Stop struct {
	id      behave.StateID
	timeout time.Duration
}

// NewStop creates a stop state. timeout <= 0 means stop indefinitely.
func NewStop(id behave.StateID, timeout time.Duration) *Stop {
	return &Stop{id: id, timeout: timeout}
}

func (s *Stop) ID() behave.StateID { return s.id }

func (s *Stop) key() g.String { return stampKey(g.String(s.id), "since") }

// Activate clears the activation stamp so re-entering restarts the clock.
func (s *Stop) Activate(ctx behave.Context) behave.Context {
	return ctx.Without(s.key())
}

func (s *Stop) Process(st rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	if s.timeout <= 0 {
		return behave.Stay(ctx, rover.Halt())
	}

	since := ctx.Time(s.key())
	if since.IsNone() {
		return behave.Stay(ctx.With(s.key(), st.Time), rover.Halt())
	}

	if st.Time.Sub(since.Some()) >= s.timeout {
		return behave.Exit(behave.ExitTimeout, ctx, rover.Halt())
	}

	return behave.Stay(ctx, rover.Halt())
}
