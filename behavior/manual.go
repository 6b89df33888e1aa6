package behavior

import (
	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
)

// Feed supplies operator drive input, typically a joystick adapter. Poll
// must not block: it returns the most recent input, and ok=false once the
// operator has disconnected.
type Feed interface {
	Poll() (rover.Drive, bool)
}

// Manual passes operator input straight through as motor commands. It
// stays until the feed reports closed, then exits "cancelled".
type Manual struct {
	id   behave.StateID
	feed Feed
}

// NewManual creates a manual passthrough state.
func NewManual(id behave.StateID, feed Feed) *Manual {
	return &Manual{id: id, feed: feed}
}

func (s *Manual) ID() behave.StateID { return s.id }

func (s *Manual) Activate(ctx behave.Context) behave.Context { return ctx }

func (s *Manual) Process(_ rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	d, ok := s.feed.Poll()
	if !ok {
		return behave.Exit(behave.ExitCancelled, ctx, rover.Halt())
	}

	return behave.Stay(ctx, rover.Command{Motor: d})
}
