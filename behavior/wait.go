package behavior

import (
	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
)

// WaitForUnblocked halts until the robot reports it can move again, then
// exits "completed".
type WaitForUnblocked struct {
	id behave.StateID
}

// NewWaitForUnblocked creates a wait state.
func NewWaitForUnblocked(id behave.StateID) *WaitForUnblocked {
	return &WaitForUnblocked{id: id}
}

func (s *WaitForUnblocked) ID() behave.StateID { return s.id }

func (s *WaitForUnblocked) Activate(ctx behave.Context) behave.Context { return ctx }

func (s *WaitForUnblocked) Process(st rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	if st.Blocked {
		return behave.Stay(ctx, rover.Halt())
	}

	return behave.Exit(behave.ExitCompleted, ctx, rover.Halt())
}
