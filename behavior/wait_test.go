package behavior_test

import (
	"testing"

	"github.com/enetx/behave"
	. "github.com/enetx/behave/behavior"
	"github.com/enetx/behave/rover"
)

func TestWaitForUnblocked(t *testing.T) {
	wait := NewWaitForUnblocked("wait")

	st := at(0)
	st.Blocked = true

	res := run(wait, st, behave.NewContext())
	assertEqual(t, res.Exit, behave.ExitStay)
	assertEqual(t, res.Cmd, rover.Halt())

	res = wait.Process(at(0), nil, res.Ctx)
	assertEqual(t, res.Exit, behave.ExitCompleted)
	assertEqual(t, res.Cmd, rover.Halt())
}
