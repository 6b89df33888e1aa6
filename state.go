package behave

import (
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

type (
	// StateID names a registered behavior state.
	StateID g.String
	// ExitCode is the tag a state returns to signal which branch of
	// behavior occurred; the transition table keys on it.
	ExitCode g.String
)

// Reserved identifiers.
const (
	// ExitStay keeps the engine in the current state. It is a sentinel:
	// the table is never consulted for it and wiring it is a build error.
	ExitStay ExitCode = "stayInState"

	// StateEnd is the implicit terminal state every engine carries. It
	// halts forever and is the forced destination for unwired exits.
	StateEnd StateID = "End"
)

// Exit codes emitted by the stock behavior states. Graphs may introduce
// their own; these are only names, not an enum.
const (
	ExitCompleted      ExitCode = "completed"
	ExitTimeout        ExitCode = "timeout"
	ExitObstacle       ExitCode = "obstacle"
	ExitBlocked        ExitCode = "blocked"
	ExitUnreachable    ExitCode = "unreachable"
	ExitTargetReached  ExitCode = "targetReached"
	ExitTargetSelected ExitCode = "targetSelected"
	ExitNoPath         ExitCode = "noPath"
	ExitCancelled      ExitCode = "cancelled"
)

// State is one named unit of behavior. Activate runs on entry and may
// prime or clear context keys; Process consumes one sensor tick and
// reports how the state wants to proceed. Implementations must not block,
// sleep, or perform I/O: all timing compares the tick timestamp in
// rover.Status against activation stamps kept in the context, and a state
// must be safe to abandon mid-flight when a transition discards it.
type State interface {
	ID() StateID
	Activate(ctx Context) Context
	Process(st rover.Status, grid *rover.Grid, ctx Context) Result
}

// Result is what a state reports for one tick: the branch it took, the
// context to carry forward, and the command for the robot. It is produced
// fresh every tick and owned by the engine from then on.
type Result struct {
	Exit ExitCode
	Ctx  Context
	Cmd  rover.Command
}

// Stay reports that the state is not done yet.
func Stay(ctx Context, cmd rover.Command) Result {
	return Result{Exit: ExitStay, Ctx: ctx, Cmd: cmd}
}

// Exit reports a finished branch with the given code.
func Exit(code ExitCode, ctx Context, cmd rover.Command) Result {
	return Result{Exit: code, Ctx: ctx, Cmd: cmd}
}

// endState is the implicit terminal: it halts and never leaves.
type endState struct{}

func (endState) ID() StateID { return StateEnd }

func (endState) Activate(ctx Context) Context { return ctx }

func (endState) Process(_ rover.Status, _ *rover.Grid, ctx Context) Result {
	return Stay(ctx, rover.Halt())
}
