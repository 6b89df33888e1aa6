package behave

import (
	"github.com/charmbracelet/log"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// transitionKey addresses one row of the transition table.
type transitionKey struct {
	From StateID
	Exit ExitCode
}

// transitionTarget is where a row leads and how it reshapes the context.
type transitionTarget struct {
	To StateID
	Op Operator
}

// Engine drives a built behavior graph. It owns the current state and the
// context exclusively between ticks; callers feed it one sensor snapshot
// per tick and forward the returned command to the robot. The engine is
// single-threaded by contract — wrap it in a SyncEngine when observers
// read it from other goroutines.
type Engine struct {
	states  g.Map[StateID, State]
	table   g.Map[transitionKey, transitionTarget]
	initial StateID
	params  Context
	current State
	ctx     Context
	history g.Slice[StateID]
	log     *log.Logger
}

// Process runs one control tick. The current state consumes the snapshot,
// its context result is adopted unconditionally, and unless it reported
// the stay sentinel the table decides what runs next. A missing table row
// is a recoverable condition, not a crash: the engine logs one warning and
// settles into the terminal End state. The returned command always comes
// from the state that ran this tick, before any transition applied.
func (e *Engine) Process(st rover.Status, grid *rover.Grid) rover.Command {
	res := e.current.Process(st, grid, e.ctx)
	e.ctx = res.Ctx

	if res.Exit == ExitStay {
		return res.Cmd
	}

	key := transitionKey{From: e.current.ID(), Exit: res.Exit}
	if t := e.table.Get(key); t.IsSome() {
		e.enter(t.Some().To, res.Exit)

		if op := t.Some().Op; op != nil {
			e.ctx = op(e.ctx)
		}
	} else {
		e.log.Warn("no transition wired, stopping", "state", key.From, "exit", key.Exit)
		e.enter(StateEnd, res.Exit)
	}

	return res.Cmd
}

// enter activates the state with the given id and makes it current.
// Ids are validated at build time, so the lookup cannot miss.
func (e *Engine) enter(id StateID, exit ExitCode) {
	next := e.states.Get(id).Some()

	e.ctx = next.Activate(e.ctx)
	e.log.Debug("transition", "from", e.current.ID(), "exit", exit, "to", id)
	e.current = next
	e.history.Push(id)
}

// Current returns the id of the active state.
func (e *Engine) Current() StateID { return e.current.ID() }

// Context returns the context as of the last completed tick.
func (e *Engine) Context() Context { return e.ctx }

// History returns a copy of the visited state ids, initial state first.
func (e *Engine) History() g.Slice[StateID] { return e.history.Clone() }

// States returns the registered state ids, sorted.
func (e *Engine) States() g.Slice[StateID] {
	ids := e.states.Keys()
	ids.SortBy(cmp.Cmp)

	return ids
}

// Reset re-enters the initial state on the initial parameter bindings,
// discarding all accumulated context and history.
func (e *Engine) Reset() {
	initial := e.states.Get(e.initial).Some()

	e.current = initial
	e.history = g.Slice[StateID]{e.initial}
	e.ctx = initial.Activate(e.params)
}
