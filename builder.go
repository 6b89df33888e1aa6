package behave

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/enetx/g"
)

// Builder assembles an Engine: states, the transition table, and the
// initial parameter bindings. Registration is fluent and unchecked; all
// validation happens once, in Build. Configuration mistakes (duplicate
// ids, dangling transition endpoints, unknown initial state) are build
// errors and never surface at tick time.
type Builder struct {
	states      g.Slice[State]
	transitions g.Slice[transitionDef]
	params      Context
	log         *log.Logger
}

type transitionDef struct {
	key transitionKey
	to  StateID
	op  Operator
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{params: NewContext()}
}

// AddState registers a state.
func (b *Builder) AddState(s State) *Builder {
	b.states.Push(s)
	return b
}

// AddTransition wires (from, exit) to the destination state. An optional
// operator reshapes the context when the transition fires.
func (b *Builder) AddTransition(from StateID, exit ExitCode, to StateID, op ...Operator) *Builder {
	def := transitionDef{key: transitionKey{From: from, Exit: exit}, to: to}
	if len(op) > 0 {
		def.op = op[0]
	}

	b.transitions.Push(def)

	return b
}

// SetParam binds an initial context value, available to the initial state
// from its first tick and restored by Engine.Reset.
func (b *Builder) SetParam(key g.String, value any) *Builder {
	b.params = b.params.With(key, value)
	return b
}

// WithLogger sets the logger for transition and warning events. Without
// one, the engine logs to a discarding logger.
func (b *Builder) WithLogger(l *log.Logger) *Builder {
	b.log = l
	return b
}

// Build validates the graph and returns a running engine with the initial
// state already activated on the initial bindings. The terminal End state
// is registered implicitly and may be used as a transition target.
func (b *Builder) Build(initial StateID) (*Engine, error) {
	states := g.NewMap[StateID, State](b.states.Len() + 1)

	for s := range b.states.Iter() {
		if s == nil {
			return nil, &ErrNilState{}
		}

		id := s.ID()
		if id == "" || id == StateEnd {
			return nil, &ErrReservedState{ID: id}
		}

		if states.Contains(id) {
			return nil, &ErrDuplicateState{ID: id}
		}

		states.Set(id, s)
	}

	states.Set(StateEnd, endState{})

	table := g.NewMap[transitionKey, transitionTarget](b.transitions.Len())

	for def := range b.transitions.Iter() {
		if def.key.Exit == ExitStay {
			return nil, &ErrReservedExit{From: def.key.From}
		}

		if !states.Contains(def.key.From) {
			return nil, &ErrUnknownState{ID: def.key.From, Where: "transition source"}
		}

		if !states.Contains(def.to) {
			return nil, &ErrUnknownState{ID: def.to, Where: "transition target"}
		}

		if table.Contains(def.key) {
			return nil, &ErrDuplicateTransition{From: def.key.From, Exit: def.key.Exit}
		}

		table.Set(def.key, transitionTarget{To: def.to, Op: def.op})
	}

	if !states.Contains(initial) {
		return nil, &ErrUnknownState{ID: initial, Where: "initial state"}
	}

	logger := b.log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		states:  states,
		table:   table,
		initial: initial,
		params:  b.params,
		history: g.Slice[StateID]{initial},
		log:     logger,
	}

	cur := states.Get(initial).Some()
	e.current = cur
	e.ctx = cur.Activate(b.params)

	return e, nil
}
