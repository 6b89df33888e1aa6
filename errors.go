package behave

import "fmt"

// ErrNilState is returned by Build when a nil state was registered.
type ErrNilState struct{}

func (e *ErrNilState) Error() string { return "behave: nil state registered" }

// ErrDuplicateState is returned by Build when two states share an id.
// State identity is the id string, so a duplicate makes transition lookups
// ambiguous and construction is aborted.
type ErrDuplicateState struct {
	ID StateID
}

func (e *ErrDuplicateState) Error() string {
	return fmt.Sprintf("behave: state %q registered twice", e.ID)
}

// ErrReservedState is returned by Build when a registered state uses an
// empty id or the reserved terminal id.
type ErrReservedState struct {
	ID StateID
}

func (e *ErrReservedState) Error() string {
	if e.ID == "" {
		return "behave: state with empty id"
	}

	return fmt.Sprintf("behave: state id %q is reserved", e.ID)
}

// ErrReservedExit is returned by Build when a transition is wired on the
// stay sentinel, which never reaches the table.
type ErrReservedExit struct {
	From StateID
}

func (e *ErrReservedExit) Error() string {
	return fmt.Sprintf("behave: transition from %q wired on the reserved %q exit", e.From, ExitStay)
}

// ErrUnknownState is returned when a state id is referenced but not
// registered: a transition endpoint, the initial state, or a snapshot
// being restored. This prevents the engine from ever pointing at an
// undeclared state.
type ErrUnknownState struct {
	// ID is the unresolved state id.
	ID StateID
	// Where names the reference site (e.g. "transition target", "initial state").
	Where string
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("behave: unknown state %q as %s", e.ID, e.Where)
}

// ErrDuplicateTransition is returned by Build when the same (state, exit)
// pair is wired twice. The table must be a function of that pair; a second
// wiring would silently shadow the first.
type ErrDuplicateTransition struct {
	From StateID
	Exit ExitCode
}

func (e *ErrDuplicateTransition) Error() string {
	return fmt.Sprintf("behave: transition (%q, %q) wired twice", e.From, e.Exit)
}
