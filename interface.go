package behave

import (
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// Machine is the engine boundary the surrounding controller programs
// against. Alternative drivers (a learned policy, a remote bridge) can
// implement it and slot in behind the same tick loop.
type Machine interface {
	Process(rover.Status, *rover.Grid) rover.Command
	Current() StateID
	Context() Context
	Reset()
	History() g.Slice[StateID]
	States() g.Slice[StateID]
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
}

var _ Machine = (*Engine)(nil)
