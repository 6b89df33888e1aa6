package behavior

import (
	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// NextSequence iterates an ordered point list held in the context. Each
// visit selects the next element, binds it to the target key, advances
// the index and exits "targetSelected"; once the list is exhausted — or
// was empty or absent to begin with — it exits "completed" without ever
// selecting anything.
type NextSequence struct {
	id        behave.StateID
	listKey   g.String
	indexKey  g.String
	targetKey g.String
}

// NewNextSequence iterates KeyTargets via KeyIndex into KeyTarget.
func NewNextSequence(id behave.StateID) *NextSequence {
	return NewNextSequenceKeys(id, KeyTargets, KeyIndex, KeyTarget)
}

// NewNextSequenceKeys iterates an arbitrary key triple, e.g. walking the
// planned KeyPath waypoints.
func NewNextSequenceKeys(id behave.StateID, listKey, indexKey, targetKey g.String) *NextSequence {
	return &NextSequence{id: id, listKey: listKey, indexKey: indexKey, targetKey: targetKey}
}

func (s *NextSequence) ID() behave.StateID { return s.id }

// Activate leaves the index alone on purpose: iteration continues across
// re-entries, and graphs rewind it with a Put operator when they install
// a fresh list.
func (s *NextSequence) Activate(ctx behave.Context) behave.Context { return ctx }

func (s *NextSequence) Process(_ rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	list := ctx.Points(s.listKey)
	i := ctx.Int(s.indexKey).UnwrapOr(0)

	if list.IsNone() || i >= len(list.Some()) {
		return behave.Exit(behave.ExitCompleted, ctx, rover.Halt())
	}

	ctx = ctx.With(s.targetKey, list.Some()[i]).With(s.indexKey, i+1)

	return behave.Exit(behave.ExitTargetSelected, ctx, rover.Halt())
}
