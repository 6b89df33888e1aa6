package behavior

import (
	"github.com/enetx/behave"
	"github.com/enetx/behave/path"
	"github.com/enetx/behave/rover"
)

// FindPath plans a route from the robot's location to the point bound to
// KeyTarget. It emits no motion: a single tick either writes the waypoint
// list to KeyPath and exits "completed", reports "targetReached" when the
// robot already stands at the target, or reports "noPath" when the planner
// finds no feasible route. No outcome is an error.
type FindPath struct {
	id      behave.StateID
	planner path.Planner
}

// NewFindPath creates a planning state. A nil planner falls back to the
// stock grid planner.
func NewFindPath(id behave.StateID, planner path.Planner) *FindPath {
	if planner == nil {
		planner = path.GridPlanner{}
	}

	return &FindPath{id: id, planner: planner}
}

func (s *FindPath) ID() behave.StateID { return s.id }

func (s *FindPath) Activate(ctx behave.Context) behave.Context { return ctx }

func (s *FindPath) Process(st rover.Status, grid *rover.Grid, ctx behave.Context) behave.Result {
	target := ctx.Point(KeyTarget)
	if target.IsNone() {
		return behave.Exit(behave.ExitNoPath, ctx, rover.Halt())
	}

	tol := 1e-6
	if !grid.Empty() {
		tol = grid.Res() / 2
	}

	if st.Location.Dist(target.Some()) <= tol {
		return behave.Exit(behave.ExitTargetReached, ctx, rover.Halt())
	}

	route := s.planner.Plan(grid, st.Location, target.Some())
	if route.IsNone() {
		return behave.Exit(behave.ExitNoPath, ctx, rover.Halt())
	}

	return behave.Exit(behave.ExitCompleted, ctx.With(KeyPath, route.Some()), rover.Halt())
}
