// Package path plans waypoint routes over the rover's occupancy grid. The
// engine treats planning as a black box: a Planner either yields an
// ordered list of waypoints or reports that no feasible route exists, and
// the absence of a route is a normal outcome, never an error.
package path

import (
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// Planner produces an ordered waypoint list from one point to another.
// None means no feasible route; a returned route always ends exactly at
// the requested destination.
type Planner interface {
	Plan(grid *rover.Grid, from, to rover.Point) g.Option[g.Slice[rover.Point]]
}

// GridPlanner is the stock planner: breadth-first search over free cells
// of the occupancy grid. Routes are cell-center chains, adequate for the
// short hops the behaviors request between rescans.
type GridPlanner struct {
	// Margin widens the searched envelope beyond the obstacle bounding
	// box, in cells. Zero means the default of 2.
	Margin int
}

func (p GridPlanner) margin() int {
	if p.Margin <= 0 {
		return 2
	}

	return p.Margin
}

// Plan implements Planner.
func (p GridPlanner) Plan(grid *rover.Grid, from, to rover.Point) g.Option[g.Slice[rover.Point]] {
	// An empty map cannot obstruct anything.
	if grid.Empty() {
		return g.Some(g.SliceOf(to))
	}

	start := grid.CellOf(from)
	goal := grid.CellOf(to)

	if start == goal {
		return g.Some(g.SliceOf(to))
	}

	if grid.Blocked(start) || grid.Blocked(goal) {
		return g.None[g.Slice[rover.Point]]()
	}

	lo, hi := p.envelope(grid, start, goal)

	inside := func(c rover.Cell) bool {
		return c.Col >= lo.Col && c.Col <= hi.Col && c.Row >= lo.Row && c.Row <= hi.Row
	}

	visited := g.NewSet[rover.Cell]()
	visited.Insert(start)

	parent := g.NewMap[rover.Cell, rover.Cell]()

	queue := g.SliceOf(start)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			return g.Some(p.rebuild(grid, parent, start, goal, to))
		}

		for _, next := range neighbors(cur) {
			if !inside(next) || visited.Contains(next) || grid.Blocked(next) {
				continue
			}

			visited.Insert(next)
			parent.Set(next, cur)
			queue.Push(next)
		}
	}

	return g.None[g.Slice[rover.Point]]()
}

// envelope bounds the search: the obstacle bounding box joined with the
// endpoints, padded by the margin.
func (p GridPlanner) envelope(grid *rover.Grid, start, goal rover.Cell) (rover.Cell, rover.Cell) {
	lo, hi := grid.Bounds()
	m := p.margin()

	lo = rover.Cell{Col: min(lo.Col, start.Col, goal.Col) - m, Row: min(lo.Row, start.Row, goal.Row) - m}
	hi = rover.Cell{Col: max(hi.Col, start.Col, goal.Col) + m, Row: max(hi.Row, start.Row, goal.Row) + m}

	return lo, hi
}

// rebuild walks the parent chain back from the goal and emits waypoints in
// travel order. The start cell is omitted (the robot is already there) and
// the final waypoint is the exact destination, not the goal cell center.
func (p GridPlanner) rebuild(
	grid *rover.Grid,
	parent g.Map[rover.Cell, rover.Cell],
	start, goal rover.Cell,
	to rover.Point,
) g.Slice[rover.Point] {
	var cells g.Slice[rover.Cell]

	for cur := goal; cur != start; cur = parent.Get(cur).Some() {
		cells.Push(cur)
	}

	var route g.Slice[rover.Point]

	for i := len(cells) - 1; i > 0; i-- {
		route.Push(grid.Center(cells[i]))
	}

	route.Push(to)

	return route
}

func neighbors(c rover.Cell) [4]rover.Cell {
	return [4]rover.Cell{
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col, Row: c.Row + 1},
		{Col: c.Col, Row: c.Row - 1},
	}
}
