// Package rover defines the value types exchanged at the engine boundary:
// sensor snapshots coming in, motor and head commands going out, and the
// obstacle grid the scanner builds up. Everything here is a plain immutable
// value; the transport that produces and consumes these lives elsewhere.
package rover

import (
	"math"
	"time"

	"github.com/enetx/g"
)

// Point is a position on the ground plane, in meters.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Dist returns the euclidean distance to o.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// BearingTo returns the absolute bearing from p to o in degrees,
// counter-clockwise from the positive X axis, normalized to (-180, 180].
func (p Point) BearingTo(o Point) float64 {
	return NormalizeAngle(math.Atan2(o.Y-p.Y, o.X-p.X) * 180 / math.Pi)
}

// Offset returns p shifted by (dx, dy).
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// NormalizeAngle wraps an angle in degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	switch {
	case deg > 180:
		deg -= 360
	case deg <= -180:
		deg += 360
	}

	return deg
}

// Drive describes desired wheel motion. The zero value is a full stop.
type Drive struct {
	Speed float64 `json:"speed"` // m/s, negative reverses
	Turn  float64 `json:"turn"`  // deg/s, positive is counter-clockwise
}

// Command is the engine's sole per-tick output: wheel motion plus the
// scanner head direction, in degrees relative to the robot heading.
type Command struct {
	Motor Drive   `json:"motor"`
	Head  float64 `json:"head"`
}

// Halt is the all-stop command with the head pointing straight ahead.
func Halt() Command { return Command{} }

// Obstacle is the nearest obstruction the scanner currently senses.
type Obstacle struct {
	Point    Point   `json:"point"`
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"` // degrees, relative to robot heading
}

// Status is the read-only sensor snapshot driving one control tick.
// Time is the tick timestamp; states compare it against activation stamps
// instead of consulting a wall clock.
type Status struct {
	Time     time.Time
	Location Point
	Heading  float64 // degrees, counter-clockwise from +X
	Blocked  bool    // bumper hit or wheels stalled
	Obstacle g.Option[Obstacle]
}

// Cell addresses one square of the occupancy grid.
type Cell struct {
	Col int
	Row int
}

// Grid is a sparse occupancy map built from scanner hits. Cells are squares
// of Res meters; only blocked cells are stored.
type Grid struct {
	res     float64
	blocked g.Set[Cell]
	min     Cell
	max     Cell
}

// NewGrid creates an empty grid with the given cell resolution in meters.
func NewGrid(res float64) *Grid {
	if res <= 0 {
		res = 0.25
	}

	return &Grid{res: res, blocked: g.NewSet[Cell]()}
}

// Res returns the cell resolution in meters.
func (gr *Grid) Res() float64 { return gr.res }

// Empty reports whether no obstacle has been marked yet.
func (gr *Grid) Empty() bool {
	return gr == nil || gr.blocked.Len() == 0
}

// Mark records an obstacle at p.
func (gr *Grid) Mark(p Point) {
	c := gr.CellOf(p)

	if gr.blocked.Len() == 0 {
		gr.min, gr.max = c, c
	} else {
		gr.min = Cell{Col: min(gr.min.Col, c.Col), Row: min(gr.min.Row, c.Row)}
		gr.max = Cell{Col: max(gr.max.Col, c.Col), Row: max(gr.max.Row, c.Row)}
	}

	gr.blocked.Insert(c)
}

// Blocked reports whether the cell holds an obstacle.
func (gr *Grid) Blocked(c Cell) bool {
	if gr == nil {
		return false
	}

	return gr.blocked.Contains(c)
}

// CellOf maps a point to its containing cell.
func (gr *Grid) CellOf(p Point) Cell {
	return Cell{
		Col: int(math.Floor(p.X / gr.res)),
		Row: int(math.Floor(p.Y / gr.res)),
	}
}

// Center returns the center point of a cell.
func (gr *Grid) Center(c Cell) Point {
	return Point{
		X: (float64(c.Col) + 0.5) * gr.res,
		Y: (float64(c.Row) + 0.5) * gr.res,
	}
}

// Bounds returns the envelope of all marked cells. Only meaningful when the
// grid is not empty.
func (gr *Grid) Bounds() (Cell, Cell) { return gr.min, gr.max }
