package behavior

import (
	"math"
	"math/rand/v2"

	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// RandomTarget picks a pseudo-random point within a radius of a center and
// publishes it to KeyTarget, exiting "completed". The point is drawn from
// the injected source at activation, so processing stays deterministic for
// a given activation and the source can be seeded in tests.
type RandomTarget struct {
	id     behave.StateID
	radius float64
	center g.Option[rover.Point]
	rnd    *rand.Rand
	next   rover.Point
}

// NewRandomTarget creates a random-target state. Without a center, points
// are drawn around the origin.
func NewRandomTarget(id behave.StateID, radius float64, center g.Option[rover.Point], rnd *rand.Rand) *RandomTarget {
	return &RandomTarget{id: id, radius: radius, center: center, rnd: rnd}
}

func (s *RandomTarget) ID() behave.StateID { return s.id }

// Activate draws the point for this activation, uniform over the disk.
func (s *RandomTarget) Activate(ctx behave.Context) behave.Context {
	r := s.radius * math.Sqrt(s.rnd.Float64())
	theta := s.rnd.Float64() * 2 * math.Pi

	s.next = s.center.UnwrapOr(rover.Point{}).Offset(r*math.Cos(theta), r*math.Sin(theta))

	return ctx
}

func (s *RandomTarget) Process(_ rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	return behave.Exit(behave.ExitCompleted, ctx.With(KeyTarget, s.next), rover.Halt())
}
