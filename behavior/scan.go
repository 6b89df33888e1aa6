package behavior

import (
	"math/rand/v2"

	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// defaultSweep is the head sweep used when no explicit plan is given.
var defaultSweep = []float64{-90, -45, 0, 45, 90}

// Scan sweeps the sensor head, one angle per tick. It exits "completed"
// after the last angle, "obstacle" as soon as something is sensed nearer
// than the safe distance (writing the obstacle point to KeyObstacle), and
// "blocked" when the robot cannot move at all.
//
// A random scan draws a fresh sweep plan on every activation from the
// injected source; the plan is stored in the context, so processing a tick
// stays a pure function of its inputs.
type Scan struct {
	id   behave.StateID
	plan g.Slice[float64]
	rnd  *rand.Rand
	safe float64
}

// NewScan creates a fixed-sweep scan. Without explicit angles the default
// five-position sweep is used.
func NewScan(id behave.StateID, safeDistance float64, plan ...float64) *Scan {
	s := &Scan{id: id, safe: safeDistance}

	if len(plan) > 0 {
		s.plan = g.SliceOf(plan...)
	} else {
		s.plan = g.SliceOf(defaultSweep...)
	}

	return s
}

// NewRandomScan creates a scan whose sweep is drawn from rnd at each
// activation, uniformly within the default sweep's span.
func NewRandomScan(id behave.StateID, safeDistance float64, rnd *rand.Rand) *Scan {
	return &Scan{id: id, plan: g.SliceOf(defaultSweep...), rnd: rnd, safe: safeDistance}
}

func (s *Scan) ID() behave.StateID { return s.id }

func (s *Scan) planKey() g.String { return stampKey(g.String(s.id), "plan") }

func (s *Scan) idxKey() g.String { return stampKey(g.String(s.id), "idx") }

// Activate rewinds the sweep and, in random mode, draws the plan for this
// activation.
func (s *Scan) Activate(ctx behave.Context) behave.Context {
	ctx = ctx.Without(s.idxKey())

	if s.rnd == nil {
		return ctx.Without(s.planKey())
	}

	drawn := g.NewSlice[float64]()
	for range len(s.plan) {
		drawn.Push(s.rnd.Float64()*180 - 90)
	}

	return ctx.With(s.planKey(), drawn)
}

func (s *Scan) Process(st rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	if st.Blocked {
		return behave.Exit(behave.ExitBlocked, ctx, rover.Halt())
	}

	if ob := st.Obstacle; ob.IsSome() && ob.Some().Distance < s.safe {
		return behave.Exit(behave.ExitObstacle, ctx.With(KeyObstacle, ob.Some().Point), rover.Halt())
	}

	plan := s.plan
	if stored := get[g.Slice[float64]](ctx, s.planKey()); stored.IsSome() {
		plan = stored.Some()
	}

	i := ctx.Int(s.idxKey()).UnwrapOr(0)
	if i >= len(plan) {
		return behave.Exit(behave.ExitCompleted, ctx, rover.Halt())
	}

	return behave.Stay(ctx.With(s.idxKey(), i+1), rover.Command{Head: plan[i]})
}

// get mirrors the typed context accessors for a value type the context
// does not expose a named getter for.
func get[T any](ctx behave.Context, key g.String) g.Option[T] {
	if v := ctx.Get(key); v.IsSome() {
		if t, ok := v.Some().(T); ok {
			return g.Some(t)
		}
	}

	return g.None[T]()
}
