package behavior

import (
	"math"
	"time"

	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// progressEps is the minimum distance gain, in meters, counted as progress
// toward the target.
const progressEps = 1e-3

// maxTurn caps the commanded turn rate, in deg/s.
const maxTurn = 90.0

// Goto drives toward the point bound to KeyTarget. It exits "completed"
// once within the arrival distance — including on the very first tick
// after activation, when the target is already in reach — "obstacle" when
// something is sensed nearer than the safe distance or the robot is
// physically blocked, and "unreachable" when the distance to the target
// has not improved for the stall timeout. A missing target also reports
// "unreachable": there is nothing to drive to, and anomalies are exit
// codes here, never errors.
type Goto struct {
	id     behave.StateID
	arrive float64
	speed  float64
	safe   float64 // 0 disables the sensed-obstacle trip
	stall  time.Duration
}

// NewGoto creates a goto state. arrive is the arrival distance in meters,
// safeDistance of 0 ignores sensed obstacles, stall of 0 disables the
// unreachable timeout.
func NewGoto(id behave.StateID, arrive, speed, safeDistance float64, stall time.Duration) *Goto {
	return &Goto{id: id, arrive: arrive, speed: speed, safe: safeDistance, stall: stall}
}

func (s *Goto) ID() behave.StateID { return s.id }

func (s *Goto) bestKey() g.String { return stampKey(g.String(s.id), "best") }

func (s *Goto) progKey() g.String { return stampKey(g.String(s.id), "progress") }

// Activate clears the stall bookkeeping from any previous run.
func (s *Goto) Activate(ctx behave.Context) behave.Context {
	return ctx.Without(s.bestKey()).Without(s.progKey())
}

func (s *Goto) Process(st rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	target := ctx.Point(KeyTarget)
	if target.IsNone() {
		return behave.Exit(behave.ExitUnreachable, ctx, rover.Halt())
	}

	d := st.Location.Dist(target.Some())
	if d <= s.arrive {
		return behave.Exit(behave.ExitCompleted, ctx, rover.Halt())
	}

	if st.Blocked {
		return behave.Exit(behave.ExitObstacle, ctx, rover.Halt())
	}

	if ob := st.Obstacle; s.safe > 0 && ob.IsSome() && ob.Some().Distance < s.safe {
		return behave.Exit(behave.ExitObstacle, ctx.With(KeyObstacle, ob.Some().Point), rover.Halt())
	}

	best := ctx.Float(s.bestKey())
	if best.IsNone() || d < best.Some()-progressEps {
		ctx = ctx.With(s.bestKey(), d).With(s.progKey(), st.Time)
	} else if s.stall > 0 {
		if prog := ctx.Time(s.progKey()); prog.IsSome() && st.Time.Sub(prog.Some()) >= s.stall {
			return behave.Exit(behave.ExitUnreachable, ctx, rover.Halt())
		}
	}

	return behave.Stay(ctx, s.steer(st, target.Some(), d))
}

// steer points the wheels at the target, slowing down close to arrival
// and while turning hard.
func (s *Goto) steer(st rover.Status, target rover.Point, d float64) rover.Command {
	turn := rover.NormalizeAngle(st.Location.BearingTo(target) - st.Heading)
	turn = math.Max(-maxTurn, math.Min(maxTurn, turn))

	speed := s.speed
	if d < 3*s.arrive {
		speed *= 0.5
	}

	if math.Abs(turn) > 45 {
		speed *= 0.3
	}

	return rover.Command{Motor: rover.Drive{Speed: speed, Turn: turn}}
}
