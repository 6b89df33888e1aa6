package behavior

import (
	"github.com/enetx/behave"
	"github.com/enetx/behave/rover"
)

// Secure is reactive short-horizon obstacle avoidance: back away while
// turning out of the obstacle's bearing. It exits "completed" once nothing
// is sensed inside the safe distance and "blocked" when the robot is
// physically stuck.
type Secure struct {
	id    behave.StateID
	safe  float64
	speed float64
}

// NewSecure creates an avoidance state.
func NewSecure(id behave.StateID, safeDistance, speed float64) *Secure {
	return &Secure{id: id, safe: safeDistance, speed: speed}
}

func (s *Secure) ID() behave.StateID { return s.id }

func (s *Secure) Activate(ctx behave.Context) behave.Context { return ctx }

func (s *Secure) Process(st rover.Status, _ *rover.Grid, ctx behave.Context) behave.Result {
	if st.Blocked {
		return behave.Exit(behave.ExitBlocked, ctx, rover.Halt())
	}

	ob := st.Obstacle
	if ob.IsNone() || ob.Some().Distance >= s.safe {
		return behave.Exit(behave.ExitCompleted, ctx, rover.Halt())
	}

	// Reverse, steering the tail away from the obstacle side.
	turn := maxTurn / 2
	if rover.NormalizeAngle(ob.Some().Bearing) >= 0 {
		turn = -turn
	}

	return behave.Stay(ctx, rover.Command{Motor: rover.Drive{Speed: -s.speed, Turn: turn}})
}
