// Package catalog holds the named behavior-graph recipes: each entry wires
// a complete state graph for one high-level robot behavior from a parsed
// configuration document. Construction is by name through a compile-time
// registry; an unresolvable name or a missing required field aborts
// construction, so a misconfigured graph never reaches its first tick.
package catalog

import (
	"time"

	"github.com/enetx/behave"
	"github.com/enetx/behave/behavior"
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// Factory builds one behavior graph from a configuration.
type Factory func(cfg *Config) (*behave.Engine, error)

var registry = map[g.String]Factory{
	"stop":          buildStop,
	"manual":        buildManual,
	"gotoTest":      buildGotoTest,
	"avoidObstacle": buildAvoidObstacle,
	"follow":        buildFollow,
	"sequence":      buildSequence,
	"randomPath":    buildRandomPath,
	"findPath":      buildFindPath,
}

// Fallback tunables for optional fields.
const (
	defaultSpeed    = 0.5
	defaultDistance = 0.3
	defaultStall    = 10 * time.Second
	defaultPause    = time.Second
)

// Behaviors returns the registered behavior names, sorted.
func Behaviors() g.Slice[g.String] {
	var names g.Slice[g.String]
	for name := range registry {
		names.Push(name)
	}

	names.SortBy(cmp.Cmp)

	return names
}

// New builds the named behavior graph from cfg.
func New(name g.String, cfg *Config) (*behave.Engine, error) {
	f, ok := registry[name]
	if !ok {
		return nil, &ErrUnknownBehavior{Name: name}
	}

	if cfg == nil {
		cfg = &Config{}
	}

	return f(cfg)
}

// NewFromYAML parses a YAML document and builds the named behavior graph.
func NewFromYAML(name g.String, doc []byte) (*behave.Engine, error) {
	cfg, err := Parse(doc)
	if err != nil {
		return nil, err
	}

	return New(name, cfg)
}

// stop: halt, optionally handing over to End after a timeout.
func buildStop(cfg *Config) (*behave.Engine, error) {
	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewStop("stop", durationOr(0, cfg.Timeout))).
		AddTransition("stop", behave.ExitTimeout, behave.StateEnd).
		Build("stop")
}

// manual: joystick passthrough until the operator disconnects.
func buildManual(cfg *Config) (*behave.Engine, error) {
	if cfg.JoystickPort == nil {
		return nil, &ErrMissingField{Behavior: "manual", Field: "joystickPort"}
	}

	if cfg.Feed == nil {
		return nil, &ErrMissingField{Behavior: "manual", Field: "feed"}
	}

	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewManual("manual", cfg.Feed)).
		AddTransition("manual", behave.ExitCancelled, behave.StateEnd).
		Build("manual")
}

// gotoTest: pause, then drive to a single configured target.
func buildGotoTest(cfg *Config) (*behave.Engine, error) {
	target, err := requirePoint("gotoTest", "target", cfg.Target)
	if err != nil {
		return nil, err
	}

	dist, err := requireFloat("gotoTest", "distance", cfg.Distance)
	if err != nil {
		return nil, err
	}

	drive := behavior.NewGoto(
		"goto",
		dist,
		floatOr(defaultSpeed, cfg.Speed),
		floatOr(0, cfg.SafeDistance),
		durationOr(defaultStall, cfg.StallTimeout),
	)

	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewStop("initial", durationOr(defaultPause, cfg.Timeout))).
		AddState(drive).
		AddTransition("initial", behave.ExitTimeout, "goto").
		AddTransition("goto", behave.ExitCompleted, behave.StateEnd).
		AddTransition("goto", behave.ExitObstacle, behave.StateEnd).
		AddTransition("goto", behave.ExitUnreachable, behave.StateEnd).
		SetParam(behavior.KeyTarget, target).
		Build("initial")
}

// avoidObstacle: scan in a loop, dodge whatever comes close, wait out
// blockages.
func buildAvoidObstacle(cfg *Config) (*behave.Engine, error) {
	safe, err := requireFloat("avoidObstacle", "safeDistance", cfg.SafeDistance)
	if err != nil {
		return nil, err
	}

	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewRandomScan("scan", safe, cfg.rand())).
		AddState(behavior.NewSecure("avoid", safe, floatOr(defaultSpeed, cfg.Speed))).
		AddState(behavior.NewWaitForUnblocked("wait")).
		AddTransition("scan", behave.ExitCompleted, "scan").
		AddTransition("scan", behave.ExitObstacle, "avoid").
		AddTransition("scan", behave.ExitBlocked, "wait").
		AddTransition("avoid", behave.ExitCompleted, "scan").
		AddTransition("avoid", behave.ExitBlocked, "wait").
		AddTransition("wait", behave.ExitCompleted, "scan").
		Build("scan")
}

// follow: scan for the nearest obstacle and keep driving toward it at a
// standoff distance. The scan's detected point becomes the goto target
// through the context operator on the obstacle transition.
func buildFollow(cfg *Config) (*behave.Engine, error) {
	safe, err := requireFloat("follow", "safeDistance", cfg.SafeDistance)
	if err != nil {
		return nil, err
	}

	dist, err := requireFloat("follow", "distance", cfg.Distance)
	if err != nil {
		return nil, err
	}

	// The followed obstacle must not trip Goto's own obstacle check.
	drive := behavior.NewGoto(
		"follow",
		dist,
		floatOr(defaultSpeed, cfg.Speed),
		0,
		durationOr(defaultStall, cfg.StallTimeout),
	)

	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewScan("scan", safe)).
		AddState(drive).
		AddState(behavior.NewWaitForUnblocked("wait")).
		AddTransition("scan", behave.ExitObstacle, "follow", behave.Assign(behavior.KeyTarget, behavior.KeyObstacle)).
		AddTransition("scan", behave.ExitCompleted, "scan").
		AddTransition("scan", behave.ExitBlocked, "wait").
		AddTransition("follow", behave.ExitCompleted, "scan").
		AddTransition("follow", behave.ExitObstacle, "scan").
		AddTransition("follow", behave.ExitUnreachable, "scan").
		AddTransition("wait", behave.ExitCompleted, "scan").
		Build("scan")
}

// sequence: visit a configured target list in order, dodging obstacles on
// the way; unreachable targets are skipped.
func buildSequence(cfg *Config) (*behave.Engine, error) {
	targets, err := requireTargets("sequence", cfg.Targets)
	if err != nil {
		return nil, err
	}

	safe := floatOr(0, cfg.SafeDistance)

	drive := behavior.NewGoto(
		"goto",
		floatOr(defaultDistance, cfg.Distance),
		floatOr(defaultSpeed, cfg.Speed),
		safe,
		durationOr(defaultStall, cfg.StallTimeout),
	)

	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewNextSequence("next")).
		AddState(drive).
		AddState(behavior.NewSecure("avoid", safe, floatOr(defaultSpeed, cfg.Speed))).
		AddState(behavior.NewWaitForUnblocked("wait")).
		AddTransition("next", behave.ExitTargetSelected, "goto").
		AddTransition("next", behave.ExitCompleted, behave.StateEnd).
		AddTransition("goto", behave.ExitCompleted, "next").
		AddTransition("goto", behave.ExitObstacle, "avoid").
		AddTransition("goto", behave.ExitUnreachable, "next").
		AddTransition("avoid", behave.ExitCompleted, "goto").
		AddTransition("avoid", behave.ExitBlocked, "wait").
		AddTransition("wait", behave.ExitCompleted, "goto").
		SetParam(behavior.KeyTargets, targets).
		SetParam(behavior.KeyIndex, 0).
		Build("next")
}

// randomPath: explore forever — pick a random target, plan a route, walk
// its waypoints, repeat.
func buildRandomPath(cfg *Config) (*behave.Engine, error) {
	maxDist, err := requireFloat("randomPath", "maxDistance", cfg.MaxDistance)
	if err != nil {
		return nil, err
	}

	center, err := cfg.centerOpt("randomPath")
	if err != nil {
		return nil, err
	}

	safe := floatOr(0, cfg.SafeDistance)

	drive := behavior.NewGoto(
		"goto",
		floatOr(defaultDistance, cfg.Distance),
		floatOr(defaultSpeed, cfg.Speed),
		safe,
		durationOr(defaultStall, cfg.StallTimeout),
	)

	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewRandomTarget("random", maxDist, center, cfg.rand())).
		AddState(behavior.NewFindPath("plan", cfg.planner())).
		AddState(behavior.NewNextSequenceKeys("walk", behavior.KeyPath, behavior.KeyPathIndex, behavior.KeyTarget)).
		AddState(drive).
		AddState(behavior.NewSecure("avoid", safe, floatOr(defaultSpeed, cfg.Speed))).
		AddState(behavior.NewWaitForUnblocked("wait")).
		AddTransition("random", behave.ExitCompleted, "plan").
		AddTransition("plan", behave.ExitCompleted, "walk", behave.Put(behavior.KeyPathIndex, 0)).
		AddTransition("plan", behave.ExitTargetReached, "random").
		AddTransition("plan", behave.ExitNoPath, "random").
		AddTransition("walk", behave.ExitTargetSelected, "goto").
		AddTransition("walk", behave.ExitCompleted, "random").
		AddTransition("goto", behave.ExitCompleted, "walk").
		AddTransition("goto", behave.ExitObstacle, "avoid").
		AddTransition("goto", behave.ExitUnreachable, "random").
		AddTransition("avoid", behave.ExitCompleted, "goto").
		AddTransition("avoid", behave.ExitBlocked, "wait").
		AddTransition("wait", behave.ExitCompleted, "goto").
		Build("random")
}

// findPath: plan a route to a single configured target and walk it.
func buildFindPath(cfg *Config) (*behave.Engine, error) {
	target, err := requirePoint("findPath", "target", cfg.Target)
	if err != nil {
		return nil, err
	}

	safe := floatOr(0, cfg.SafeDistance)

	drive := behavior.NewGoto(
		"goto",
		floatOr(defaultDistance, cfg.Distance),
		floatOr(defaultSpeed, cfg.Speed),
		safe,
		durationOr(defaultStall, cfg.StallTimeout),
	)

	return behave.NewBuilder().
		WithLogger(cfg.Logger).
		AddState(behavior.NewFindPath("plan", cfg.planner())).
		AddState(behavior.NewNextSequenceKeys("walk", behavior.KeyPath, behavior.KeyPathIndex, behavior.KeyTarget)).
		AddState(drive).
		AddState(behavior.NewSecure("avoid", safe, floatOr(defaultSpeed, cfg.Speed))).
		AddState(behavior.NewWaitForUnblocked("wait")).
		AddTransition("plan", behave.ExitCompleted, "walk", behave.Put(behavior.KeyPathIndex, 0)).
		AddTransition("plan", behave.ExitTargetReached, behave.StateEnd).
		AddTransition("plan", behave.ExitNoPath, behave.StateEnd).
		AddTransition("walk", behave.ExitTargetSelected, "goto").
		AddTransition("walk", behave.ExitCompleted, behave.StateEnd).
		AddTransition("goto", behave.ExitCompleted, "walk").
		AddTransition("goto", behave.ExitObstacle, "avoid").
		AddTransition("goto", behave.ExitUnreachable, behave.StateEnd).
		AddTransition("avoid", behave.ExitCompleted, "goto").
		AddTransition("avoid", behave.ExitBlocked, "wait").
		AddTransition("wait", behave.ExitCompleted, "goto").
		SetParam(behavior.KeyTarget, target).
		Build("plan")
}
