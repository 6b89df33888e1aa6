package catalog

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/enetx/behave/behavior"
	"github.com/enetx/behave/path"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

// Duration decodes from a Go duration string ("2s", "1.5m") or a bare
// number of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("catalog: bad duration %q: %w", s, err)
		}

		*d = Duration(v)

		return nil
	}

	var ms int64
	if err := node.Decode(&ms); err != nil {
		return fmt.Errorf("catalog: bad duration: %w", err)
	}

	*d = Duration(time.Duration(ms) * time.Millisecond)

	return nil
}

// PointSpec is a point in a configuration document. Coordinates are
// pointers so an absent field is distinguishable from zero.
type PointSpec struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// Config is the parsed configuration document a behavior factory consumes.
// Each behavior requires its own subset of fields; missing required fields
// abort construction with ErrMissingField. The unexported-from-YAML fields
// at the bottom inject collaborators the document cannot describe.
type Config struct {
	Target       *PointSpec  `yaml:"target"`
	Targets      []PointSpec `yaml:"targets"`
	Center       *PointSpec  `yaml:"center"`
	Distance     *float64    `yaml:"distance"`
	SafeDistance *float64    `yaml:"safeDistance"`
	MaxDistance  *float64    `yaml:"maxDistance"`
	Speed        *float64    `yaml:"speed"`
	Timeout      *Duration   `yaml:"timeout"`
	StallTimeout *Duration   `yaml:"stallTimeout"`
	JoystickPort *int        `yaml:"joystickPort"`
	Seed         *uint64     `yaml:"seed"`

	// Feed supplies Manual's operator input; the adapter owning
	// JoystickPort constructs it.
	Feed behavior.Feed `yaml:"-"`
	// Planner overrides the stock grid planner.
	Planner path.Planner `yaml:"-"`
	// Rand overrides the seeded random source.
	Rand *rand.Rand `yaml:"-"`
	// Logger receives transition and warning events.
	Logger *log.Logger `yaml:"-"`
}

// Parse decodes a YAML configuration document.
func Parse(doc []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse config: %w", err)
	}

	return &cfg, nil
}

// floatOr returns *v or def when the field is absent.
func floatOr(def float64, v *float64) float64 {
	if v == nil {
		return def
	}

	return *v
}

// durationOr returns *v or def when the field is absent.
func durationOr(def time.Duration, v *Duration) time.Duration {
	if v == nil {
		return def
	}

	return time.Duration(*v)
}

// rand returns the injected source, or one seeded from the config seed,
// or a time-seeded one.
func (c *Config) rand() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}

	seed := uint64(time.Now().UnixNano())
	if c.Seed != nil {
		seed = *c.Seed
	}

	return rand.New(rand.NewPCG(seed, seed))
}

// planner returns the injected planner or the stock grid planner.
func (c *Config) planner() path.Planner {
	if c.Planner != nil {
		return c.Planner
	}

	return path.GridPlanner{}
}

func requireFloat(name, field g.String, v *float64) (float64, error) {
	if v == nil {
		return 0, &ErrMissingField{Behavior: name, Field: field}
	}

	return *v, nil
}

func requirePoint(name, field g.String, p *PointSpec) (rover.Point, error) {
	switch {
	case p == nil:
		return rover.Point{}, &ErrMissingField{Behavior: name, Field: field}
	case p.X == nil:
		return rover.Point{}, &ErrMissingField{Behavior: name, Field: field + ".x"}
	case p.Y == nil:
		return rover.Point{}, &ErrMissingField{Behavior: name, Field: field + ".y"}
	}

	return rover.Point{X: *p.X, Y: *p.Y}, nil
}

// requireTargets requires the targets field to be present; an empty list
// is legal and makes the sequence complete immediately.
func requireTargets(name g.String, specs []PointSpec) (g.Slice[rover.Point], error) {
	if specs == nil {
		return nil, &ErrMissingField{Behavior: name, Field: "targets"}
	}

	var pts g.Slice[rover.Point]

	for i, spec := range specs {
		p, err := requirePoint(name, g.Format("targets[{}]", i), &spec)
		if err != nil {
			return nil, err
		}

		pts.Push(p)
	}

	return pts, nil
}

// centerOpt reads the optional center point; a partially specified center
// is an error.
func (c *Config) centerOpt(name g.String) (g.Option[rover.Point], error) {
	if c.Center == nil {
		return g.None[rover.Point](), nil
	}

	p, err := requirePoint(name, "center", c.Center)
	if err != nil {
		return g.None[rover.Point](), err
	}

	return g.Some(p), nil
}
