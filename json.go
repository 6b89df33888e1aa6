package behave

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// snapshot is the serializable representation of a running engine: where
// it is, where it has been, and what the context carries. Context values
// are domain types, so they travel in a small tagged wire format instead
// of raw JSON values.
type snapshot struct {
	Current StateID                `json:"current"`
	History g.Slice[StateID]       `json:"history"`
	Context map[g.String]wireValue `json:"context"`
}

type wireValue struct {
	Kind   string        `json:"kind"`
	Point  *rover.Point  `json:"point,omitempty"`
	Points []rover.Point `json:"points,omitempty"`
	Floats []float64     `json:"floats,omitempty"`
	Float  *float64      `json:"float,omitempty"`
	Int    *int          `json:"int,omitempty"`
	Dur    *int64        `json:"dur,omitempty"` // nanoseconds
	Time   *time.Time    `json:"time,omitempty"`
	Str    *string       `json:"str,omitempty"`
	Bool   *bool         `json:"bool,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (e *Engine) MarshalJSON() ([]byte, error) {
	snap := snapshot{
		Current: e.current.ID(),
		History: e.history.Clone(),
		Context: make(map[g.String]wireValue, e.ctx.Len()),
	}

	for key := range e.ctx.Keys().Iter() {
		w, err := encodeValue(e.ctx.Get(key).Some())
		if err != nil {
			return nil, fmt.Errorf("behave: context key %q: %w", key, err)
		}

		snap.Context[key] = w
	}

	return json.Marshal(snap)
}

// UnmarshalJSON implements the json.Unmarshaler interface. The restored
// current state and every history entry must be registered; the current
// state is adopted without re-activating it, since the snapshot captured
// it mid-flight.
func (e *Engine) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("behave: failed to unmarshal engine snapshot: %w", err)
	}

	if !e.states.Contains(snap.Current) {
		return &ErrUnknownState{ID: snap.Current, Where: "snapshot current state"}
	}

	for id := range snap.History.Iter() {
		if !e.states.Contains(id) {
			return &ErrUnknownState{ID: id, Where: "snapshot history"}
		}
	}

	ctx := NewContext()

	for key, w := range snap.Context {
		v, err := decodeValue(w)
		if err != nil {
			return fmt.Errorf("behave: context key %q: %w", key, err)
		}

		ctx = ctx.With(key, v)
	}

	e.current = e.states.Get(snap.Current).Some()
	e.history = snap.History
	e.ctx = ctx

	return nil
}

func encodeValue(v any) (wireValue, error) {
	switch t := v.(type) {
	case rover.Point:
		return wireValue{Kind: "point", Point: &t}, nil
	case g.Slice[rover.Point]:
		return wireValue{Kind: "points", Points: t}, nil
	case g.Slice[float64]:
		return wireValue{Kind: "floats", Floats: t}, nil
	case float64:
		return wireValue{Kind: "float", Float: &t}, nil
	case int:
		return wireValue{Kind: "int", Int: &t}, nil
	case time.Duration:
		ns := int64(t)
		return wireValue{Kind: "dur", Dur: &ns}, nil
	case time.Time:
		return wireValue{Kind: "time", Time: &t}, nil
	case g.String:
		s := t.Std()
		return wireValue{Kind: "str", Str: &s}, nil
	case string:
		return wireValue{Kind: "str", Str: &t}, nil
	case bool:
		return wireValue{Kind: "bool", Bool: &t}, nil
	default:
		return wireValue{}, fmt.Errorf("value of type %T is not serializable", v)
	}
}

func decodeValue(w wireValue) (any, error) {
	switch w.Kind {
	case "point":
		if w.Point != nil {
			return *w.Point, nil
		}
	case "points":
		return g.Slice[rover.Point](w.Points), nil
	case "floats":
		return g.Slice[float64](w.Floats), nil
	case "float":
		if w.Float != nil {
			return *w.Float, nil
		}
	case "int":
		if w.Int != nil {
			return *w.Int, nil
		}
	case "dur":
		if w.Dur != nil {
			return time.Duration(*w.Dur), nil
		}
	case "time":
		if w.Time != nil {
			return *w.Time, nil
		}
	case "str":
		if w.Str != nil {
			return g.String(*w.Str), nil
		}
	case "bool":
		if w.Bool != nil {
			return *w.Bool, nil
		}
	}

	return nil, fmt.Errorf("malformed %q value", w.Kind)
}
