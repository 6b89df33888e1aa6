package behave_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	. "github.com/enetx/behave"
	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

func snapshotGraph(t *testing.T, params ...func(*Builder)) *Engine {
	t.Helper()

	b := NewBuilder().
		AddState(&scripted{id: "a", exits: []ExitCode{"done"}}).
		AddState(&scripted{id: "b"}).
		AddTransition("a", "done", "b")

	for _, p := range params {
		p(b)
	}

	e, err := b.Build("a")
	assertNoError(t, err)

	return e
}

func TestSnapshot_RoundTrip(t *testing.T) {
	e := snapshotGraph(t, func(b *Builder) {
		b.SetParam("target", rover.Point{X: 5, Y: 5}).
			SetParam("route", g.SliceOf(rover.Point{X: 1}, rover.Point{X: 2})).
			SetParam("dist", 0.3).
			SetParam("idx", 1).
			SetParam("timeout", 2*time.Second).
			SetParam("since", time.Unix(100, 0).UTC()).
			SetParam("name", g.String("patrol")).
			SetParam("armed", true)
	})

	e.Process(tick(), nil)
	assertEqual(t, e.Current(), StateID("b"))

	data, err := json.Marshal(e)
	assertNoError(t, err)

	restored := snapshotGraph(t)
	assertNoError(t, json.Unmarshal(data, restored))

	assertEqual(t, restored.Current(), StateID("b"))
	assertEqual(t, restored.History().Len(), 2)

	ctx := restored.Context()
	assertEqual(t, ctx.Point("target").Unwrap(), rover.Point{X: 5, Y: 5})
	assertEqual(t, ctx.Points("route").Unwrap().Len(), 2)
	assertEqual(t, ctx.Float("dist").Unwrap(), 0.3)
	assertEqual(t, ctx.Int("idx").Unwrap(), 1)
	assertEqual(t, ctx.Duration("timeout").Unwrap(), 2*time.Second)
	assertTrue(t, ctx.Time("since").Unwrap().Equal(time.Unix(100, 0)))
	assertEqual(t, ctx.String("name").Unwrap(), g.String("patrol"))
	assertEqual(t, ctx.Bool("armed").Unwrap(), true)
}

func TestSnapshot_UnknownStateRejected(t *testing.T) {
	e := snapshotGraph(t)

	err := json.Unmarshal([]byte(`{"current":"ghost","history":["a"],"context":{}}`), e)
	assertError(t, err)

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
	assertEqual(t, unknown.ID, StateID("ghost"))

	// The engine is untouched by the failed restore.
	assertEqual(t, e.Current(), StateID("a"))
}

func TestSnapshot_UnserializableValue(t *testing.T) {
	e := snapshotGraph(t, func(b *Builder) {
		b.SetParam("bad", struct{ N int }{N: 1})
	})

	_, err := json.Marshal(e)
	assertError(t, err)
}
