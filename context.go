package behave

import (
	"time"

	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// Context is the key/value store carried between states across transitions:
// targets, timeouts, obstacle points, waypoint lists, working indices.
// It is a value type with copy-on-write semantics; With and Without return
// a new Context and never touch the receiver, so a state may keep the
// snapshot it was handed without it changing underneath.
//
// An absent key means "unset". Readers get g.Option values and decide per
// state whether absence means "use default" or is an exit condition.
type Context struct {
	m g.Map[g.String, any]
}

// NewContext returns an empty context.
func NewContext() Context {
	return Context{m: g.NewMap[g.String, any]()}
}

// With returns a copy of the context with key bound to value.
func (c Context) With(key g.String, value any) Context {
	m := g.NewMap[g.String, any](c.m.Len() + 1)
	for k, v := range c.m.Iter() {
		m.Set(k, v)
	}

	m.Set(key, value)

	return Context{m: m}
}

// Without returns a copy of the context with key unset.
func (c Context) Without(key g.String) Context {
	m := g.NewMap[g.String, any](c.m.Len())
	for k, v := range c.m.Iter() {
		if k != key {
			m.Set(k, v)
		}
	}

	return Context{m: m}
}

// Get returns the raw value bound to key.
func (c Context) Get(key g.String) g.Option[any] {
	return c.m.Get(key)
}

// Contains reports whether key is bound.
func (c Context) Contains(key g.String) bool {
	return c.m.Contains(key)
}

// Len returns the number of bound keys.
func (c Context) Len() g.Int { return c.m.Len() }

// Keys returns the bound keys.
func (c Context) Keys() g.Slice[g.String] { return c.m.Keys() }

// Typed accessors. Each returns None when the key is unset or bound to a
// value of a different type.

func (c Context) Point(key g.String) g.Option[rover.Point] { return get[rover.Point](c, key) }

func (c Context) Points(key g.String) g.Option[g.Slice[rover.Point]] {
	return get[g.Slice[rover.Point]](c, key)
}

func (c Context) Float(key g.String) g.Option[float64] { return get[float64](c, key) }

func (c Context) Int(key g.String) g.Option[int] { return get[int](c, key) }

func (c Context) Duration(key g.String) g.Option[time.Duration] { return get[time.Duration](c, key) }

func (c Context) Time(key g.String) g.Option[time.Time] { return get[time.Time](c, key) }

func (c Context) String(key g.String) g.Option[g.String] { return get[g.String](c, key) }

func (c Context) Bool(key g.String) g.Option[bool] { return get[bool](c, key) }

func get[T any](c Context, key g.String) g.Option[T] {
	if v := c.m.Get(key); v.IsSome() {
		if t, ok := v.Some().(T); ok {
			return g.Some(t)
		}
	}

	return g.None[T]()
}
