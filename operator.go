package behave

import "github.com/enetx/g"

// Operator is a pure Context transform applied exactly when a transition
// fires. Operators shape the data a state graph hands to its next state,
// e.g. promoting a detected obstacle point to the goto target.
type Operator func(Context) Context

// Assign returns an operator binding dst to the value currently under src.
// When src is unset, dst is unset too.
func Assign(dst, src g.String) Operator {
	return func(ctx Context) Context {
		if v := ctx.Get(src); v.IsSome() {
			return ctx.With(dst, v.Some())
		}

		return ctx.Without(dst)
	}
}

// Put returns an operator binding key to a literal value.
func Put(key g.String, value any) Operator {
	return func(ctx Context) Context {
		return ctx.With(key, value)
	}
}

// Drop returns an operator unsetting key.
func Drop(key g.String) Operator {
	return func(ctx Context) Context {
		return ctx.Without(key)
	}
}

// Chain returns an operator applying ops left to right.
func Chain(ops ...Operator) Operator {
	return func(ctx Context) Context {
		for _, op := range ops {
			if op != nil {
				ctx = op(ctx)
			}
		}

		return ctx
	}
}
