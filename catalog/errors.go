package catalog

import (
	"fmt"

	"github.com/enetx/g"
)

// ErrUnknownBehavior is returned when no factory is registered under the
// requested name.
type ErrUnknownBehavior struct {
	Name g.String
}

func (e *ErrUnknownBehavior) Error() string {
	return fmt.Sprintf("catalog: unknown behavior %q", e.Name)
}

// ErrMissingField is returned when a behavior's configuration lacks a
// required field. Required fields are never defaulted: a graph built from
// an incomplete document must not start.
type ErrMissingField struct {
	Behavior g.String
	Field    g.String
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("catalog: behavior %q requires field %q", e.Behavior, e.Field)
}
