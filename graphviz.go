package behave

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the behavior
// graph for visualization. Edges are labelled with their exit codes; edges
// carrying a context operator are dashed.
func (e *Engine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph behavior {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", e.initial))

	type edge struct {
		label g.String
		op    bool
	}

	grouped := g.NewMap[g.Pair[StateID, StateID], g.Slice[edge]]()

	for key, t := range e.table.Iter() {
		pair := g.Pair[StateID, StateID]{Key: key.From, Value: t.To}

		grouped.Entry(pair).
			AndModify(func(s *g.Slice[edge]) { s.Push(edge{label: g.String(key.Exit), op: t.Op != nil}) }).
			OrInsert(g.SliceOf(edge{label: g.String(key.Exit), op: t.Op != nil}))
	}

	states := e.States()
	states.SortBy(cmp.Cmp)

	for state := range states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == e.current.ID():
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case state == StateEnd:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for pair, edges := range grouped.Iter() {
		var labels g.Slice[g.String]
		dashed := false

		for ed := range edges.Iter() {
			labels.Push(ed.label)
			dashed = dashed || ed.op
		}

		labels.SortBy(cmp.Cmp)

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\" {} \"", labels.Join("\\n")))

		if dashed {
			attrs.Push("style=dashed")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", pair.Key, pair.Value, attrs.Join(", ")))
	}

	b.WriteString("}\n")

	return b.String()
}
