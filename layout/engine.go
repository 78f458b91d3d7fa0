package layout

import (
	"github.com/synless-go/synless/bound"
	"github.com/synless-go/synless/notation"
	"github.com/synless-go/synless/schema"
	"github.com/synless-go/synless/sink"
)

// Node is the view the layout engine needs of a document node: its
// construct name (for notation and arity lookup), its text payload if the
// schema says this construct is text-arity, and its children otherwise.
// Package document implements this over a forest.Handle; tests in this
// package implement it directly over a plain tree for fixture convenience.
//
// Node never reports its own arity — the engine consumes only what
// schema.Schema.ArityOf(n.Construct()) says (spec section 6: "The core
// consumes only the arity and, for text nodes, the empty-text flag at
// render time"), so a Node's Text/NumChildren/Child are only ever called
// in the mode the schema says is valid for that construct.
type Node interface {
	// Text returns the text payload. Valid only for Text-arity constructs.
	Text() string
	// Construct returns the construct name used to look up this node's
	// notation and arity.
	Construct() string
	// NumChildren returns the number of children. Valid only for
	// Fixed/Extendable-arity constructs.
	NumChildren() int
	// Child returns the i-th child. Valid only for Fixed/Extendable-arity
	// constructs.
	Child(i int) Node
}

// Bounds computes n's Pareto-minimal bound set, recursing into n's
// children first (spec section 4.5: "the engine walks the document
// bottom-up, computing per-node bound sets").
func Bounds(n Node, sch schema.Schema, notations schema.NotationSet) *bound.BoundSet[struct{}] {
	expanded, childBounds := expandAgainst(n, sch, notations)
	return Compute(childBounds, expanded, unitOps)
}

// Layouts computes n's Pareto-minimal set of candidate Layouts, alongside
// its children's bound sets (not their layouts — a child's layout is only
// ever built on demand for the slot the parent's selection actually uses;
// see render's ChildRef case).
func Layouts(n Node, sch schema.Schema, notations schema.NotationSet) *bound.BoundSet[Layout] {
	expanded, childBounds := expandAgainst(n, sch, notations)
	return Compute(childBounds, expanded, layoutOps)
}

// expandAgainst looks up n's arity and notation, computes its children's
// bound sets (or the synthetic text bound set for a text-arity node), and
// expands the notation against the resulting arity information.
func expandAgainst(n Node, sch schema.Schema, notations schema.NotationSet) (notation.Notation, []*bound.BoundSet[struct{}]) {
	construct := n.Construct()

	arity, ok := sch.ArityOf(construct)
	if !ok {
		panic("layout: no arity registered for construct " + construct)
	}
	raw, ok := notations.Lookup(construct)
	if !ok {
		panic("layout: no notation registered for construct " + construct)
	}

	if arity.Kind == schema.Text {
		text := n.Text()
		childBounds := []*bound.BoundSet[struct{}]{bound.Singleton[struct{}](bound.Literal(text), struct{}{})}
		return notation.Expand(raw, 0, text == ""), childBounds
	}

	k := n.NumChildren()
	childBounds := make([]*bound.BoundSet[struct{}], k)
	for i := 0; i < k; i++ {
		childBounds[i] = Bounds(n.Child(i), sch, notations)
	}
	return notation.Expand(raw, k, false), childBounds
}

// Select chooses, among set's candidates, the one to render at screen
// width w: minimum height subject to width <= w, falling back to the
// narrowest candidate if none fits (spec section 4.5's Selection rule,
// implemented by bound.BoundSet.FitWidth). The bool result is false only
// if set is empty, as happens when a NoWrap filters out every candidate.
func Select(set *bound.BoundSet[Layout], w int) (bound.Entry[Layout], bool) {
	return set.FitWidth(w)
}

// Render walks entry's Layout tree and writes it to s, starting at
// (row, col) and returning the cursor position after the last character
// written. n, sch, and notations must be the same ones entry's bound set
// was computed from, since ChildRef and Text entries resolve against them
// lazily (spec section 9's "Layout/Bound dual computation": a child's own
// Layout set is only built for the slots actually selected, never for
// discarded candidates).
func Render(s sink.Sink, n Node, sch schema.Schema, notations schema.NotationSet, entry bound.Entry[Layout], row, col int) (int, int) {
	return render(s, n, sch, notations, entry.Value, row, col)
}

func render(s sink.Sink, n Node, sch schema.Schema, notations schema.NotationSet, lay Layout, row, col int) (int, int) {
	switch t := lay.(type) {
	case Empty:
		return row, col

	case Literal:
		s.SetStyle(t.Style)
		s.WriteString(t.Text)
		return row, col + bound.Literal(t.Text).Width

	case Text:
		s.SetStyle(t.Style)
		s.WriteString(n.Text())
		return row, col + t.ChildBound.Width

	case Flush:
		endRow, _ := render(s, n, sch, notations, t.Body, row, col)
		s.NewlineTo(col)
		return endRow + 1, col

	case Concat:
		row, col = render(s, n, sch, notations, t.Left, row, col)
		return render(s, n, sch, notations, t.Right, row, col)

	case ChildRef:
		child := n.Child(t.Index)
		childSet := Layouts(child, sch, notations)
		childEntry, ok := findExact(childSet, t.ChildBound)
		if !ok {
			panic("layout: child layout set missing its own recorded bound")
		}
		return render(s, child, sch, notations, childEntry.Value, row, col)

	default:
		panic("layout: unknown Layout variant")
	}
}

// findExact returns the entry in set whose bound equals b. It always
// succeeds for a well-formed Layout tree: a ChildRef's ChildBound is drawn
// from the child's own bound set (package layout's Bounds), and a node's
// BoundSet[Layout] and BoundSet[struct{}] always carry the same set of
// bounds, since Pareto pruning depends only on Bound values, never on the
// companion type.
func findExact(set *bound.BoundSet[Layout], b bound.Bound) (bound.Entry[Layout], bool) {
	for _, e := range set.Entries() {
		if e.Bound == b {
			return e, true
		}
	}
	var zero bound.Entry[Layout]
	return zero, false
}

// RenderDocument is the top-level convenience entry point: compute n's
// candidate layouts, select the one that fits width, and render it to s
// starting at the origin.
func RenderDocument(s sink.Sink, n Node, sch schema.Schema, notations schema.NotationSet, width int) bool {
	set := Layouts(n, sch, notations)
	entry, ok := Select(set, width)
	if !ok {
		return false
	}
	Render(s, n, sch, notations, entry, 0, 0)
	return entry.Bound.Width <= width
}
