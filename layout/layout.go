// Package layout computes, for an expanded notation.Notation and its
// children's precomputed bound sets, a Pareto-minimal set of candidate
// concrete layouts (bound.BoundSet[Layout]), selects the best one for a
// given screen width, and renders it into a sink.Sink.
//
// The computation is a direct translation of the original implementation's
// generic `Lay` trait (original_source/pretty/src/layout/layout.rs):
// instead of a trait with two impls (`impl Lay for ()`, `impl Lay for
// LayoutRegion`), this package uses a struct of closures, Ops[T], and a
// single generic function, Compute[T], instantiated once per companion
// type. unitOps is the "()" instantiation (bound-only, used for every
// node's contribution to its parent); layoutOps is the "LayoutRegion"
// instantiation (the node's own candidate layouts).
package layout

import (
	"github.com/synless-go/synless/bound"
	"github.com/synless-go/synless/notation"
	"github.com/synless-go/synless/style"
)

// Layout is a closed sum type: a concrete rendering plan for an already
// fully-resolved notation, with every Choice already decided. Unlike
// Notation, it carries no repeat/conditional forms and, at the leaves that
// refer to a child or a text payload, the exact bound.Bound chosen for
// that slot (spec section 4.5's "important subtlety").
type Layout interface {
	isLayout()
}

// Empty renders nothing.
type Empty struct{}

// Literal renders a fixed string with a style.
type Literal struct {
	Text  string
	Style style.Style
}

// Text renders the current node's own text payload, styled. ChildBound is
// the bound chosen for the text at this slot (always the text's own
// literal bound — kept here for symmetry with ChildRef and so Render
// never needs to recompute it).
type Text struct {
	Style      style.Style
	ChildBound bound.Bound
}

// Flush renders Body, then forces a newline back to the column at which
// Body started rendering.
type Flush struct {
	Body Layout
}

// Concat renders Left, then Right starting where Left's rendering ended.
type Concat struct {
	Left, Right Layout
}

// ChildRef renders child Index's own selected layout — the one in its
// bound set whose bound equals ChildBound.
type ChildRef struct {
	Index      int
	ChildBound bound.Bound
}

func (Empty) isLayout()    {}
func (Literal) isLayout()  {}
func (Text) isLayout()     {}
func (Flush) isLayout()    {}
func (Concat) isLayout()   {}
func (ChildRef) isLayout() {}

// Ops is the Go analogue of the original implementation's Lay trait: a
// constructor per notation variant, parameterized over a companion type T
// so the same structural recursion (Compute) can produce either a
// bound-only summary or a full layout tree.
type Ops[T any] struct {
	Empty   func() T
	Literal func(s string, sty style.Style) T
	Flush   func(v T) T
	Concat  func(a, b T) T
	Text    func(childBound bound.Bound, sty style.Style) T
	Child   func(i int, childBound bound.Bound) T
}

// unitOps is the "impl Lay for ()" instantiation: every constructor
// discards its arguments. Used to compute a node's bound set for
// consumption by its parent, without also building (and immediately
// discarding) layouts for every candidate.
var unitOps = Ops[struct{}]{
	Empty:   func() struct{} { return struct{}{} },
	Literal: func(string, style.Style) struct{} { return struct{}{} },
	Flush:   func(struct{}) struct{} { return struct{}{} },
	Concat:  func(struct{}, struct{}) struct{} { return struct{}{} },
	Text:    func(bound.Bound, style.Style) struct{} { return struct{}{} },
	Child:   func(int, bound.Bound) struct{} { return struct{}{} },
}

// layoutOps is the "impl Lay for LayoutRegion" instantiation, building the
// actual Layout tree for each candidate bound.
var layoutOps = Ops[Layout]{
	Empty:   func() Layout { return Empty{} },
	Literal: func(s string, sty style.Style) Layout { return Literal{Text: s, Style: sty} },
	Flush:   func(v Layout) Layout { return Flush{Body: v} },
	Concat:  func(a, b Layout) Layout { return Concat{Left: a, Right: b} },
	Text:    func(cb bound.Bound, sty style.Style) Layout { return Text{Style: sty, ChildBound: cb} },
	Child:   func(i int, cb bound.Bound) Layout { return ChildRef{Index: i, ChildBound: cb} },
}

// Compute performs the structural recursion at the heart of the layout
// engine (spec section 4.5): given childBounds (one BoundSet per child
// slot the notation may reference, index 0 being the synthetic text bound
// set for a text-arity node) and an already-Expand-ed notation, it builds
// the Pareto-minimal BoundSet[T] of everything n could render as.
//
// n must not contain IfEmptyText, Rep, or Star — notation.Expand resolves
// those before Compute ever sees them.
func Compute[T any](childBounds []*bound.BoundSet[struct{}], n notation.Notation, ops Ops[T]) *bound.BoundSet[T] {
	switch t := n.(type) {
	case notation.Empty:
		return bound.Singleton[T](bound.Empty(), ops.Empty())

	case notation.Literal:
		return bound.Singleton[T](bound.Literal(t.Text), ops.Literal(t.Text, t.Style))

	case notation.Text:
		out := bound.New[T]()
		for _, e := range childBounds[0].Entries() {
			out.Insert(e.Bound, ops.Text(e.Bound, t.Style))
		}
		return out

	case notation.Child:
		out := bound.New[T]()
		for _, e := range childBounds[t.Index].Entries() {
			out.Insert(e.Bound, ops.Child(t.Index, e.Bound))
		}
		return out

	case notation.Flush:
		inner := Compute(childBounds, t.Body, ops)
		return bound.Map(inner, func(b bound.Bound, v T) (bound.Bound, T) {
			return b.Flush(), ops.Flush(v)
		})

	case notation.Concat:
		set1 := Compute(childBounds, t.First, ops)
		set2 := Compute(childBounds, t.Second, ops)
		out := bound.New[T]()
		for _, e1 := range set1.Entries() {
			for _, e2 := range set2.Entries() {
				out.Insert(e1.Bound.Concat(e2.Bound), ops.Concat(e1.Value, e2.Value))
			}
		}
		return out

	case notation.NoWrap:
		inner := Compute(childBounds, t.Body, ops)
		return bound.Filter(inner, func(b bound.Bound, _ T) bool { return b.Height == 0 })

	case notation.Choice:
		set1 := Compute(childBounds, t.A, ops)
		set2 := Compute(childBounds, t.B, ops)
		out := bound.New[T]()
		out.Union(set1)
		out.Union(set2)
		return out

	default:
		panic("layout: notation must be expanded before Compute (unexpected IfEmptyText/Rep/Star)")
	}
}
