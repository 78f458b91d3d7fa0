// Package notation implements the user-facing description language that
// tells the layout engine how a document construct may be rendered: a
// closed algebra of literals, concatenation, newline-forcing, child
// references, and a handful of variadic/conditional forms that must be
// resolved against a concrete node before the layout engine can consume
// them (see Expand).
package notation

import "github.com/synless-go/synless/style"

// Notation is a closed sum type; the only implementations live in this
// package. Callers switch on the concrete type via a type switch.
type Notation interface {
	isNotation()
}

// Empty produces the zero-size layout.
type Empty struct{}

// Literal displays the fixed string Text with Style.
type Literal struct {
	Text  string
	Style style.Style
}

// Text displays the text payload of a text-arity node, styled.
type Text struct {
	Style style.Style
}

// Child displays the Index-th child's own rendered layout.
type Child struct {
	Index int
}

// Flush renders Body and then forces a newline: height increases by one
// and indentation resets to zero at the point Body ends.
type Flush struct {
	Body Notation
}

// Concat places Second starting at the end-of-First position.
type Concat struct {
	First  Notation
	Second Notation
}

// NoWrap restricts Body's candidate layouts to those with height zero.
type NoWrap struct {
	Body Notation
}

// Choice is the union of the candidate layouts of A and B.
type Choice struct {
	A Notation
	B Notation
}

// IfEmptyText chooses Then if the current node's text payload is empty,
// else Else. Expand collapses this to one branch once the flag is known.
type IfEmptyText struct {
	Then Notation
	Else Notation
}

// Repeat holds the five slots of a repeat elaboration. Star within Lone,
// First, Middle, and Last stands for the repeated child at hand.
type Repeat struct {
	Empty  Notation
	Lone   Notation
	First  Notation
	Middle Notation
	Last   Notation
}

// Rep is a repeat form elaborating to a concat chain over a node's
// children; see Expand for the elaboration rules.
type Rep struct {
	Repeat Repeat
}

// Star stands, within a Rep's slots, for the child currently being
// repeated over. It has no meaning outside of Expand.
type Star struct{}

func (Empty) isNotation()       {}
func (Literal) isNotation()     {}
func (Text) isNotation()        {}
func (Child) isNotation()       {}
func (Flush) isNotation()       {}
func (Concat) isNotation()      {}
func (NoWrap) isNotation()      {}
func (Choice) isNotation()      {}
func (IfEmptyText) isNotation() {}
func (Rep) isNotation()         {}
func (Star) isNotation()        {}

// Lit is a convenience constructor for a plainly-styled Literal.
func Lit(s string) Notation {
	return Literal{Text: s}
}

// Cat concatenates an arbitrary number of notations left-to-right; Cat()
// is Empty, Cat(n) is n.
func Cat(ns ...Notation) Notation {
	if len(ns) == 0 {
		return Empty{}
	}
	out := ns[0]
	for _, n := range ns[1:] {
		out = Concat{First: out, Second: n}
	}
	return out
}
