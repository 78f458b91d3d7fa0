// Package schema implements the "language schema" external collaborator
// from spec section 6: for each construct name, it reports an Arity of
// {Text, Fixed(k), Extendable(k)}. The layout engine consumes only this —
// never a notation — to know how many children (or whether a text
// payload) a construct expects.
package schema

import "fmt"

// ArityKind distinguishes the three shapes a construct's children can take.
type ArityKind uint8

const (
	// Text constructs hold a text payload and no children.
	Text ArityKind = iota
	// Fixed constructs have exactly Count children.
	Fixed
	// Extendable constructs have at least Count children, and may grow.
	Extendable
)

func (k ArityKind) String() string {
	switch k {
	case Text:
		return "Text"
	case Fixed:
		return "Fixed"
	case Extendable:
		return "Extendable"
	default:
		return fmt.Sprintf("ArityKind(%d)", uint8(k))
	}
}

// Arity describes the shape of a construct's children.
type Arity struct {
	Kind  ArityKind
	Count int
}

// ArityText is the arity of a construct holding a text payload.
func ArityText() Arity {
	return Arity{Kind: Text}
}

// ArityFixed is the arity of a construct with exactly k children.
func ArityFixed(k int) Arity {
	return Arity{Kind: Fixed, Count: k}
}

// ArityExtendable is the arity of a construct with at least k children.
func ArityExtendable(k int) Arity {
	return Arity{Kind: Extendable, Count: k}
}

// Schema reports, for a construct name, the Arity the core needs to expand
// that construct's notation. It is opaque beyond this lookup (spec section
// 6): the core never inspects construct-name constraints or validates a
// document's shape against the schema itself — that is a caller concern.
type Schema interface {
	ArityOf(construct string) (Arity, bool)
}

// StaticSchema is a map-backed Schema, sufficient for any language whose
// construct set is known up front.
type StaticSchema map[string]Arity

// ArityOf implements Schema.
func (s StaticSchema) ArityOf(construct string) (Arity, bool) {
	a, ok := s[construct]
	return a, ok
}
