package schema

import "github.com/synless-go/synless/notation"

// NotationSet is a mapping from construct name to Notation, used to fetch
// a node's notation for layout (spec section 6's "Notation set"). It is a
// plain map, not an interface, because unlike Schema it has exactly one
// reasonable shape: every notation is known statically.
type NotationSet map[string]notation.Notation

// Lookup returns the notation registered for construct, if any.
func (ns NotationSet) Lookup(construct string) (notation.Notation, bool) {
	n, ok := ns[construct]
	return n, ok
}
