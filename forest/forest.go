// Package forest implements a shared arena storing many independent trees
// with stable node identifiers, cursor-like mutable handles, bookmark-based
// relocation across edits, and ownership-safe lifetime rules for subtree
// moves. It is the document-storage half of the editor core; the other half
// (notation, bound, layout) renders whatever tree shape a caller builds
// here.
//
// Forest is generic over a leaf payload L and a branch payload D, following
// the same Tree<Data, Leaf> shape as the Rust implementation this module's
// semantics are ported from. A single Forest instance backs every Handle
// derived from it; Handles for different trees within the same Forest share
// the underlying arena but own disjoint subtrees.
package forest

import (
	"fmt"

	"github.com/synless-go/synless/forest/internal/arena"
)

// Id is an opaque, globally unique, copyable node identifier.
type Id = arena.Id

// ContractViolation reports a violated precondition (wrong node kind,
// out-of-bounds child index, double write-borrow, use of a consumed
// handle). It is a programmer error, fatal and not meant to be recovered
// inside this module (spec section 7).
type ContractViolation = arena.ContractViolation

func violate(op, format string, args ...any) {
	panic(ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// Forest owns the arena shared by every Handle constructed from it.
type Forest[L, D any] struct {
	a *arena.Arena[L, D]
}

// New constructs an empty Forest.
func New[L, D any]() *Forest[L, D] {
	return &Forest[L, D]{a: arena.New[L, D]()}
}

// Len returns the number of live nodes across every tree in the forest.
func (f *Forest[L, D]) Len() int {
	return f.a.Len()
}

// NewLeaf allocates a fresh leaf and returns an owning Handle rooted at it.
func (f *Forest[L, D]) NewLeaf(leaf L) *Handle[L, D] {
	id := f.a.CreateLeaf(leaf)
	return &Handle[L, D]{a: f.a, root: id, focus: id}
}

// NewBranch allocates a fresh branch over the given children, consuming
// each child Handle (transferring ownership of its subtree into the new
// branch) and returning an owning Handle rooted at the branch.
func (f *Forest[L, D]) NewBranch(data D, children []*Handle[L, D]) *Handle[L, D] {
	ids := make([]Id, len(children))
	for i, c := range children {
		if c.a != f.a {
			violate("new_branch", "child handle belongs to a different forest")
		}
		ids[i] = c.consume("new_branch")
	}
	id := f.a.CreateBranch(data, ids)
	return &Handle[L, D]{a: f.a, root: id, focus: id}
}
