package forest

import "github.com/synless-go/synless/forest/internal/arena"

// Handle is a value owning a subtree rooted at some identifier, with a
// movable focus (cursor) always reachable from root. It exposes the arena
// operations relevant to that subtree while enforcing that the handle owns
// exactly the nodes reachable from root (spec section 3/4.2).
//
// A zero Handle is not valid; obtain one from Forest.NewLeaf, Forest.NewBranch,
// or a splice operation on another Handle.
type Handle[L, D any] struct {
	a     *arena.Arena[L, D]
	root  Id
	focus Id
}

func (h *Handle[L, D]) ensureLive(op string) {
	if h.a == nil {
		violate(op, "handle has already been consumed or closed")
	}
}

// consume invalidates h and returns the identifier of its owned subtree's
// root, transferring ownership to whatever arena operation is about to
// re-parent it. This is the Go stand-in for the Rust implementation's
// mem::forget-based move: after this call, any further use of h panics.
func (h *Handle[L, D]) consume(op string) Id {
	h.ensureLive(op)
	id := h.root
	h.a = nil
	return id
}

// Root returns the identifier of the subtree this handle owns.
func (h *Handle[L, D]) Root() Id {
	h.ensureLive("root")
	return h.root
}

// Focus returns the identifier the handle is currently pointed at.
func (h *Handle[L, D]) Focus() Id {
	h.ensureLive("focus")
	return h.focus
}

// AtRoot reports whether the focus is currently at the handle's root.
func (h *Handle[L, D]) AtRoot() bool {
	h.ensureLive("at_root")
	return h.focus == h.root
}

// IsLeaf reports whether the focused node is a leaf.
func (h *Handle[L, D]) IsLeaf() bool {
	h.ensureLive("is_leaf")
	return h.a.IsLeaf(h.focus)
}

// NumChildren returns the number of children of the focused node. Panics if
// the focus is a leaf.
func (h *Handle[L, D]) NumChildren() int {
	h.ensureLive("num_children")
	return h.a.NumChildren(h.focus)
}

// Data returns the branch payload at the focus. Panics if the focus is a leaf.
func (h *Handle[L, D]) Data() D {
	h.ensureLive("data")
	return h.a.Data(h.focus)
}

// Leaf returns the leaf payload at the focus. Panics if the focus is a branch.
func (h *Handle[L, D]) Leaf() L {
	h.ensureLive("leaf")
	return h.a.Leaf(h.focus)
}

// DataMut replaces the branch payload at the focus. Panics if the focus is a leaf.
func (h *Handle[L, D]) DataMut(data D) {
	h.ensureLive("data_mut")
	h.a.DataMut(h.focus, data)
}

// LeafMut replaces the leaf payload at the focus. Panics if the focus is a branch.
func (h *Handle[L, D]) LeafMut(leaf L) {
	h.ensureLive("leaf_mut")
	h.a.LeafMut(h.focus, leaf)
}

// GotoRoot moves the focus to the handle's root.
func (h *Handle[L, D]) GotoRoot() {
	h.ensureLive("goto_root")
	h.focus = h.root
}

// GotoParent moves the focus to its parent. Panics with ContractViolation
// (AtRoot) if the focus is already the handle's root.
func (h *Handle[L, D]) GotoParent() {
	h.ensureLive("goto_parent")
	if h.focus == h.root {
		violate("goto_parent", "focus is already at the handle's root")
	}
	p, ok := h.a.Parent(h.focus)
	if !ok {
		violate("goto_parent", "focused node %s unexpectedly has no parent", h.focus)
	}
	h.focus = p
}

// GotoChild moves the focus to its i-th child.
func (h *Handle[L, D]) GotoChild(i int) {
	h.ensureLive("goto_child")
	h.focus = h.a.Child(h.focus, i)
}

// Bookmark captures the current focus for later relocation, possibly across
// intervening edits (spec section 4.2).
func (h *Handle[L, D]) Bookmark() Bookmark {
	h.ensureLive("bookmark")
	return Bookmark{id: h.focus}
}

// GotoBookmark moves the focus to the bookmarked node if it is still live
// and still rooted at this handle's root, returning whether it did.
// Unlike the rest of this API, a miss is not a ContractViolation: it is the
// one recoverable failure mode (spec section 7).
func (h *Handle[L, D]) GotoBookmark(b Bookmark) bool {
	h.ensureLive("goto_bookmark")
	if !h.a.Exists(b.id) {
		return false
	}
	if h.a.RootOf(b.id) != h.root {
		return false
	}
	h.focus = b.id
	return true
}

// ReplaceChild atomically swaps the i-th child of the focused node with
// other's subtree, consuming other and returning a new owning Handle for
// the replaced child.
func (h *Handle[L, D]) ReplaceChild(i int, other *Handle[L, D]) *Handle[L, D] {
	h.ensureLive("replace_child")
	if other.a != h.a {
		violate("replace_child", "handles belong to different forests")
	}
	newRoot := other.consume("replace_child")
	oldId := h.a.ReplaceChild(h.focus, i, newRoot)
	return &Handle[L, D]{a: h.a, root: oldId, focus: oldId}
}

// InsertChild inserts other's subtree as the i-th child of the focused
// node, consuming other.
func (h *Handle[L, D]) InsertChild(i int, other *Handle[L, D]) {
	h.ensureLive("insert_child")
	if other.a != h.a {
		violate("insert_child", "handles belong to different forests")
	}
	newRoot := other.consume("insert_child")
	h.a.InsertChild(h.focus, i, newRoot)
}

// RemoveChild removes the i-th child of the focused node and returns a new
// owning Handle for it.
func (h *Handle[L, D]) RemoveChild(i int) *Handle[L, D] {
	h.ensureLive("remove_child")
	id := h.a.RemoveChild(h.focus, i)
	return &Handle[L, D]{a: h.a, root: id, focus: id}
}

// Close recursively deletes the subtree this handle owns from the arena.
// It is the Go analogue of the Rust implementation's Drop impl; since Go
// has no destructors, callers must call Close explicitly once a handle's
// subtree is no longer wanted (either because it was discarded, or because
// it was spliced elsewhere via Replace/Insert/RemoveChild and this handle's
// job is done). Close is idempotent: closing an already-consumed or
// already-closed handle is a no-op, not a panic.
func (h *Handle[L, D]) Close() {
	if h.a == nil {
		return
	}
	h.a.DeleteTree(h.root)
	h.a = nil
}
