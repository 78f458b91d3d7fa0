// Package arena implements the shared, identifier-addressed store that
// backs the forest package's public Handle API. It owns node storage,
// parent/child topology, and the dynamic single-writer/multi-reader borrow
// check described in spec section 5; it has no notion of cursors or
// bookmarks, which live one layer up in the forest package.
package arena

import (
	"fmt"

	"github.com/google/uuid"
)

// Id is an opaque, globally unique, copyable node identifier. Identifiers
// are never reissued: deleting a node frees its map slot, not its UUID.
type Id struct {
	v uuid.UUID
}

func newId() Id {
	return Id{v: uuid.New()}
}

// String returns a short, human-readable form of the identifier, useful in
// ContractViolation messages and debug output.
func (id Id) String() string {
	return id.v.String()
}

// ContractViolation reports a programmer error: a precondition on an Arena
// or Handle operation was violated. It is fatal by design (see spec section
// 7) and is never recovered from inside this module.
type ContractViolation struct {
	Op  string
	Msg string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("forest: %s: %s", e.Op, e.Msg)
}

func violate(op, format string, args ...any) {
	panic(ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)})
}

type kind uint8

const (
	kindLeaf kind = iota
	kindBranch
)

type node[L, D any] struct {
	parent   *Id
	kind     kind
	leaf     L
	data     D
	children []Id
}

// Arena is a mapping from node identifier to node, plus the borrow state
// that guards every operation below. It is not safe for concurrent use from
// multiple goroutines; the borrow check exists to catch reentrant contract
// violations within a single call stack (spec section 5), not to make the
// arena thread-safe.
type Arena[L, D any] struct {
	nodes   map[Id]*node[L, D]
	readers int
	writer  bool
}

// New constructs an empty arena.
func New[L, D any]() *Arena[L, D] {
	return &Arena[L, D]{nodes: make(map[Id]*node[L, D])}
}

// Len returns the number of live nodes. Exposed for tests that verify the
// node count drops by exactly the deleted subtree's size.
func (a *Arena[L, D]) Len() int {
	a.beginRead()
	defer a.endRead()
	return len(a.nodes)
}

// Exists reports whether id currently names a live node, without panicking
// if it does not. This is the one arena query that backs a recoverable
// result (bookmark lookup) rather than a ContractViolation.
func (a *Arena[L, D]) Exists(id Id) bool {
	a.beginRead()
	defer a.endRead()
	_, ok := a.nodes[id]
	return ok
}

func (a *Arena[L, D]) beginRead() {
	if a.writer {
		violate("borrow", "cannot read-borrow the arena while a write-borrow is held")
	}
	a.readers++
}

func (a *Arena[L, D]) endRead() {
	a.readers--
}

func (a *Arena[L, D]) beginWrite() {
	if a.writer {
		violate("borrow", "cannot hold two write-borrows on the arena at once")
	}
	if a.readers > 0 {
		violate("borrow", "cannot write-borrow the arena while a read-borrow is held")
	}
	a.writer = true
}

func (a *Arena[L, D]) endWrite() {
	a.writer = false
}

func (a *Arena[L, D]) get(op string, id Id) *node[L, D] {
	n, ok := a.nodes[id]
	if !ok {
		violate(op, "id %s not found", id)
	}
	return n
}

// CreateLeaf allocates a fresh, parentless leaf and returns its identifier.
func (a *Arena[L, D]) CreateLeaf(leaf L) Id {
	a.beginWrite()
	defer a.endWrite()
	id := newId()
	a.nodes[id] = &node[L, D]{kind: kindLeaf, leaf: leaf}
	return id
}

// CreateBranch allocates a fresh, parentless branch over the given children.
// Each child must currently be parentless and live; violating that is a
// ContractViolation (see the ownership rule in spec section 4.1).
func (a *Arena[L, D]) CreateBranch(data D, children []Id) Id {
	a.beginWrite()
	defer a.endWrite()
	id := newId()
	kids := append([]Id(nil), children...)
	for _, c := range kids {
		cn := a.get("create_branch", c)
		if cn.parent != nil {
			violate("create_branch", "child %s is not parentless", c)
		}
	}
	a.nodes[id] = &node[L, D]{kind: kindBranch, data: data, children: kids}
	for _, c := range kids {
		p := id
		a.nodes[c].parent = &p
	}
	return id
}

// Parent returns the parent identifier, or false for a root.
func (a *Arena[L, D]) Parent(id Id) (Id, bool) {
	a.beginRead()
	defer a.endRead()
	n := a.get("parent", id)
	if n.parent == nil {
		return Id{}, false
	}
	return *n.parent, true
}

// Children returns a copy of the branch's child identifiers in order.
// Panics with ContractViolation on a leaf.
func (a *Arena[L, D]) Children(id Id) []Id {
	a.beginRead()
	defer a.endRead()
	n := a.get("children", id)
	if n.kind != kindBranch {
		violate("children", "node %s is a leaf, not a branch", id)
	}
	return append([]Id(nil), n.children...)
}

// Child returns the i-th child of a branch.
func (a *Arena[L, D]) Child(id Id, i int) Id {
	a.beginRead()
	defer a.endRead()
	n := a.get("child", id)
	if n.kind != kindBranch {
		violate("child", "node %s is a leaf, not a branch", id)
	}
	if i < 0 || i >= len(n.children) {
		violate("child", "index %d out of bounds (len=%d) on node %s", i, len(n.children), id)
	}
	return n.children[i]
}

// NumChildren returns len(Children(id)) without allocating a copy.
func (a *Arena[L, D]) NumChildren(id Id) int {
	a.beginRead()
	defer a.endRead()
	n := a.get("num_children", id)
	if n.kind != kindBranch {
		violate("num_children", "node %s is a leaf, not a branch", id)
	}
	return len(n.children)
}

// RootOf walks parent links to the topmost ancestor of id.
func (a *Arena[L, D]) RootOf(id Id) Id {
	a.beginRead()
	defer a.endRead()
	cur := a.get("root_of", id)
	walked := id
	for cur.parent != nil {
		walked = *cur.parent
		cur = a.get("root_of", walked)
	}
	return walked
}

// IsLeaf reports whether id names a leaf node.
func (a *Arena[L, D]) IsLeaf(id Id) bool {
	a.beginRead()
	defer a.endRead()
	return a.get("is_leaf", id).kind == kindLeaf
}

// Data returns the branch payload at id. Panics on a leaf.
func (a *Arena[L, D]) Data(id Id) D {
	a.beginRead()
	defer a.endRead()
	n := a.get("data", id)
	if n.kind != kindBranch {
		violate("data", "node %s is a leaf, not a branch", id)
	}
	return n.data
}

// Leaf returns the leaf payload at id. Panics on a branch.
func (a *Arena[L, D]) Leaf(id Id) L {
	a.beginRead()
	defer a.endRead()
	n := a.get("leaf", id)
	if n.kind != kindLeaf {
		violate("leaf", "node %s is a branch, not a leaf", id)
	}
	return n.leaf
}

// DataMut replaces the branch payload at id. Panics on a leaf.
func (a *Arena[L, D]) DataMut(id Id, data D) {
	a.beginWrite()
	defer a.endWrite()
	n := a.get("data_mut", id)
	if n.kind != kindBranch {
		violate("data_mut", "node %s is a leaf, not a branch", id)
	}
	n.data = data
}

// LeafMut replaces the leaf payload at id. Panics on a branch.
func (a *Arena[L, D]) LeafMut(id Id, leaf L) {
	a.beginWrite()
	defer a.endWrite()
	n := a.get("leaf_mut", id)
	if n.kind != kindLeaf {
		violate("leaf_mut", "node %s is a branch, not a leaf", id)
	}
	n.leaf = leaf
}

// ReplaceChild atomically swaps children[i] of parent with newChild,
// returning the old child. newChild.parent is set to parent; the returned
// old child's parent is cleared to none.
func (a *Arena[L, D]) ReplaceChild(parent Id, i int, newChild Id) Id {
	a.beginWrite()
	defer a.endWrite()
	p := a.get("replace_child", parent)
	if p.kind != kindBranch {
		violate("replace_child", "node %s is a leaf, not a branch", parent)
	}
	if i < 0 || i >= len(p.children) {
		violate("replace_child", "index %d out of bounds (len=%d) on node %s", i, len(p.children), parent)
	}
	nc := a.get("replace_child", newChild)
	if nc.parent != nil {
		violate("replace_child", "new child %s is not parentless", newChild)
	}
	old := p.children[i]
	p.children[i] = newChild
	nc.parent = &parent
	a.get("replace_child", old).parent = nil
	return old
}

// InsertChild inserts newChild at index i (0 <= i <= len(children)).
func (a *Arena[L, D]) InsertChild(parent Id, i int, newChild Id) {
	a.beginWrite()
	defer a.endWrite()
	p := a.get("insert_child", parent)
	if p.kind != kindBranch {
		violate("insert_child", "node %s is a leaf, not a branch", parent)
	}
	if i < 0 || i > len(p.children) {
		violate("insert_child", "index %d out of bounds (len=%d) on node %s", i, len(p.children), parent)
	}
	nc := a.get("insert_child", newChild)
	if nc.parent != nil {
		violate("insert_child", "new child %s is not parentless", newChild)
	}
	p.children = append(p.children, Id{})
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = newChild
	nc.parent = &parent
}

// RemoveChild removes and returns the i-th child, clearing its parent.
func (a *Arena[L, D]) RemoveChild(parent Id, i int) Id {
	a.beginWrite()
	defer a.endWrite()
	p := a.get("remove_child", parent)
	if p.kind != kindBranch {
		violate("remove_child", "node %s is a leaf, not a branch", parent)
	}
	if i < 0 || i >= len(p.children) {
		violate("remove_child", "index %d out of bounds (len=%d) on node %s", i, len(p.children), parent)
	}
	removed := p.children[i]
	p.children = append(p.children[:i], p.children[i+1:]...)
	a.get("remove_child", removed).parent = nil
	return removed
}

// DeleteTree recursively removes id and all its descendants from the arena.
func (a *Arena[L, D]) DeleteTree(id Id) {
	a.beginWrite()
	defer a.endWrite()
	a.deleteTree(id)
}

func (a *Arena[L, D]) deleteTree(id Id) {
	n, ok := a.nodes[id]
	if !ok {
		return
	}
	delete(a.nodes, id)
	if n.kind == kindBranch {
		for _, c := range n.children {
			a.deleteTree(c)
		}
	}
}
