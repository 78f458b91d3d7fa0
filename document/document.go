// Package document provides the two concrete payload types a forest.Forest
// needs to act as a renderable document — Leaf and Branch — and Node, an
// adapter presenting a forest.Handle as the layout.Node the layout engine
// walks. This is the document glue described in SPEC_FULL.md §4.7: the
// core (forest, notation, bound, layout) never imports document, and
// document is the only package that imports both forest and layout.
package document

import (
	"github.com/synless-go/synless/forest"
	"github.com/synless-go/synless/layout"
)

// Leaf is the payload of a text-arity node: its construct name (for
// notation/arity lookup) and its text content.
type Leaf struct {
	Construct string
	Text      string
}

// Branch is the payload of a non-text node: just its construct name. Its
// children live in the arena as ordinary child nodes, reachable through
// the owning Handle rather than stored inline.
type Branch struct {
	Construct string
}

// Tree is the forest instantiated for documents.
type Tree = forest.Forest[Leaf, Branch]

// Handle is the handle type documents are navigated through.
type Handle = forest.Handle[Leaf, Branch]

// NewTree returns an empty document forest.
func NewTree() *Tree {
	return forest.New[Leaf, Branch]()
}

// Node adapts a Handle into the layout.Node interface the layout engine
// consumes. It addresses its own position via a forest.Bookmark rather
// than assuming exclusive use of the handle's cursor, since the engine's
// structural recursion walks back and forth across siblings and the
// handle is shared by every Node built from it (spec section 4.2: a
// bookmark "avoids stale-pointer problems and survives arbitrary
// intervening edits" — here it survives being temporarily pointed
// elsewhere by a sibling's own traversal, which is the read-only analogue
// of an edit from this Node's point of view).
type Node struct {
	h    *Handle
	mark forest.Bookmark
}

// NewNode returns a Node addressing the handle's current focus.
func NewNode(h *Handle) Node {
	return Node{h: h, mark: h.Bookmark()}
}

var _ layout.Node = Node{}

func (n Node) seek() {
	if !n.h.GotoBookmark(n.mark) {
		panic("document: node no longer exists in this handle's tree")
	}
}

// Text implements layout.Node.
func (n Node) Text() string {
	n.seek()
	return n.h.Leaf().Text
}

// Construct implements layout.Node.
func (n Node) Construct() string {
	n.seek()
	if n.h.IsLeaf() {
		return n.h.Leaf().Construct
	}
	return n.h.Data().Construct
}

// NumChildren implements layout.Node.
func (n Node) NumChildren() int {
	n.seek()
	return n.h.NumChildren()
}

// Child implements layout.Node.
func (n Node) Child(i int) layout.Node {
	n.seek()
	n.h.GotoChild(i)
	childMark := n.h.Bookmark()
	n.h.GotoBookmark(n.mark)
	return Node{h: n.h, mark: childMark}
}
