package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-go/synless/layout"
	"github.com/synless-go/synless/notation"
	"github.com/synless-go/synless/schema"
	"github.com/synless-go/synless/sink"
	"github.com/synless-go/synless/style"
)

// fixtureNode is a plain in-memory layout.Node, standing in for
// document.Node so this package's tests don't need a forest.Forest. It
// mirrors original_source/language/src/notationset.rs's commented-out
// example_tree fixture: func("foo", args("abc","def"), plus(strn("abcdef"),
// strn("abcdef"))).
type fixtureNode struct {
	construct string
	text      string
	children  []*fixtureNode
}

func (n *fixtureNode) Text() string      { return n.text }
func (n *fixtureNode) Construct() string { return n.construct }
func (n *fixtureNode) NumChildren() int  { return len(n.children) }
func (n *fixtureNode) Child(i int) layout.Node {
	return n.children[i]
}

func iden(name string) *fixtureNode  { return &fixtureNode{construct: "iden", text: name} }
func strn(text string) *fixtureNode  { return &fixtureNode{construct: "strn", text: text} }
func args(cs ...*fixtureNode) *fixtureNode {
	return &fixtureNode{construct: "args", children: cs}
}
func plus(l, r *fixtureNode) *fixtureNode {
	return &fixtureNode{construct: "plus", children: []*fixtureNode{l, r}}
}
func fn(name, args, body *fixtureNode) *fixtureNode {
	return &fixtureNode{construct: "func", children: []*fixtureNode{name, args, body}}
}

// punct/word/txt mirror notationset.rs's helpers of the same name.
func punct(s string) notation.Notation {
	return notation.Literal{Text: s, Style: style.WithColor(style.Base0A)}
}

func word(s string) notation.Notation {
	return notation.Literal{Text: s, Style: style.WithColor(style.Base0B)}
}

func txt() notation.Notation {
	return notation.Text{Style: style.Style{
		Foreground: style.Base0D,
		Background: style.Black,
		Emphasis:   style.Underline,
	}}
}

func plusNotation() notation.Notation {
	return notation.Choice{
		A: notation.Cat(notation.Child{Index: 0}, punct(" + "), notation.Child{Index: 1}),
		B: notation.Cat(notation.Flush{Body: notation.Child{Index: 0}}, punct("+ "), notation.Child{Index: 1}),
	}
}

func argsNotation() notation.Notation {
	tight := notation.Repeat{
		Empty:  notation.Empty{},
		Lone:   notation.Star{},
		First:  notation.Cat(notation.Star{}, punct(", ")),
		Middle: notation.Cat(notation.Star{}, punct(", ")),
		Last:   notation.Star{},
	}
	broken := notation.Repeat{
		Empty:  notation.Empty{},
		Lone:   notation.Star{},
		First:  notation.Flush{Body: notation.Cat(notation.Star{}, punct(","))},
		Middle: notation.Flush{Body: notation.Cat(notation.Star{}, punct(","))},
		Last:   notation.Star{},
	}
	return notation.Choice{A: notation.Rep{Repeat: tight}, B: notation.Rep{Repeat: broken}}
}

func funcNotation() notation.Notation {
	oneLine := notation.Cat(
		word("func "), notation.Child{Index: 0},
		punct("("), notation.Child{Index: 1}, punct(") { "),
		notation.Child{Index: 2}, punct(" }"),
	)
	headFlush := notation.Cat(
		notation.Flush{Body: notation.Cat(word("func "), notation.Child{Index: 0}, punct("("), notation.Child{Index: 1}, punct(") {"))},
		notation.Flush{Body: notation.Cat(word("  "), notation.Child{Index: 2})},
		punct("}"),
	)
	allFlush := notation.Cat(
		notation.Flush{Body: notation.Cat(word("func "), notation.Child{Index: 0}, punct("("))},
		notation.Flush{Body: notation.Cat(word("  "), notation.Child{Index: 1}, punct(")"))},
		notation.Flush{Body: punct("{")},
		notation.Flush{Body: notation.Cat(word("  "), notation.Child{Index: 2})},
		punct("}"),
	)
	return notation.Choice{A: oneLine, B: notation.Choice{A: headFlush, B: allFlush}}
}

func idenNotation() notation.Notation {
	return notation.IfEmptyText{Then: notation.Cat(txt(), punct("·")), Else: txt()}
}

func strnNotation() notation.Notation {
	return notation.Cat(punct("'"), txt(), punct("'"))
}

func exampleSchema() schema.Schema {
	return schema.StaticSchema{
		"func": schema.ArityFixed(3),
		"plus": schema.ArityFixed(2),
		"args": schema.ArityExtendable(0),
		"iden": schema.ArityText(),
		"strn": schema.ArityText(),
	}
}

func exampleNotations() schema.NotationSet {
	return schema.NotationSet{
		"func": funcNotation(),
		"plus": plusNotation(),
		"args": argsNotation(),
		"iden": idenNotation(),
		"strn": strnNotation(),
	}
}

// exampleDocument builds func("foo", args("abc","def"), plus(strn("abcdef"),
// strn("abcdef"))), the document spec section 8's width table is computed
// against.
func exampleDocument() *fixtureNode {
	return fn(
		iden("foo"),
		args(iden("abc"), iden("def")),
		plus(strn("abcdef"), strn("abcdef")),
	)
}

func renderAtWidth(t *testing.T, doc *fixtureNode, width int) string {
	t.Helper()
	sch := exampleSchema()
	notations := exampleNotations()

	set := layout.Layouts(doc, sch, notations)
	entry, ok := layout.Select(set, width)
	require.True(t, ok)

	s := sink.NewBufferSink()
	layout.Render(s, doc, sch, notations, entry, 0, 0)
	return s.String()
}

func TestRenderAtWidth80(t *testing.T) {
	got := renderAtWidth(t, exampleDocument(), 80)
	require.Equal(t, `func foo(abc, def) { 'abcdef' + 'abcdef' }`, got)
}

func TestRenderAtWidth41(t *testing.T) {
	got := renderAtWidth(t, exampleDocument(), 41)
	require.Equal(t, "func foo(abc, def) { 'abcdef'\n                     + 'abcdef' }", got)
}

func TestRenderAtWidth32(t *testing.T) {
	got := renderAtWidth(t, exampleDocument(), 32)
	require.Equal(t, "func foo(abc, def) {\n  'abcdef' + 'abcdef'\n}", got)
}

func TestRenderAtWidth20(t *testing.T) {
	got := renderAtWidth(t, exampleDocument(), 20)
	require.Equal(t, "func foo(abc, def) {\n  'abcdef'\n  + 'abcdef'\n}", got)
}

func TestRenderAtWidth19(t *testing.T) {
	got := renderAtWidth(t, exampleDocument(), 19)
	require.Equal(t, "func foo(abc,\n         def) {\n  'abcdef'\n  + 'abcdef'\n}", got)
}

func TestRenderAtWidth14(t *testing.T) {
	got := renderAtWidth(t, exampleDocument(), 14)
	require.Equal(t, "func foo(\n  abc, def)\n{\n  'abcdef'\n  + 'abcdef'\n}", got)
}

func TestSelectMonotonicHeightAsWidthGrows(t *testing.T) {
	sch := exampleSchema()
	notations := exampleNotations()
	set := layout.Layouts(exampleDocument(), sch, notations)

	widths := []int{14, 19, 20, 32, 41, 80}
	prevHeight := -1
	for i := len(widths) - 1; i >= 0; i-- {
		entry, ok := layout.Select(set, widths[i])
		require.True(t, ok)
		if prevHeight >= 0 {
			require.LessOrEqual(t, prevHeight, entry.Bound.Height)
		}
		prevHeight = entry.Bound.Height
	}
}

func TestRenderPanicsOnUnregisteredConstruct(t *testing.T) {
	sch := schema.StaticSchema{}
	notations := schema.NotationSet{}
	require.Panics(t, func() {
		layout.Bounds(&fixtureNode{construct: "mystery"}, sch, notations)
	})
}
