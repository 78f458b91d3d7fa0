package document_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-go/synless/document"
	"github.com/synless-go/synless/layout"
	"github.com/synless-go/synless/notation"
	"github.com/synless-go/synless/schema"
	"github.com/synless-go/synless/sink"
)

func buildTree(t *testing.T) (*document.Tree, *document.Handle) {
	t.Helper()
	tree := document.NewTree()

	abc := tree.NewLeaf(document.Leaf{Construct: "iden", Text: "abc"})
	def := tree.NewLeaf(document.Leaf{Construct: "iden", Text: "def"})
	root := tree.NewBranch(document.Branch{Construct: "args"}, []*document.Handle{abc, def})
	return tree, root
}

func testSchema() schema.Schema {
	return schema.StaticSchema{
		"args": schema.ArityExtendable(0),
		"iden": schema.ArityText(),
	}
}

func testNotations() schema.NotationSet {
	punct := func(s string) notation.Notation { return notation.Lit(s) }
	return schema.NotationSet{
		"iden": notation.Text{},
		"args": notation.Choice{
			A: notation.Rep{Repeat: notation.Repeat{
				Empty:  notation.Empty{},
				Lone:   notation.Star{},
				First:  notation.Cat(notation.Star{}, punct(", ")),
				Middle: notation.Cat(notation.Star{}, punct(", ")),
				Last:   notation.Star{},
			}},
			B: notation.Rep{Repeat: notation.Repeat{
				Empty:  notation.Empty{},
				Lone:   notation.Star{},
				First:  notation.Flush{Body: notation.Cat(notation.Star{}, punct(","))},
				Middle: notation.Flush{Body: notation.Cat(notation.Star{}, punct(","))},
				Last:   notation.Star{},
			}},
		},
	}
}

func TestNodeAdaptsHandleIntoLayoutNode(t *testing.T) {
	tree, root := buildTree(t)
	defer root.Close()

	n := document.NewNode(root)
	require.Equal(t, "args", n.Construct())
	require.Equal(t, 2, n.NumChildren())

	child0 := n.Child(0)
	require.Equal(t, "iden", child0.Construct())
	require.Equal(t, "abc", child0.Text())

	_ = tree
}

func TestNodeSurvivesSiblingBookmarkNavigation(t *testing.T) {
	_, root := buildTree(t)
	defer root.Close()

	n := document.NewNode(root)
	first := n.Child(0)
	second := n.Child(1)

	// Reading through first after second was constructed (and after second
	// has navigated the shared handle elsewhere) must still see "abc": each
	// Node re-seeks its own bookmark before every read.
	require.Equal(t, "def", second.Text())
	require.Equal(t, "abc", first.Text())
}

func TestDocumentRendersThroughLayoutEngine(t *testing.T) {
	tree, root := buildTree(t)
	defer root.Close()
	_ = tree

	n := document.NewNode(root)
	sch := testSchema()
	notations := testNotations()

	set := layout.Layouts(n, sch, notations)
	entry, ok := layout.Select(set, 80)
	require.True(t, ok)

	s := sink.NewBufferSink()
	layout.Render(s, n, sch, notations, entry, 0, 0)
	require.Equal(t, "abc, def", s.String())
}
