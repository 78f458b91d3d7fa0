// Package main is a small demo binary: it builds the func/args/plus/iden/
// strn example document used throughout this module's tests and renders it
// at a chosen width, showing the same reflow behavior the width table in
// package layout's tests checks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synless-go/synless/document"
	"github.com/synless-go/synless/layout"
	"github.com/synless-go/synless/notation"
	"github.com/synless-go/synless/schema"
	"github.com/synless-go/synless/sink"
	"github.com/synless-go/synless/style"
)

var width int

var rootCmd = &cobra.Command{
	Use:   "synless-render",
	Short: "Render the example document at a given width",
	Long: `synless-render builds the example func/args/plus document and
renders it through the layout engine at --width columns, demonstrating
how the selected layout reflows as the available width shrinks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(width)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&width, "width", "w", 80, "render width, in columns")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width int) error {
	tree := document.NewTree()
	doc := buildExampleDocument(tree)
	defer doc.Close()

	n := document.NewNode(doc)
	sch := exampleSchema()
	notations := exampleNotations()

	set := layout.Layouts(n, sch, notations)
	entry, ok := layout.Select(set, width)
	if !ok {
		return fmt.Errorf("no candidate layout available")
	}
	if entry.Bound.Width > width {
		fmt.Fprintf(os.Stderr, "warning: narrowest candidate (%d columns) still overflows width %d\n", entry.Bound.Width, width)
	}

	s := sink.NewBufferSink()
	layout.Render(s, n, sch, notations, entry, 0, 0)
	fmt.Println(s.String())
	return nil
}

func buildExampleDocument(tree *document.Tree) *document.Handle {
	name := tree.NewLeaf(document.Leaf{Construct: "iden", Text: "foo"})
	abc := tree.NewLeaf(document.Leaf{Construct: "iden", Text: "abc"})
	def := tree.NewLeaf(document.Leaf{Construct: "iden", Text: "def"})
	args := tree.NewBranch(document.Branch{Construct: "args"}, []*document.Handle{abc, def})
	left := tree.NewLeaf(document.Leaf{Construct: "strn", Text: "abcdef"})
	right := tree.NewLeaf(document.Leaf{Construct: "strn", Text: "abcdef"})
	body := tree.NewBranch(document.Branch{Construct: "plus"}, []*document.Handle{left, right})
	return tree.NewBranch(document.Branch{Construct: "func"}, []*document.Handle{name, args, body})
}

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
	plusNotation := notation.Choice{
		A: notation.Cat(notation.Child{Index: 0}, punct(" + "), notation.Child{Index: 1}),
		B: notation.Cat(notation.Flush{Body: notation.Child{Index: 0}}, punct("+ "), notation.Child{Index: 1}),
	}

	argsNotation := notation.Choice{
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
	}

	funcNotation := notation.Choice{
		A: notation.Cat(
			word("func "), notation.Child{Index: 0},
			punct("("), notation.Child{Index: 1}, punct(") { "),
			notation.Child{Index: 2}, punct(" }"),
		),
		B: notation.Choice{
			A: notation.Cat(
				notation.Flush{Body: notation.Cat(word("func "), notation.Child{Index: 0}, punct("("), notation.Child{Index: 1}, punct(") {"))},
				notation.Flush{Body: notation.Cat(word("  "), notation.Child{Index: 2})},
				punct("}"),
			),
			B: notation.Cat(
				notation.Flush{Body: notation.Cat(word("func "), notation.Child{Index: 0}, punct("("))},
				notation.Flush{Body: notation.Cat(word("  "), notation.Child{Index: 1}, punct(")"))},
				notation.Flush{Body: punct("{")},
				notation.Flush{Body: notation.Cat(word("  "), notation.Child{Index: 2})},
				punct("}"),
			),
		},
	}

	idenNotation := notation.IfEmptyText{Then: notation.Cat(txt(), punct("·")), Else: txt()}
	strnNotation := notation.Cat(punct("'"), txt(), punct("'"))

	return schema.NotationSet{
		"func": funcNotation,
		"plus": plusNotation,
		"args": argsNotation,
		"iden": idenNotation,
		"strn": strnNotation,
	}
}
