package bound_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-go/synless/bound"
)

// TestBoundConstruction mirrors
// original_source/pretty/src/layout/mod.rs's test_bound_construction,
// composing literal("abc").vert(literal("Schrödinger").horz(...)) via the
// Flush/Concat formulas this module exposes as methods instead of
// operators.
func TestBoundConstruction(t *testing.T) {
	inner := bound.Literal("I").Concat(bound.Literal(" am indented")).Flush().Concat(bound.Literal("me too"))
	actual := bound.Literal("abc").Flush().Concat(bound.Literal("Schrödinger").Concat(inner))

	require.Equal(t, bound.Bound{Width: 24, Indent: 17, Height: 2}, actual)
}

func TestLiteralCountsCodePointsNotBytes(t *testing.T) {
	b := bound.Literal("Schrödinger")
	require.Equal(t, 11, b.Width)
	require.Equal(t, 11, b.Indent)
	require.Equal(t, 0, b.Height)
}

func TestEmptyIsIdentityForConcat(t *testing.T) {
	b := bound.Literal("abc").Flush().Concat(bound.Literal("de"))
	require.Equal(t, b, bound.Empty().Concat(b))
	require.Equal(t, b, b.Concat(bound.Empty()))
}

func TestConcatIsAssociative(t *testing.T) {
	a := bound.Literal("abc")
	b := bound.Literal("de").Flush()
	c := bound.Literal("fghi")

	left := a.Concat(b).Concat(c)
	right := a.Concat(b.Concat(c))
	require.Equal(t, left, right)
}

func TestConcatIndentAlwaysSums(t *testing.T) {
	a := bound.Literal("abc")
	flat := bound.Literal("de")
	multiline := bound.Literal("de").Flush()

	require.Equal(t, a.Indent+flat.Indent, a.Concat(flat).Indent)
	require.Equal(t, a.Indent+multiline.Indent, a.Concat(multiline).Indent)
}

func TestDominates(t *testing.T) {
	narrow := bound.Bound{Width: 10, Height: 1}
	wide := bound.Bound{Width: 20, Height: 1}
	require.True(t, narrow.Dominates(wide))
	require.False(t, wide.Dominates(narrow))

	tall := bound.Bound{Width: 10, Height: 2}
	require.False(t, tall.Dominates(narrow))
	require.True(t, narrow.Dominates(tall))
}
