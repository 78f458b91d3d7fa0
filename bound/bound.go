// Package bound implements the bound algebra the layout engine uses to
// summarize a candidate layout's shape without building the layout itself:
// a triple of (width, indent, height) with composition rules lifted
// directly from the original implementation's `impl Lay for Bound`
// (original_source/pretty/src/layout/layout.rs), plus the Pareto-pruned
// BoundSet that keeps the candidate population for any one notation from
// growing combinatorially (spec section 4.4 and the "Choice explosion
// control" redesign flag).
package bound

import "unicode/utf8"

// Bound summarizes a candidate layout's shape: the width it occupies, the
// column its last line ends at (its "indent", which is what a sibling
// concatenated after it is offset by), and how many newlines it contains.
//
// Width is counted in Unicode code points, not display cells or grapheme
// clusters — an explicit invariant carried over unchanged from the
// original implementation's `s.chars().count()`. Display-width-aware
// rendering is a sink concern (see package sink), not a bound concern.
type Bound struct {
	Width  int
	Indent int
	Height int
}

// Empty is the bound of the empty layout.
func Empty() Bound {
	return Bound{}
}

// Literal is the bound of a fixed string, its width its code-point count.
func Literal(s string) Bound {
	w := utf8.RuneCountInString(s)
	return Bound{Width: w, Indent: w, Height: 0}
}

// Flush is the bound of a and then forcing a newline: the indent resets to
// zero and the height grows by one.
func (a Bound) Flush() Bound {
	return Bound{Width: a.Width, Indent: 0, Height: a.Height + 1}
}

// Concat is the bound of placing b immediately after a.
func (a Bound) Concat(b Bound) Bound {
	width := a.Width
	if a.Indent+b.Width > width {
		width = a.Indent + b.Width
	}
	return Bound{
		Width:  width,
		Height: a.Height + b.Height,
		Indent: a.Indent + b.Indent,
	}
}

// Dominates reports whether a is at least as good as b on every axis the
// BoundSet prunes on: a candidate that is no wider and no taller than
// another is always at least as useful.
func (a Bound) Dominates(b Bound) bool {
	return a.Width <= b.Width && a.Height <= b.Height
}
