// Package sink implements the "screen sink" external collaborator from
// spec section 6: a writable surface with a current cursor position,
// style state, and a newline-to-column operation. Rendering goes
// exclusively through this interface; the layout engine (package layout)
// never writes to a terminal or buffer directly.
package sink

import "github.com/synless-go/synless/style"

// Sink is a writable surface addressed by a current cursor position.
// SetStyle changes the style applied to subsequent writes; WriteString
// writes text starting at the cursor and advances it; NewlineTo moves the
// cursor to the next row at the given column, matching the layout
// engine's Flush semantics (spec section 4.5's Rendering paragraph).
type Sink interface {
	SetStyle(s style.Style)
	WriteString(text string)
	NewlineTo(col int)
}
