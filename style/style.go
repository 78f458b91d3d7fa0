package style

// Emphasis is a bitmask of text decorations, mirroring the teacher's
// plain bool fields (style/domain/model/style.go's bold/italic/underline/
// strikethrough) collapsed into the single bitmask field the spec's Style
// record names.
type Emphasis uint8

const (
	Bold Emphasis = 1 << iota
	Italic
	Underline
	Strikethrough
)

// Has reports whether every bit in want is set in e.
func (e Emphasis) Has(want Emphasis) bool {
	return e&want == want
}

// Style is a record of (foreground color, background shade, emphasis bits,
// reversed bool), per spec section 4.7. Styles are plain values; there is
// no compositing operation; the innermost style in effect at render time
// simply replaces whatever the sink's current style was.
type Style struct {
	Foreground Color
	Background Shade
	Emphasis   Emphasis
	Reversed   bool
}

// Plain is the default, undecorated style.
func Plain() Style {
	return Style{}
}

// WithColor returns Plain styled with only a foreground color set, the
// common case for punctuation and keyword literals in a notation.
func WithColor(c Color) Style {
	return Style{Foreground: c}
}
