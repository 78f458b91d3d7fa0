// Package style implements the spec's Style record: a foreground color, a
// background shade, a set of emphasis bits, and a reversed flag. Styles are
// plain immutable values; compositing is not defined here, matching the
// spec's "the innermost style wins at each character" rule — callers simply
// overwrite the sink's current style at each region boundary (see package
// sink).
//
// Color and Shade follow the base16 palette the original implementation's
// notation fixtures reference directly (Color::Base0A, Shade::black(), in
// original_source/language/src/notationset.rs): sixteen named colors
// Base00..Base0F, of which the first eight double as background shades.
// Representing them as a small closed enum, rather than the teacher's
// freeform RGB value object (style/internal/domain/value/color.go), mirrors
// that fixed palette; RGB255 below gives each entry a concrete reference
// color that a terminal sink could use to emit real escape codes.
package style

import "fmt"

// Color is one of the sixteen base16 palette slots usable as a foreground.
type Color uint8

const (
	Base00 Color = iota
	Base01
	Base02
	Base03
	Base04
	Base05
	Base06
	Base07
	Base08
	Base09
	Base0A
	Base0B
	Base0C
	Base0D
	Base0E
	Base0F
)

var colorNames = [...]string{
	"Base00", "Base01", "Base02", "Base03",
	"Base04", "Base05", "Base06", "Base07",
	"Base08", "Base09", "Base0A", "Base0B",
	"Base0C", "Base0D", "Base0E", "Base0F",
}

// reference RGB values for the default base16 scheme.
var colorRGB = [...][3]uint8{
	{0x18, 0x18, 0x18}, {0x28, 0x28, 0x28}, {0x38, 0x38, 0x38}, {0x48, 0x48, 0x48},
	{0xb8, 0xb8, 0xb8}, {0xd8, 0xd8, 0xd8}, {0xe8, 0xe8, 0xe8}, {0xf8, 0xf8, 0xf8},
	{0xab, 0x46, 0x42}, {0xdc, 0x96, 0x56}, {0xf7, 0xca, 0x88}, {0xa1, 0xb5, 0x6c},
	{0x86, 0xc1, 0xb9}, {0x7c, 0xaf, 0xc2}, {0xba, 0x8b, 0xaf}, {0xa1, 0x69, 0x46},
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// RGB255 returns this color's reference RGB value.
func (c Color) RGB255() (r, g, b uint8) {
	if int(c) >= len(colorRGB) {
		return 0, 0, 0
	}
	v := colorRGB[c]
	return v[0], v[1], v[2]
}
