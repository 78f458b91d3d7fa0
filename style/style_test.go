package style_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-go/synless/style"
)

func TestPlainIsZeroValue(t *testing.T) {
	require.Equal(t, style.Style{}, style.Plain())
}

func TestWithColorSetsOnlyForeground(t *testing.T) {
	s := style.WithColor(style.Base0B)
	require.Equal(t, style.Base0B, s.Foreground)
	require.Equal(t, style.ShadeBase00, s.Background)
	require.False(t, s.Reversed)
}

func TestEmphasisHasIsABitmaskCheck(t *testing.T) {
	e := style.Bold | style.Underline
	require.True(t, e.Has(style.Bold))
	require.True(t, e.Has(style.Underline))
	require.True(t, e.Has(style.Bold|style.Underline))
	require.False(t, e.Has(style.Italic))
	require.False(t, e.Has(style.Strikethrough))
}

func TestShadeIsRestrictedToFirstEightColors(t *testing.T) {
	require.Equal(t, style.Black, style.ShadeBase00)
	require.Equal(t, style.White, style.ShadeBase07)
	require.Equal(t, "Base00", style.Black.String())
	require.Equal(t, "Base07", style.White.String())
}

func TestColorRGB255RoundTripsReferencePalette(t *testing.T) {
	r, g, b := style.Base08.RGB255()
	require.Equal(t, uint8(0xab), r)
	require.Equal(t, uint8(0x46), g)
	require.Equal(t, uint8(0x42), b)
}
