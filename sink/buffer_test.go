package sink_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-go/synless/sink"
	"github.com/synless-go/synless/style"
)

func TestWriteStringThenNewline(t *testing.T) {
	b := sink.NewBufferSink()
	b.SetStyle(style.WithColor(style.Base0B))
	b.WriteString("func foo(")
	b.NewlineTo(2)
	b.WriteString("abc, def")

	require.Equal(t, "func foo(\n  abc, def", b.String())
}

func TestWriteStringAdvancesPastExistingContent(t *testing.T) {
	b := sink.NewBufferSink()
	b.WriteString("abc")
	b.NewlineTo(0)
	b.WriteString("def")
	b.NewlineTo(0)
	b.WriteString("ghi")

	require.Equal(t, "abc\ndef\nghi", b.String())
}

func TestRowsExposesPerCellStyle(t *testing.T) {
	b := sink.NewBufferSink()
	b.SetStyle(style.WithColor(style.Base09))
	b.WriteString("x")

	rows := b.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, 'x', rows[0][0].Rune)
	require.Equal(t, style.Base09, rows[0][0].Style.Foreground)
}
