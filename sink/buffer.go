package sink

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/synless-go/synless/style"
)

// Cell is one terminal cell: a grapheme cluster's leading rune, its
// display width, and the style it was written with. Modeled on the
// teacher's render/domain/model Cell (leading rune + width + style)
// rather than a single rune per cell, so combining marks and wide
// characters don't corrupt neighboring cells.
type Cell struct {
	Rune  rune
	Width int
	Style style.Style
}

// BufferSink is a reference Sink implementation backed by an in-memory
// grid of Cells, grown as needed. It is the document-layout analogue of
// the teacher's render/domain/model.Buffer: grapheme-cluster-aware
// writes via rivo/uniseg, one resizable buffer instead of a fixed
// terminal-sized one (a rendered document's height isn't known in
// advance the way a terminal's is).
type BufferSink struct {
	rows     [][]Cell
	row, col int
	curStyle style.Style
}

// NewBufferSink returns an empty BufferSink positioned at (0, 0).
func NewBufferSink() *BufferSink {
	return &BufferSink{rows: [][]Cell{{}}}
}

// SetStyle implements Sink.
func (b *BufferSink) SetStyle(s style.Style) {
	b.curStyle = s
}

// WriteString implements Sink: it writes text grapheme cluster by
// grapheme cluster starting at the current cursor, extending the current
// row as needed, and advances the cursor by each cluster's display width.
func (b *BufferSink) WriteString(text string) {
	b.ensureRow(b.row)
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			continue
		}
		width := uniseg.StringWidth(cluster)
		if width < 1 {
			width = 1
		}
		b.writeCell(Cell{Rune: runes[0], Width: width, Style: b.curStyle})
		b.col += width
	}
}

// NewlineTo implements Sink: it moves to the next row, at column col.
func (b *BufferSink) NewlineTo(col int) {
	b.row++
	b.col = col
	b.ensureRow(b.row)
}

func (b *BufferSink) ensureRow(row int) {
	for row >= len(b.rows) {
		b.rows = append(b.rows, []Cell{})
	}
}

func (b *BufferSink) writeCell(c Cell) {
	row := b.rows[b.row]
	for b.col >= len(row) {
		row = append(row, Cell{Rune: ' ', Width: 1})
	}
	row[b.col] = c
	b.rows[b.row] = row
}

// String renders the buffer's contents as plain text, one line per row,
// ignoring style — useful for tests and the demo CLI.
func (b *BufferSink) String() string {
	var out strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			out.WriteByte('\n')
		}
		for _, c := range row {
			if c.Rune == 0 {
				out.WriteByte(' ')
				continue
			}
			out.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(out.String(), " \n")
}

// Rows exposes the raw cell grid, e.g. for style-aware rendering by a
// terminal frontend.
func (b *BufferSink) Rows() [][]Cell {
	out := make([][]Cell, len(b.rows))
	for i, row := range b.rows {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}
