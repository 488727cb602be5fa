package ui

import (
	"strings"

	"github.com/grindlemire/go-ui/internal/layout"
)

// CellRect is an integer rectangle of buffer cells.
type CellRect struct {
	X, Y, Width, Height int
}

// Right returns the column just past the rectangle.
func (r CellRect) Right() int { return r.X + r.Width }

// Bottom returns the row just past the rectangle.
func (r CellRect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the rectangle covers no cells.
func (r CellRect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the overlap of two rectangles.
func (r CellRect) Intersect(o CellRect) CellRect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return CellRect{}
	}
	return CellRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether cell (x, y) is inside the rectangle.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// snapRect converts a layout rectangle to cells by rounding its edges.
func snapRect(r Rect) CellRect {
	x0, y0 := layout.Round(r.X), layout.Round(r.Y)
	x1, y1 := layout.Round(r.Right()), layout.Round(r.Bottom())
	return CellRect{X: x0, Y: y0, Width: max(0, x1-x0), Height: max(0, y1-y0)}
}

// Buffer is a 2D grid of cells that a CellContext draws into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given dimensions filled with blank cells.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds.
func (b *Buffer) Rect() CellRect {
	return CellRect{Width: b.width, Height: b.height}
}

// idx converts (x, y) coordinates to a flat index, or -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or an empty Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// SetRune sets a rune at (x, y), keeping wide characters consistent: a
// wide rune claims the next cell, and any wide character it overlaps is
// cleared.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}
	width := RuneWidth(r)
	cur := b.Cell(x, y)
	if cur.IsContinuation() {
		b.clearWideCharAt(x, y)
	}
	if cur.Width == 2 {
		b.clearWideCharAt(x, y)
	}
	if width == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, NewCell(' ', style))
			return
		}
		if next := b.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}
	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Style: style})
	}
}

// clearWideCharAt blanks the wide character covering (x, y), keeping its
// colors.
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	switch {
	case cell.IsContinuation():
		b.SetCell(x-1, y, NewCell(' ', b.Cell(x-1, y).Style))
		b.SetCell(x, y, NewCell(' ', cell.Style))
	case cell.Width == 2:
		b.SetCell(x, y, NewCell(' ', cell.Style))
		b.SetCell(x+1, y, NewCell(' ', b.Cell(x+1, y).Style))
	}
}

// SetStringClipped writes s starting at (x, y), skipping characters
// outside clip. Wide characters that straddle the clip edge are dropped.
// It returns the display width written.
func (b *Buffer) SetStringClipped(x, y int, s string, style func(Cell) Style, clip CellRect) int {
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	cx := x
	for _, r := range s {
		w := RuneWidth(r)
		if cx >= clip.Right() {
			break
		}
		if cx >= clip.X && cx+w <= clip.Right() {
			b.SetRune(cx, y, r, style(b.Cell(cx, y)))
			written += w
		}
		cx += w
	}
	return written
}

// Fill sets every cell in rect to r, styled by style applied to the
// previous cell.
func (b *Buffer) Fill(rect CellRect, r rune, style func(Cell) Style) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, style(b.Cell(x, y)))
		}
	}
}

// Clear resets every cell to a blank with default colors.
func (b *Buffer) Clear() {
	blank := NewCell(' ', Style{})
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// String renders the buffer as text, one line per row. Continuation cells
// are skipped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		b.writeRow(&sb, y)
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	var sb strings.Builder
	var line strings.Builder
	for y := 0; y < b.height; y++ {
		line.Reset()
		b.writeRow(&line, y)
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Buffer) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < b.width; x++ {
		cell := b.cells[y*b.width+x]
		switch {
		case cell.IsContinuation():
		case cell.Rune == 0:
			sb.WriteByte(' ')
		default:
			sb.WriteRune(cell.Rune)
		}
	}
}
