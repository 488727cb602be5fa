package ui

import "strings"

// CellContext is a DrawingContext that draws into a Buffer. One layout
// unit is one cell; rectangles are snapped to whole cells by rounding
// their edges.
type CellContext struct {
	buf     *Buffer
	border  BorderStyle
	offsets []Point
	clips   []CellRect
}

// NewCellContext creates a context drawing into buf.
func NewCellContext(buf *Buffer) *CellContext {
	return &CellContext{buf: buf}
}

// Buffer returns the target buffer.
func (c *CellContext) Buffer() *Buffer { return c.buf }

// SetBorderStyle selects the characters StrokeRect draws with.
func (c *CellContext) SetBorderStyle(s BorderStyle) { c.border = s }

func (c *CellContext) offset() Point {
	if len(c.offsets) == 0 {
		return Point{}
	}
	return c.offsets[len(c.offsets)-1]
}

func (c *CellContext) clip() CellRect {
	if len(c.clips) == 0 {
		return c.buf.Rect()
	}
	return c.clips[len(c.clips)-1]
}

// toCells converts a local rectangle to buffer cells.
func (c *CellContext) toCells(r Rect) CellRect {
	o := c.offset()
	return snapRect(r.Translate(o.X, o.Y))
}

// PushOffset moves the origin by p.
func (c *CellContext) PushOffset(p Point) {
	c.offsets = append(c.offsets, c.offset().Add(p))
}

// PopOffset restores the previous origin.
func (c *CellContext) PopOffset() {
	if len(c.offsets) > 0 {
		c.offsets = c.offsets[:len(c.offsets)-1]
	}
}

// PushClip restricts drawing to r intersected with the current clip.
func (c *CellContext) PushClip(r Rect) {
	c.clips = append(c.clips, c.toCells(r).Intersect(c.clip()))
}

// PopClip restores the previous clip.
func (c *CellContext) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

// FillRect paints the background of the cells in r.
func (c *CellContext) FillRect(r Rect, col Color) {
	rect := c.toCells(r).Intersect(c.clip())
	c.buf.Fill(rect, ' ', func(prev Cell) Style {
		return Style{Fg: prev.Style.Fg, Bg: col}
	})
}

// StrokeRect draws the outline of r with box-drawing characters. A
// rectangle one cell high or wide becomes a line.
func (c *CellContext) StrokeRect(r Rect, col Color) {
	rect := c.toCells(r)
	if rect.IsEmpty() {
		return
	}
	clip := c.clip()
	ch := c.border.Chars()
	put := func(x, y int, ru rune) {
		if clip.Contains(x, y) {
			c.buf.SetRune(x, y, ru, Style{Fg: col, Bg: c.buf.Cell(x, y).Style.Bg})
		}
	}
	x0, y0, x1, y1 := rect.X, rect.Y, rect.Right()-1, rect.Bottom()-1
	switch {
	case rect.Height == 1:
		for x := x0; x <= x1; x++ {
			put(x, y0, ch.Top)
		}
	case rect.Width == 1:
		for y := y0; y <= y1; y++ {
			put(x0, y, ch.Left)
		}
	default:
		for x := x0 + 1; x < x1; x++ {
			put(x, y0, ch.Top)
			put(x, y1, ch.Bottom)
		}
		for y := y0 + 1; y < y1; y++ {
			put(x0, y, ch.Left)
			put(x1, y, ch.Right)
		}
		put(x0, y0, ch.TopLeft)
		put(x1, y0, ch.TopRight)
		put(x0, y1, ch.BottomLeft)
		put(x1, y1, ch.BottomRight)
	}
}

// DrawText writes text line by line from the top-left of r, clipped to r.
func (c *CellContext) DrawText(r Rect, text string, col Color) {
	rect := c.toCells(r)
	clip := rect.Intersect(c.clip())
	if clip.IsEmpty() {
		return
	}
	style := func(prev Cell) Style {
		return Style{Fg: col, Bg: prev.Style.Bg}
	}
	for i, line := range strings.Split(text, "\n") {
		c.buf.SetStringClipped(rect.X, rect.Y+i, line, style, clip)
	}
}
