package ui

import (
	"strings"

	"github.com/grindlemire/go-ui/internal/layout"
	"github.com/mattn/go-runewidth"
)

// Box is a leaf element: an optional filled and outlined rectangle with
// optional text. Its content size is the text extent (one unit per
// terminal cell, one line per row), or zero without text.
type Box struct {
	Base
	text        string
	background  Color
	foreground  Color
	borderColor Color
}

// NewBox creates a Box with the given text and options.
func NewBox(text string, opts ...Option) *Box {
	b := &Box{text: text}
	b.Init(b)
	applyOptions(b, opts)
	return b
}

// Text returns the box text.
func (b *Box) Text() string { return b.text }

// SetText replaces the text and invalidates measure.
func (b *Box) SetText(s string) {
	if b.text == s {
		return
	}
	b.text = s
	b.InvalidateMeasure()
}

// Background returns the fill color.
func (b *Box) Background() Color { return b.background }

// SetBackground sets the fill color.
func (b *Box) SetBackground(c Color) { b.background = c }

// Foreground returns the text color.
func (b *Box) Foreground() Color { return b.foreground }

// SetForeground sets the text color.
func (b *Box) SetForeground(c Color) { b.foreground = c }

// BorderColor returns the outline color (default means no outline).
func (b *Box) BorderColor() Color { return b.borderColor }

// SetBorderColor sets the outline color. An outline takes one unit on each
// side of the text.
func (b *Box) SetBorderColor(c Color) {
	if b.borderColor == c {
		return
	}
	b.borderColor = c
	b.InvalidateMeasure()
}

func (b *Box) chrome() Edges {
	if b.borderColor.IsDefault() {
		return Edges{}
	}
	return layout.EdgeAll(1)
}

// MeasureOverride returns the text extent plus the outline.
func (b *Box) MeasureOverride(Size) Size {
	return TextExtent(b.text).Inflate(b.chrome())
}

// Draw paints the background, outline and text.
func (b *Box) Draw(dc DrawingContext) {
	bounds := layout.RectFromSize(b.RenderSize())
	if !b.background.IsDefault() {
		dc.FillRect(bounds, b.background)
	}
	if !b.borderColor.IsDefault() {
		dc.StrokeRect(bounds, b.borderColor)
	}
	if b.text != "" {
		dc.DrawText(bounds.Inset(b.chrome()), b.text, b.foreground)
	}
}

// TextExtent returns the size of s in terminal cells: the display width of
// its widest line by the number of lines.
func TextExtent(s string) Size {
	if s == "" {
		return Size{}
	}
	lines := strings.Split(s, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return Size{Width: float64(widest), Height: float64(len(lines))}
}
