package ui

import "github.com/mattn/go-runewidth"

// Style is the foreground and background color of a cell. The zero value
// uses the terminal defaults.
type Style struct {
	Fg Color
	Bg Color
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg)
}

// Cell represents a single character cell of a Buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Colors
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// IsContinuation returns true if this cell is the second half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// RuneWidth returns the display width of a rune in terminal cells, at
// least 1 and at most 2.
func RuneWidth(r rune) int {
	return min(max(runewidth.RuneWidth(r), 1), 2)
}
