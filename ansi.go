package ui

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable byte slice.
type escBuilder struct {
	buf []byte
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// resetStyle resets all attributes to default.
func (e *escBuilder) resetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// setStyle emits a reset followed by the style's colors.
func (e *escBuilder) setStyle(s Style) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	e.appendColor(s.Fg, true)
	e.appendColor(s.Bg, false)
	e.buf = append(e.buf, 'm')
}

// appendColor appends the SGR parameters for c: 30-37/90-97 (40-47/100-107)
// for the basic palette, 38;5 (48;5) for the rest of the 256 palette and
// 38;2 (48;2) for true color.
func (e *escBuilder) appendColor(c Color, fg bool) {
	base := 48
	if fg {
		base = 38
	}
	switch c.Type() {
	case ColorANSI:
		idx := int(c.r)
		e.buf = append(e.buf, ';')
		switch {
		case idx < 8:
			e.writeInt(base - 8 + idx)
		case idx < 16:
			e.writeInt(base + 52 + idx - 8)
		default:
			e.writeInt(base)
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(idx)
		}
	case ColorRGB:
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(c.r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.b))
	}
}

func (e *escBuilder) writeRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.buf = append(e.buf, buf[:n]...)
}

// ANSI renders the buffer as text with 24-bit SGR color sequences.
func (b *Buffer) ANSI() string {
	return b.ANSIProfile(ProfileTrueColor)
}

// ANSIProfile renders the buffer as text with SGR color sequences limited
// to profile, emitting a new sequence only when the style changes. A row
// that ends styled is followed by a reset.
func (b *Buffer) ANSIProfile(profile ColorProfile) string {
	e := &escBuilder{buf: make([]byte, 0, b.width*b.height*2)}
	for y := 0; y < b.height; y++ {
		cur := Style{}
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			style := profile.convertStyle(cell.Style)
			if !style.Equal(cur) {
				e.setStyle(style)
				cur = style
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			e.writeRune(r)
		}
		if !cur.Equal(Style{}) {
			e.resetStyle()
		}
		if y < b.height-1 {
			e.buf = append(e.buf, '\n')
		}
	}
	return string(e.buf)
}
