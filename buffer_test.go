package ui

import (
	"testing"
)

func TestNewBuffer(t *testing.T) {
	type tc struct {
		width, height int
		wantW, wantH  int
	}

	tests := map[string]tc{
		"standard":        {width: 10, height: 5, wantW: 10, wantH: 5},
		"empty":           {width: 0, height: 0, wantW: 0, wantH: 0},
		"negative clamps": {width: -3, height: 2, wantW: 0, wantH: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(tt.width, tt.height)
			if b.Width() != tt.wantW || b.Height() != tt.wantH {
				t.Errorf("NewBuffer(%d, %d) = %dx%d, want %dx%d",
					tt.width, tt.height, b.Width(), b.Height(), tt.wantW, tt.wantH)
			}
			for y := 0; y < b.Height(); y++ {
				for x := 0; x < b.Width(); x++ {
					if c := b.Cell(x, y); c.Rune != ' ' || c.Width != 1 {
						t.Fatalf("Cell(%d, %d) = %+v, want blank", x, y, c)
					}
				}
			}
		})
	}
}

func TestBuffer_SetRune_ASCII(t *testing.T) {
	b := NewBuffer(10, 5)
	style := Style{Fg: Red}

	b.SetRune(3, 2, 'A', style)

	cell := b.Cell(3, 2)
	if cell.Rune != 'A' {
		t.Errorf("Cell(3, 2).Rune = %q, want 'A'", cell.Rune)
	}
	if !cell.Style.Equal(style) {
		t.Error("Cell(3, 2) has wrong style")
	}
	if cell.Width != 1 {
		t.Errorf("Cell(3, 2).Width = %d, want 1", cell.Width)
	}

	neighbors := []struct{ x, y int }{{2, 2}, {4, 2}, {3, 1}, {3, 3}}
	for _, n := range neighbors {
		if c := b.Cell(n.x, n.y); c.Rune != ' ' {
			t.Errorf("Cell(%d, %d).Rune = %q, want ' '", n.x, n.y, c.Rune)
		}
	}
}

func TestBuffer_SetRune_WideChar(t *testing.T) {
	b := NewBuffer(10, 5)

	b.SetRune(3, 2, '你', Style{Fg: Blue})

	if cell := b.Cell(3, 2); cell.Rune != '你' || cell.Width != 2 {
		t.Errorf("Cell(3, 2) = %+v, want wide '你'", cell)
	}
	if !b.Cell(4, 2).IsContinuation() {
		t.Error("Cell(4, 2) should be a continuation cell")
	}
}

func TestBuffer_SetRune_WideCharOverwrites(t *testing.T) {
	type tc struct {
		x    int
		r    rune
		want string
	}

	// Each case starts from "好" at column 2 of a 6-wide row.
	tests := map[string]tc{
		"overwrite lead cell":         {x: 2, r: 'a', want: "  a   "},
		"overwrite continuation cell": {x: 3, r: 'b', want: "   b  "},
		"wide char overlapping lead":  {x: 1, r: '你', want: " 你   "},
		"wide char at last column":    {x: 5, r: '你', want: "  好  "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(6, 1)
			b.SetRune(2, 0, '好', Style{})
			b.SetRune(tt.x, 0, tt.r, Style{})
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuffer_SetStringClipped(t *testing.T) {
	plain := func(Cell) Style { return Style{} }

	type tc struct {
		x       int
		s       string
		clip    CellRect
		want    string
		written int
	}

	tests := map[string]tc{
		"fits": {
			x: 1, s: "abc", clip: CellRect{Width: 8, Height: 1},
			want: " abc    ", written: 3,
		},
		"truncated at right": {
			x: 5, s: "abcdef", clip: CellRect{Width: 8, Height: 1},
			want: "     abc", written: 3,
		},
		"clipped on the left": {
			x: -2, s: "abcdef", clip: CellRect{Width: 8, Height: 1},
			want: "cdef    ", written: 4,
		},
		"inner clip": {
			x: 0, s: "abcdefgh", clip: CellRect{X: 2, Width: 3, Height: 1},
			want: "  cde   ", written: 3,
		},
		"wide char straddling edge dropped": {
			x: 0, s: "ab你", clip: CellRect{Width: 3, Height: 1},
			want: "ab      ", written: 2,
		},
		"row outside clip": {
			x: 0, s: "abc", clip: CellRect{Y: 1, Width: 8, Height: 1},
			want: "        ", written: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(8, 1)
			n := b.SetStringClipped(tt.x, 0, tt.s, plain, tt.clip)
			if n != tt.written {
				t.Errorf("written = %d, want %d", n, tt.written)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuffer_Fill(t *testing.T) {
	b := NewBuffer(4, 3)
	b.SetRune(1, 1, 'x', Style{Fg: Red})

	b.Fill(CellRect{X: 1, Y: 1, Width: 10, Height: 10}, '.', func(prev Cell) Style {
		return Style{Fg: prev.Style.Fg, Bg: Blue}
	})

	want := "    \n ...\n ..."
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c := b.Cell(1, 1); !c.Style.Fg.Equal(Red) || !c.Style.Bg.Equal(Blue) {
		t.Errorf("Cell(1, 1).Style = %+v, want fg kept and bg blue", c.Style)
	}
	if c := b.Cell(0, 0); !c.Style.Bg.IsDefault() {
		t.Error("Cell(0, 0) outside the fill should keep the default background")
	}
}

func TestBuffer_ClearAndTrim(t *testing.T) {
	b := NewBuffer(5, 2)
	b.SetStringClipped(0, 0, "hi", func(Cell) Style { return Style{} }, b.Rect())

	if got, want := b.StringTrimmed(), "hi\n"; got != want {
		t.Errorf("StringTrimmed() = %q, want %q", got, want)
	}

	b.Clear()
	if got, want := b.String(), "     \n     "; got != want {
		t.Errorf("String() after Clear = %q, want %q", got, want)
	}
}

func TestBuffer_OutOfBounds(t *testing.T) {
	b := NewBuffer(3, 3)
	b.SetCell(-1, 0, NewCell('x', Style{}))
	b.SetCell(3, 0, NewCell('x', Style{}))
	b.SetRune(0, 5, 'x', Style{})

	if got, want := b.String(), "   \n   \n   "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c := b.Cell(10, 10); c != (Cell{}) {
		t.Errorf("Cell out of bounds = %+v, want zero", c)
	}
}

func TestCellRect_Intersect(t *testing.T) {
	type tc struct {
		a, b CellRect
		want CellRect
	}

	tests := map[string]tc{
		"overlap":   {a: CellRect{0, 0, 4, 4}, b: CellRect{2, 2, 4, 4}, want: CellRect{2, 2, 2, 2}},
		"contained": {a: CellRect{0, 0, 10, 10}, b: CellRect{2, 3, 1, 1}, want: CellRect{2, 3, 1, 1}},
		"disjoint":  {a: CellRect{0, 0, 2, 2}, b: CellRect{5, 5, 2, 2}, want: CellRect{}},
		"touching":  {a: CellRect{0, 0, 2, 2}, b: CellRect{2, 0, 2, 2}, want: CellRect{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSnapRect(t *testing.T) {
	type tc struct {
		r    Rect
		want CellRect
	}

	tests := map[string]tc{
		"integral":      {r: NewRect(1, 2, 3, 4), want: CellRect{1, 2, 3, 4}},
		"rounds edges":  {r: NewRect(0.4, 0.6, 2.2, 1.9), want: CellRect{0, 1, 3, 2}},
		"negative size": {r: NewRect(2, 2, -1, 0), want: CellRect{2, 2, 0, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := snapRect(tt.r); got != tt.want {
				t.Errorf("snapRect(%+v) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}
