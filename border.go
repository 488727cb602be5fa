package ui

import (
	"math"

	"github.com/grindlemire/go-ui/internal/layout"
)

// Border decorates a single child with a border, padding and background.
type Border struct {
	Base
	child       Element
	thickness   Edges
	padding     Edges
	background  Color
	borderColor Color
}

// NewBorder creates a Border around child (which may be nil).
func NewBorder(child Element, opts ...Option) (*Border, error) {
	b := &Border{}
	b.Init(b)
	b.allowOverflow = true
	if err := b.SetChild(child); err != nil {
		return nil, err
	}
	applyOptions(b, opts)
	return b, nil
}

// Child returns the decorated element.
func (b *Border) Child() Element { return b.child }

// SetChild replaces the decorated element. The previous child is detached.
func (b *Border) SetChild(child Element) error {
	if child == b.child {
		return nil
	}
	if child != nil {
		cb := child.base()
		if cb.parent != nil {
			return ErrAlreadyParented
		}
		for n := &b.Base; n != nil; n = parentBase(n) {
			if n == cb {
				return ErrCycle
			}
		}
	}
	if b.child != nil {
		b.child.base().parent = nil
	}
	b.child = child
	if child != nil {
		cb := child.base()
		cb.parent = b
		cb.measureDirty = true
		cb.arrangeDirty = true
	}
	b.InvalidateMeasure()
	return nil
}

// VisualChildren returns the child, if any.
func (b *Border) VisualChildren() []Element {
	if b.child == nil {
		return nil
	}
	return []Element{b.child}
}

// BorderThickness returns the border widths.
func (b *Border) BorderThickness() Edges { return b.thickness }

// SetBorderThickness sets the border widths.
func (b *Border) SetBorderThickness(e Edges) {
	if b.thickness == e {
		return
	}
	b.thickness = e
	b.InvalidateMeasure()
}

// Padding returns the space between border and child.
func (b *Border) Padding() Edges { return b.padding }

// SetPadding sets the space between border and child.
func (b *Border) SetPadding(e Edges) {
	if b.padding == e {
		return
	}
	b.padding = e
	b.InvalidateMeasure()
}

// Background returns the fill color.
func (b *Border) Background() Color { return b.background }

// SetBackground sets the fill color.
func (b *Border) SetBackground(c Color) { b.background = c }

// BorderColor returns the border color.
func (b *Border) BorderColor() Color { return b.borderColor }

// SetBorderColor sets the border color.
func (b *Border) SetBorderColor(c Color) { b.borderColor = c }

func (b *Border) chrome() Edges {
	return b.thickness.Add(b.padding)
}

// MeasureOverride measures the child inside the chrome.
func (b *Border) MeasureOverride(available Size) Size {
	chrome := b.chrome()
	if b.child == nil {
		return Size{Width: chrome.Horizontal(), Height: chrome.Vertical()}
	}
	return b.child.Measure(available.Deflate(chrome)).Inflate(chrome)
}

// ArrangeOverride arranges the child inside the chrome.
func (b *Border) ArrangeOverride(final Size) Size {
	if b.child != nil {
		inner := layout.RectFromSize(final).Inset(b.chrome())
		b.child.Arrange(inner, ArrangeOptions{})
	}
	return final
}

// Draw paints background and border, then the child.
func (b *Border) Draw(dc DrawingContext) {
	bounds := layout.RectFromSize(b.RenderSize())
	if !b.background.IsDefault() {
		dc.FillRect(bounds, b.background)
	}
	if !b.borderColor.IsDefault() && !b.thickness.IsZero() {
		// Thick borders stroke once per unit of the thinnest side.
		rings := math.Max(1, math.Min(math.Min(b.thickness.Top, b.thickness.Bottom), math.Min(b.thickness.Left, b.thickness.Right)))
		for i := 0.0; i < rings; i++ {
			dc.StrokeRect(bounds.Inset(layout.EdgeAll(i)), b.borderColor)
		}
	}
	Render(b.child, dc)
}
