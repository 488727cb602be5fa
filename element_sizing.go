package ui

import "github.com/grindlemire/go-ui/internal/layout"

// Width returns the explicit width, or NaN when the width is automatic.
func (b *Base) Width() float64 { return b.width }

// SetWidth sets an explicit width. NaN restores automatic sizing.
func (b *Base) SetWidth(w float64) {
	if sameFloat(b.width, w) {
		return
	}
	b.width = w
	b.InvalidateMeasure()
}

// Height returns the explicit height, or NaN when the height is automatic.
func (b *Base) Height() float64 { return b.height }

// SetHeight sets an explicit height. NaN restores automatic sizing.
func (b *Base) SetHeight(h float64) {
	if sameFloat(b.height, h) {
		return
	}
	b.height = h
	b.InvalidateMeasure()
}

// MinWidth returns the minimum width.
func (b *Base) MinWidth() float64 { return b.minWidth }

// SetMinWidth sets the minimum width.
func (b *Base) SetMinWidth(v float64) {
	if b.minWidth == v {
		return
	}
	b.minWidth = v
	b.InvalidateMeasure()
}

// MinHeight returns the minimum height.
func (b *Base) MinHeight() float64 { return b.minHeight }

// SetMinHeight sets the minimum height.
func (b *Base) SetMinHeight(v float64) {
	if b.minHeight == v {
		return
	}
	b.minHeight = v
	b.InvalidateMeasure()
}

// MaxWidth returns the maximum width (+Inf when unbounded).
func (b *Base) MaxWidth() float64 { return b.maxWidth }

// SetMaxWidth sets the maximum width.
func (b *Base) SetMaxWidth(v float64) {
	if b.maxWidth == v {
		return
	}
	b.maxWidth = v
	b.InvalidateMeasure()
}

// MaxHeight returns the maximum height (+Inf when unbounded).
func (b *Base) MaxHeight() float64 { return b.maxHeight }

// SetMaxHeight sets the maximum height.
func (b *Base) SetMaxHeight(v float64) {
	if b.maxHeight == v {
		return
	}
	b.maxHeight = v
	b.InvalidateMeasure()
}

// Margin returns the outer spacing.
func (b *Base) Margin() Edges { return b.margin }

// SetMargin sets the outer spacing.
func (b *Base) SetMargin(m Edges) {
	if b.margin == m {
		return
	}
	b.margin = m
	b.InvalidateMeasure()
}

// HorizontalAlignment returns the horizontal placement inside the arrange slot.
func (b *Base) HorizontalAlignment() Alignment { return b.hAlign }

// SetHorizontalAlignment sets the horizontal placement inside the arrange slot.
func (b *Base) SetHorizontalAlignment(a Alignment) {
	if b.hAlign == a {
		return
	}
	b.hAlign = a
	b.InvalidateArrange()
}

// VerticalAlignment returns the vertical placement inside the arrange slot.
func (b *Base) VerticalAlignment() Alignment { return b.vAlign }

// SetVerticalAlignment sets the vertical placement inside the arrange slot.
func (b *Base) SetVerticalAlignment(a Alignment) {
	if b.vAlign == a {
		return
	}
	b.vAlign = a
	b.InvalidateArrange()
}

// Visibility returns whether the element is drawn and takes space.
func (b *Base) Visibility() Visibility { return b.visibility }

// SetVisibility changes visibility. Switching to or from Collapsed changes
// layout; Hidden only affects drawing.
func (b *Base) SetVisibility(v Visibility) {
	if b.visibility == v {
		return
	}
	old := b.visibility
	b.visibility = v
	if old == Collapsed || v == Collapsed {
		b.InvalidateMeasure()
	}
}

func sameFloat(a, b float64) bool {
	return layout.SameFloat(a, b)
}
