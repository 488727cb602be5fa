package ui

// Option configures an Element at construction.
type Option func(Element)

func applyOptions(e Element, opts []Option) {
	for _, opt := range opts {
		opt(e)
	}
}

// --- Sizing Options ---

// WithWidth sets an explicit width.
func WithWidth(w float64) Option {
	return func(e Element) {
		e.base().SetWidth(w)
	}
}

// WithHeight sets an explicit height.
func WithHeight(h float64) Option {
	return func(e Element) {
		e.base().SetHeight(h)
	}
}

// WithSize sets both width and height.
func WithSize(w, h float64) Option {
	return func(e Element) {
		b := e.base()
		b.SetWidth(w)
		b.SetHeight(h)
	}
}

// WithMinSize sets the minimum width and height.
func WithMinSize(w, h float64) Option {
	return func(e Element) {
		b := e.base()
		b.SetMinWidth(w)
		b.SetMinHeight(h)
	}
}

// WithMaxSize sets the maximum width and height.
func WithMaxSize(w, h float64) Option {
	return func(e Element) {
		b := e.base()
		b.SetMaxWidth(w)
		b.SetMaxHeight(h)
	}
}

// WithMargin sets the same margin on all sides.
func WithMargin(n float64) Option {
	return func(e Element) {
		e.base().SetMargin(EdgeAll(n))
	}
}

// WithMarginTRBL sets individual margins for each side.
func WithMarginTRBL(top, right, bottom, left float64) Option {
	return func(e Element) {
		e.base().SetMargin(EdgeTRBL(top, right, bottom, left))
	}
}

// WithAlignment sets the horizontal and vertical alignment.
func WithAlignment(h, v Alignment) Option {
	return func(e Element) {
		b := e.base()
		b.SetHorizontalAlignment(h)
		b.SetVerticalAlignment(v)
	}
}

// WithVisibility sets the visibility.
func WithVisibility(v Visibility) Option {
	return func(e Element) {
		e.base().SetVisibility(v)
	}
}

// WithName sets the debug name.
func WithName(name string) Option {
	return func(e Element) {
		e.base().SetName(name)
	}
}

// --- Placement Options ---

// WithCell places the element in a grid cell.
func WithCell(row, col int) Option {
	return func(e Element) {
		SetRow(e, row)
		SetColumn(e, col)
	}
}

// WithSpan sets how many rows and columns the element spans.
func WithSpan(rows, cols int) Option {
	return func(e Element) {
		SetRowSpan(e, rows)
		SetColumnSpan(e, cols)
	}
}

// WithDock docks the element to an edge of its DockPanel.
func WithDock(d Dock) Option {
	return func(e Element) {
		SetDock(e, d)
	}
}

// WithCanvasPosition sets the Canvas offsets. Pass NaN to leave a side unset.
func WithCanvasPosition(left, top, right, bottom float64) Option {
	return func(e Element) {
		SetLeft(e, left)
		SetTop(e, top)
		SetRight(e, right)
		SetBottom(e, bottom)
	}
}

// --- Visual Options ---

// WithBackground sets the fill color of panels, boxes and borders.
func WithBackground(c Color) Option {
	return func(e Element) {
		if bg, ok := e.(interface{ SetBackground(Color) }); ok {
			bg.SetBackground(c)
		}
	}
}

// WithForeground sets the text color of a Box.
func WithForeground(c Color) Option {
	return func(e Element) {
		if b, ok := e.(*Box); ok {
			b.SetForeground(c)
		}
	}
}

// WithBorderColor sets the outline color of a Box or Border.
func WithBorderColor(c Color) Option {
	return func(e Element) {
		if bc, ok := e.(interface{ SetBorderColor(Color) }); ok {
			bc.SetBorderColor(c)
		}
	}
}

// WithBorderThickness sets the border widths of a Border.
func WithBorderThickness(edges Edges) Option {
	return func(e Element) {
		if b, ok := e.(*Border); ok {
			b.SetBorderThickness(edges)
		}
	}
}

// WithPadding sets the padding of a Border.
func WithPadding(edges Edges) Option {
	return func(e Element) {
		if b, ok := e.(*Border); ok {
			b.SetPadding(edges)
		}
	}
}

// WithClipToBounds clips a panel's children to its bounds.
func WithClipToBounds() Option {
	return func(e Element) {
		if p, ok := e.(interface{ SetClipToBounds(bool) }); ok {
			p.SetClipToBounds(true)
		}
	}
}

// --- Panel Options ---

// WithOrientation sets the direction of a StackPanel.
func WithOrientation(o Orientation) Option {
	return func(e Element) {
		if s, ok := e.(*StackPanel); ok {
			s.SetOrientation(o)
		}
	}
}

// WithSpacing sets the gap between StackPanel children.
func WithSpacing(v float64) Option {
	return func(e Element) {
		if s, ok := e.(*StackPanel); ok {
			s.SetSpacing(v)
		}
	}
}

// WithLastChildFill sets whether a DockPanel's last child fills the rest.
func WithLastChildFill(fill bool) Option {
	return func(e Element) {
		if d, ok := e.(*DockPanel); ok {
			d.SetLastChildFill(fill)
		}
	}
}

// WithColumns declares the columns of a Grid.
func WithColumns(widths ...GridLength) Option {
	return func(e Element) {
		if g, ok := e.(*Grid); ok {
			g.SetColumns(widths...)
		}
	}
}

// WithRows declares the rows of a Grid.
func WithRows(heights ...GridLength) Option {
	return func(e Element) {
		if g, ok := e.(*Grid); ok {
			g.SetRows(heights...)
		}
	}
}

// WithGridLines draws the track boundaries of a Grid.
func WithGridLines() Option {
	return func(e Element) {
		if g, ok := e.(*Grid); ok {
			g.SetShowGridLines(true)
		}
	}
}

// WithChildren adds children to a panel. A child that cannot be added is
// skipped and reported as a contract violation; use Panel.Add to handle
// the error instead.
func WithChildren(children ...Element) Option {
	return func(e Element) {
		p, ok := e.(interface{ Add(...Element) error })
		if !ok {
			return
		}
		for _, child := range children {
			if err := p.Add(child); err != nil {
				violation(e.base(), "Add", err.Error())
			}
		}
	}
}
