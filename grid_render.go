package ui

import "github.com/grindlemire/go-ui/internal/layout"

// GridLineColor is the color ShowGridLines draws track boundaries in.
var GridLineColor = Yellow

// HitTest finds the cell under p and tests only the children spanning
// it, topmost first.
func (g *Grid) HitTest(p Point) Element {
	if !g.cellsCurrent() {
		return g.Panel.HitTest(p)
	}
	if g.visibility != Visible {
		return nil
	}
	if !layout.RectFromSize(g.RenderSize()).Contains(p) {
		return nil
	}
	col := cellAt(g.columns.layout(), p.X)
	row := cellAt(g.rows.layout(), p.Y)
	if col >= 0 && row >= 0 {
		for i := len(g.cells) - 1; i >= 0; i-- {
			c := &g.cells[i]
			if col < c.col || col >= c.col+c.colSpan || row < c.row || row >= c.row+c.rowSpan {
				continue
			}
			if hit := c.child.HitTest(p.Sub(c.child.Bounds().Location())); hit != nil {
				return hit
			}
		}
	}
	if !g.background.IsDefault() {
		return g
	}
	return nil
}

// Draw renders children clipped to their cells. Consecutive children in
// the same cell share one clip.
func (g *Grid) Draw(dc DrawingContext) {
	if !g.cellsCurrent() {
		// Not laid out since the children changed.
		g.Panel.Draw(dc)
		return
	}
	bounds := layout.RectFromSize(g.RenderSize())
	if !g.background.IsDefault() {
		dc.FillRect(bounds, g.background)
	}
	if g.clipToBounds {
		dc.PushClip(bounds)
		defer dc.PopClip()
	}

	var clip Rect
	clipped := false
	for i := range g.cells {
		c := &g.cells[i]
		if c.child.base().visibility != Visible {
			continue
		}
		r := g.cellRect(c)
		if !clipped || !r.Equal(clip) {
			if clipped {
				dc.PopClip()
			}
			dc.PushClip(r)
			clip, clipped = r, true
		}
		Render(c.child, dc)
	}
	if clipped {
		dc.PopClip()
	}

	if g.showGridLines {
		g.drawGridLines(dc, bounds)
	}
}

func (g *Grid) drawGridLines(dc DrawingContext, bounds Rect) {
	for _, t := range g.columns.layout() {
		dc.StrokeRect(Rect{X: t.position, Width: t.actualSize, Height: bounds.Height}, GridLineColor)
	}
	for _, t := range g.rows.layout() {
		dc.StrokeRect(Rect{Y: t.position, Width: bounds.Width, Height: t.actualSize}, GridLineColor)
	}
}
