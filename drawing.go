package ui

// DrawingContext is the rendering surface elements draw on.
//
// Coordinates are in the current local space: Render pushes each element's
// arrange offset before calling its Draw, so an element always draws with
// its own top-left corner at (0, 0). Clip rectangles intersect with the
// enclosing clip and are expressed in the local space at push time.
type DrawingContext interface {
	PushClip(r Rect)
	PopClip()
	PushOffset(p Point)
	PopOffset()
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	DrawText(r Rect, text string, c Color)
}

// Render draws e and its visual subtree. Hidden and collapsed elements are
// skipped along with their children.
func Render(e Element, dc DrawingContext) {
	if e == nil {
		return
	}
	b := e.base()
	if b.visibility != Visible {
		return
	}
	dc.PushOffset(b.bounds.Location())
	e.Draw(dc)
	dc.PopOffset()
}
