package ui

import "math"

// DockPanel docks children to the edges of the remaining space, in child
// order. With LastChildFill the final child takes whatever is left.
type DockPanel struct {
	Panel
	lastChildFill bool
}

// NewDockPanel creates a DockPanel with LastChildFill enabled.
func NewDockPanel(opts ...Option) *DockPanel {
	d := &DockPanel{lastChildFill: true}
	d.Init(d)
	applyOptions(d, opts)
	return d
}

// LastChildFill reports whether the last child fills the remaining space.
func (d *DockPanel) LastChildFill() bool { return d.lastChildFill }

// SetLastChildFill sets whether the last child fills the remaining space.
func (d *DockPanel) SetLastChildFill(fill bool) {
	if d.lastChildFill == fill {
		return
	}
	d.lastChildFill = fill
	d.InvalidateArrange()
}

// MeasureOverride measures each child in the space left by the children
// docked before it.
func (d *DockPanel) MeasureOverride(available Size) Size {
	var used, need Size // used: consumed by docks so far; need: running max extent
	for _, child := range d.children {
		remaining := Size{
			Width:  math.Max(0, available.Width-used.Width),
			Height: math.Max(0, available.Height-used.Height),
		}
		ds := child.Measure(remaining)
		switch GetDock(child) {
		case DockLeft, DockRight:
			need.Height = math.Max(need.Height, used.Height+ds.Height)
			used.Width += ds.Width
		case DockTop, DockBottom:
			need.Width = math.Max(need.Width, used.Width+ds.Width)
			used.Height += ds.Height
		}
	}
	return Size{
		Width:  math.Max(need.Width, used.Width),
		Height: math.Max(need.Height, used.Height),
	}
}

// ArrangeOverride carves each child's slot from the remaining rectangle.
func (d *DockPanel) ArrangeOverride(final Size) Size {
	var left, top, right, bottom float64
	fillFrom := len(d.children)
	if d.lastChildFill {
		fillFrom--
	}
	for i, child := range d.children {
		ds := child.DesiredSize()
		slot := Rect{
			X:      left,
			Y:      top,
			Width:  math.Max(0, final.Width-left-right),
			Height: math.Max(0, final.Height-top-bottom),
		}
		if i < fillFrom {
			switch GetDock(child) {
			case DockLeft:
				slot.Width = math.Min(slot.Width, ds.Width)
				left += slot.Width
			case DockRight:
				w := math.Min(slot.Width, ds.Width)
				slot.X += slot.Width - w
				slot.Width = w
				right += w
			case DockTop:
				slot.Height = math.Min(slot.Height, ds.Height)
				top += slot.Height
			case DockBottom:
				h := math.Min(slot.Height, ds.Height)
				slot.Y += slot.Height - h
				slot.Height = h
				bottom += h
			}
			child.Arrange(slot, ArrangeOptions{})
			continue
		}
		child.Arrange(slot, ArrangeOptions{Fill: true})
	}
	return final
}
