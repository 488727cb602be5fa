package ui

import "math"

// Canvas positions children at explicit offsets from its edges, read from
// the Left, Top, Right and Bottom attached properties. A child with both
// offsets on an axis is stretched between them; with neither it sits at 0.
type Canvas struct {
	Panel
}

// NewCanvas creates an empty Canvas.
func NewCanvas(opts ...Option) *Canvas {
	c := &Canvas{}
	c.Init(c)
	applyOptions(c, opts)
	return c
}

// MeasureOverride measures each child and returns the union of the child
// boxes as positioned.
func (c *Canvas) MeasureOverride(available Size) Size {
	var extent Size
	for _, child := range c.children {
		left, right := GetLeft(child), GetRight(child)
		top, bottom := GetTop(child), GetBottom(child)
		constraint := Size{
			Width:  stretchConstraint(available.Width, left, right),
			Height: stretchConstraint(available.Height, top, bottom),
		}
		d := child.Measure(constraint)
		extent.Width = math.Max(extent.Width, canvasExtent(d.Width, left, right))
		extent.Height = math.Max(extent.Height, canvasExtent(d.Height, top, bottom))
	}
	return extent
}

// ArrangeOverride places each child at its offsets.
func (c *Canvas) ArrangeOverride(final Size) Size {
	for _, child := range c.children {
		d := child.DesiredSize()
		x, w, fillX := canvasSlot(final.Width, d.Width, GetLeft(child), GetRight(child))
		y, h, fillY := canvasSlot(final.Height, d.Height, GetTop(child), GetBottom(child))
		child.Arrange(Rect{X: x, Y: y, Width: w, Height: h}, ArrangeOptions{Fill: fillX || fillY})
	}
	return final
}

// stretchConstraint offers a child pinned on both sides the space between
// the pins, and unlimited space otherwise.
func stretchConstraint(avail, start, end float64) float64 {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(avail, 1) {
		return math.Inf(1)
	}
	return math.Max(0, avail-start-end)
}

func canvasExtent(size, start, end float64) float64 {
	ext := size
	if !math.IsNaN(start) {
		ext += start
	}
	if !math.IsNaN(end) {
		ext += end
	}
	return ext
}

// canvasSlot resolves one axis of a child's arrange rect. It reports
// whether the child is stretched between both offsets.
func canvasSlot(final, desired, start, end float64) (pos, size float64, stretch bool) {
	switch {
	case !math.IsNaN(start) && !math.IsNaN(end):
		return start, math.Max(0, final-start-end), true
	case !math.IsNaN(start):
		return start, desired, false
	case !math.IsNaN(end):
		return final - end - desired, desired, false
	default:
		return 0, desired, false
	}
}
