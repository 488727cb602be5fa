package ui

import (
	"math"

	"github.com/grindlemire/go-ui/internal/layout"
	"github.com/grindlemire/go-ui/internal/property"
)

// Element is a node in the layout tree.
//
// Concrete elements embed [Base], which implements the measure/arrange
// state machine, and call [Base.Init] with themselves from their
// constructor. They customise layout by defining MeasureOverride and
// ArrangeOverride, and rendering by defining Draw.
type Element interface {
	property.Holder

	// Measure computes and caches the desired size for the offered space.
	Measure(available Size) Size
	// Arrange positions the element inside rect (parent coordinates).
	Arrange(rect Rect, opts ArrangeOptions)
	// DesiredSize returns the size computed by the last Measure, margin included.
	DesiredSize() Size
	// Bounds returns the arranged rectangle relative to the parent.
	Bounds() Rect
	// RenderSize returns the arranged size.
	RenderSize() Size
	// InvalidateMeasure marks this element and its ancestors for re-measure.
	InvalidateMeasure()
	// InvalidateArrange marks this element and its ancestors for re-arrange.
	InvalidateArrange()
	// Parent returns the containing element, or nil for a root.
	Parent() Element

	// MeasureOverride returns the size the content needs within available
	// (margin already removed).
	MeasureOverride(available Size) Size
	// ArrangeOverride lays out content within final and returns the size used.
	ArrangeOverride(final Size) Size
	// Draw renders the element in its own coordinate space.
	Draw(dc DrawingContext)
	// HitTest returns the topmost element under p, given in this element's
	// coordinate space, or nil.
	HitTest(p Point) Element
	// VisualChildren enumerates the elements drawn and hit-tested under this one.
	VisualChildren() []Element

	base() *Base
}

// ArrangeOptions modify how an element is placed in its arrange rect.
type ArrangeOptions struct {
	// Fill forces the element to occupy the whole rect regardless of its
	// desired size and alignment.
	Fill bool
}

// Base holds the layout state shared by every element.
type Base struct {
	self   Element
	parent Element // non-owning
	props  property.Bag
	name   string

	desired       Size
	lastAvailable Size
	bounds        Rect
	lastRect      Rect
	lastOpts      ArrangeOptions
	measureDirty  bool
	arrangeDirty  bool
	measured      bool
	arranged      bool

	// allowOverflow lets the desired size exceed the available size.
	// Panels set it; the parent decides whether to clip.
	allowOverflow bool

	width, height       float64
	minWidth, minHeight float64
	maxWidth, maxHeight float64
	margin              Edges
	hAlign, vAlign      Alignment
	visibility          Visibility
}

// Init binds b to the element embedding it. It must be called once, from
// the element's constructor, before the element is used.
func (b *Base) Init(self Element) {
	b.self = self
	b.measureDirty = true
	b.arrangeDirty = true
	b.width = math.NaN()
	b.height = math.NaN()
	b.maxWidth = math.Inf(1)
	b.maxHeight = math.Inf(1)
}

func (b *Base) base() *Base { return b }

func (b *Base) element() Element {
	if b.self == nil {
		panic("ui: element used before Base.Init")
	}
	return b.self
}

// Properties returns the element's property bag.
func (b *Base) Properties() *property.Bag {
	return &b.props
}

// Parent returns the containing element, or nil if this is a root.
func (b *Base) Parent() Element {
	return b.parent
}

// Name returns the element's debug name.
func (b *Base) Name() string {
	return b.name
}

// SetName sets a debug name used in logs and tree dumps.
func (b *Base) SetName(name string) {
	b.name = name
}

// DesiredSize returns the size computed by the last Measure.
// It is only meaningful after Measure has run since the last invalidation.
func (b *Base) DesiredSize() Size {
	return b.desired
}

// Bounds returns the arranged rectangle relative to the parent.
func (b *Base) Bounds() Rect {
	return b.bounds
}

// RenderSize returns the arranged size.
func (b *Base) RenderSize() Size {
	return b.bounds.Size()
}

// IsMeasureValid reports whether the cached desired size is current.
func (b *Base) IsMeasureValid() bool {
	return b.measured && !b.measureDirty
}

// IsArrangeValid reports whether the arranged bounds are current.
func (b *Base) IsArrangeValid() bool {
	return b.arranged && !b.arrangeDirty
}

// InvalidateMeasure marks this element and every ancestor as needing a
// new measure (and arrange) pass.
func (b *Base) InvalidateMeasure() {
	for n := b; n != nil; n = parentBase(n) {
		n.measureDirty = true
		n.arrangeDirty = true
	}
}

// InvalidateArrange marks this element and every ancestor as needing a new
// arrange pass. Cached desired sizes stay valid.
func (b *Base) InvalidateArrange() {
	for n := b; n != nil; n = parentBase(n) {
		n.arrangeDirty = true
	}
}

func parentBase(b *Base) *Base {
	if b.parent == nil {
		return nil
	}
	return b.parent.base()
}

// Measure computes the desired size of the element for the offered space.
//
// When the element is not dirty and available equals the previous call's
// value, the cached desired size is returned without calling
// MeasureOverride. Infinite dimensions mean "no constraint". NaN or
// negative dimensions are contract violations: they panic in strict mode
// and are clamped to zero otherwise.
func (b *Base) Measure(available Size) Size {
	self := b.element()
	available = sanitizeAvailable(available, b)

	if b.measured && !b.measureDirty && available.Equal(b.lastAvailable) {
		return b.desired
	}

	b.lastAvailable = available
	b.desired = b.measureCore(self, available)
	b.measureDirty = false
	b.measured = true
	b.arrangeDirty = true
	return b.desired
}

func (b *Base) measureCore(self Element, available Size) Size {
	if b.visibility == Collapsed {
		return Size{}
	}

	minSize, maxSize := b.minMax()

	constraint := available.Deflate(b.margin)
	constraint.Width = layout.Clamp(constraint.Width, minSize.Width, maxSize.Width)
	constraint.Height = layout.Clamp(constraint.Height, minSize.Height, maxSize.Height)

	size := sanitizeResult(self.MeasureOverride(constraint), b, "MeasureOverride")
	size.Width = layout.Clamp(size.Width, minSize.Width, maxSize.Width)
	size.Height = layout.Clamp(size.Height, minSize.Height, maxSize.Height)

	desired := size.Inflate(b.margin)
	if !b.allowOverflow {
		// An element only asks for more than offered when its own
		// explicit or minimum size demands it.
		desired.Width = math.Min(desired.Width, math.Max(available.Width, minSize.Width+b.margin.Horizontal()))
		desired.Height = math.Min(desired.Height, math.Max(available.Height, minSize.Height+b.margin.Vertical()))
	}
	desired.Width = math.Max(0, desired.Width)
	desired.Height = math.Max(0, desired.Height)
	return desired
}

// Arrange positions the element within rect, given in the parent's
// coordinate space. Arranging an element that was never measured (or is
// measure-dirty) measures it first.
func (b *Base) Arrange(rect Rect, opts ArrangeOptions) {
	self := b.element()
	rect = sanitizeRect(rect, b)

	if !b.measured {
		b.Measure(rect.Size())
	} else if b.measureDirty {
		b.Measure(b.lastAvailable)
	}

	if b.arranged && !b.arrangeDirty && rect.Equal(b.lastRect) && opts == b.lastOpts {
		return
	}
	b.lastRect = rect
	b.lastOpts = opts

	if b.visibility == Collapsed {
		b.bounds = Rect{X: rect.X, Y: rect.Y}
		b.arrangeDirty = false
		b.arranged = true
		return
	}

	slot := rect.Inset(b.margin)
	minSize, maxSize := b.minMax()
	desired := b.desired.Deflate(b.margin)

	size := slot.Size()
	if !opts.Fill {
		if b.hAlign != AlignStretch {
			size.Width = math.Min(size.Width, desired.Width)
		}
		if b.vAlign != AlignStretch {
			size.Height = math.Min(size.Height, desired.Height)
		}
	}
	size.Width = layout.Clamp(size.Width, minSize.Width, maxSize.Width)
	size.Height = layout.Clamp(size.Height, minSize.Height, maxSize.Height)

	rendered := sanitizeResult(self.ArrangeOverride(size), b, "ArrangeOverride")

	b.bounds = Rect{
		X:      slot.X + alignOffset(b.hAlign, slot.Width, rendered.Width),
		Y:      slot.Y + alignOffset(b.vAlign, slot.Height, rendered.Height),
		Width:  rendered.Width,
		Height: rendered.Height,
	}
	b.arrangeDirty = false
	b.arranged = true
}

func alignOffset(a Alignment, slot, size float64) float64 {
	free := slot - size
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignStart:
		return 0
	case AlignEnd:
		return free
	default: // AlignCenter, and AlignStretch clipped by a max size
		return free / 2
	}
}

// minMax resolves the effective min and max size from the explicit size
// and min/max properties. A max below the min is raised to the min.
func (b *Base) minMax() (minSize, maxSize Size) {
	minSize.Width, maxSize.Width = resolveMinMax(b.width, b.minWidth, b.maxWidth)
	minSize.Height, maxSize.Height = resolveMinMax(b.height, b.minHeight, b.maxHeight)
	return minSize, maxSize
}

func resolveMinMax(explicit, dimMin, dimMax float64) (float64, float64) {
	dimMax = math.Max(dimMin, dimMax)

	size := explicit
	if math.IsNaN(size) {
		size = math.Inf(1)
	}
	dimMax = math.Max(math.Min(size, dimMax), dimMin)

	size = explicit
	if math.IsNaN(size) {
		size = 0
	}
	dimMin = math.Max(math.Min(dimMax, size), dimMin)
	return dimMin, dimMax
}

// MeasureOverride is the default measure: no content.
func (b *Base) MeasureOverride(Size) Size {
	return Size{}
}

// ArrangeOverride is the default arrange: take the offered size.
func (b *Base) ArrangeOverride(final Size) Size {
	return final
}

// Draw is the default draw: nothing.
func (b *Base) Draw(DrawingContext) {}

// VisualChildren returns nil; containers override it.
func (b *Base) VisualChildren() []Element {
	return nil
}

// HitTest returns the topmost visual child under p, or the element itself
// when p lies inside its render bounds.
func (b *Base) HitTest(p Point) Element {
	if b.visibility != Visible {
		return nil
	}
	if !layout.RectFromSize(b.RenderSize()).Contains(p) {
		return nil
	}
	if hit := hitTestChildren(b.element().VisualChildren(), p); hit != nil {
		return hit
	}
	return b.element()
}

// hitTestChildren tests children back-to-front so the last drawn wins.
func hitTestChildren(children []Element, p Point) Element {
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if hit := child.HitTest(p.Sub(child.Bounds().Location())); hit != nil {
			return hit
		}
	}
	return nil
}
