package ui

import (
	"fmt"
	"math"
)

// TrackIndexError reports access to a row or column that does not exist.
type TrackIndexError struct {
	Kind  string // "row" or "column"
	Index int
	Len   int
}

func (e *TrackIndexError) Error() string {
	return fmt.Sprintf("ui: %s index %d out of range [0, %d)", e.Kind, e.Index, e.Len)
}

// TrackDefinition holds the sizing of one grid row or column and the state
// the grid computes for it during layout.
type TrackDefinition struct {
	owner trackOwner // non-owning

	length   GridLength
	minSize  float64
	maxSize  float64
	implicit bool

	// Layout state, rebuilt by every measure and arrange pass.
	unit        GridUnit // assumed unit for the current pass
	measureSize float64  // measured dimension
	contentSize float64  // measured content dimension
	sizeCache   float64  // scratch for star resolution and span distribution
	weight      float64  // clipped star weight
	actualSize  float64
	position    float64
}

type trackOwner interface {
	removeTrack(t *TrackDefinition) bool
	invalidate()
}

func newTrack(length GridLength) TrackDefinition {
	return TrackDefinition{length: length, maxSize: math.Inf(1), unit: length.Unit}
}

// Length returns the declared size.
func (t *TrackDefinition) Length() GridLength { return t.length }

// SetLength sets the declared size.
func (t *TrackDefinition) SetLength(l GridLength) {
	if t.length == l {
		return
	}
	t.length = l
	t.changed()
}

// Min returns the minimum size.
func (t *TrackDefinition) Min() float64 { return t.minSize }

// SetMin sets the minimum size.
func (t *TrackDefinition) SetMin(v float64) {
	if t.minSize == v {
		return
	}
	t.minSize = v
	t.changed()
}

// Max returns the maximum size (+Inf when unbounded).
func (t *TrackDefinition) Max() float64 { return t.maxSize }

// SetMax sets the maximum size.
func (t *TrackDefinition) SetMax(v float64) {
	if t.maxSize == v {
		return
	}
	t.maxSize = v
	t.changed()
}

// AssumedUnit returns the unit used by the last layout pass. A star track
// measured against unlimited space is treated as auto.
func (t *TrackDefinition) AssumedUnit() GridUnit { return t.unit }

// MeasuredDimension returns the size the track offers its cells during measure.
func (t *TrackDefinition) MeasuredDimension() float64 { return t.measureSize }

// MeasuredContentDimension returns the minimum the track's content needs.
func (t *TrackDefinition) MeasuredContentDimension() float64 { return t.contentSize }

// ActualDimension returns the size assigned by the last arrange.
func (t *TrackDefinition) ActualDimension() float64 { return t.actualSize }

// Position returns the offset of the track from the grid's origin.
func (t *TrackDefinition) Position() float64 { return t.position }

func (t *TrackDefinition) changed() {
	if t.owner != nil {
		t.owner.invalidate()
	}
}

// updateContent raises the content size to at least v.
func (t *TrackDefinition) updateContent(v float64) {
	t.contentSize = math.Max(t.contentSize, v)
}

// preferred is what the track would like to be: its measured size for
// fixed and star tracks, its content size otherwise.
func (t *TrackDefinition) preferred() float64 {
	if t.unit != UnitAuto && t.contentSize < t.measureSize {
		return t.measureSize
	}
	return t.contentSize
}

// offered is the size cells see for this track during measure.
func (t *TrackDefinition) offered() float64 {
	if t.unit == UnitAuto {
		return t.contentSize
	}
	return t.measureSize
}

// prepareForMeasure resets the layout state for a measure pass against
// available space on this axis.
func (t *TrackDefinition) prepareForMeasure(starAsAuto bool) {
	userMin := t.minSize
	userMax := t.maxSize
	size := math.Inf(1)
	switch t.length.Unit {
	case UnitPixel:
		t.unit = UnitPixel
		size = t.length.Value
		userMin = math.Max(userMin, math.Min(size, userMax))
	case UnitAuto:
		t.unit = UnitAuto
	case UnitStar:
		if starAsAuto {
			t.unit = UnitAuto
		} else {
			t.unit = UnitStar
		}
	}
	t.contentSize = userMin
	t.measureSize = math.Max(userMin, math.Min(size, userMax))
}

// RowDefinition describes one grid row.
type RowDefinition struct {
	TrackDefinition
}

// NewRowDefinition creates a row of the given height.
func NewRowDefinition(height GridLength) *RowDefinition {
	return &RowDefinition{TrackDefinition: newTrack(height)}
}

// Height returns the declared height.
func (r *RowDefinition) Height() GridLength { return r.length }

// ActualHeight returns the arranged height.
func (r *RowDefinition) ActualHeight() float64 { return r.actualSize }

func (r *RowDefinition) track() *TrackDefinition { return &r.TrackDefinition }

// ColumnDefinition describes one grid column.
type ColumnDefinition struct {
	TrackDefinition
}

// NewColumnDefinition creates a column of the given width.
func NewColumnDefinition(width GridLength) *ColumnDefinition {
	return &ColumnDefinition{TrackDefinition: newTrack(width)}
}

// Width returns the declared width.
func (c *ColumnDefinition) Width() GridLength { return c.length }

// ActualWidth returns the arranged width.
func (c *ColumnDefinition) ActualWidth() float64 { return c.actualSize }

func (c *ColumnDefinition) track() *TrackDefinition { return &c.TrackDefinition }

// Track is implemented by *RowDefinition and *ColumnDefinition.
type Track interface {
	*RowDefinition | *ColumnDefinition
	track() *TrackDefinition
}

// TrackCollection is the ordered list of rows or columns of a Grid. An
// empty collection behaves as a single implicit star track.
type TrackCollection[T Track] struct {
	grid     *Grid // non-owning
	kind     string
	items    []T
	tracks   []*TrackDefinition
	implicit T
	fallback []*TrackDefinition
}

// RowDefinitions is the row collection of a Grid.
type RowDefinitions = TrackCollection[*RowDefinition]

// ColumnDefinitions is the column collection of a Grid.
type ColumnDefinitions = TrackCollection[*ColumnDefinition]

func newTrackCollection[T Track](g *Grid, kind string, implicit T) *TrackCollection[T] {
	it := implicit.track()
	it.implicit = true
	c := &TrackCollection[T]{grid: g, kind: kind, implicit: implicit}
	c.fallback = []*TrackDefinition{it}
	it.owner = c
	return c
}

// Len returns the number of declared tracks.
func (c *TrackCollection[T]) Len() int { return len(c.items) }

// Items returns the declared tracks. The slice must not be modified.
func (c *TrackCollection[T]) Items() []T { return c.items }

// At returns the track at index i. On an empty collection, At(0) returns
// the implicit star track. Any other out-of-range index panics with a
// *TrackIndexError.
func (c *TrackCollection[T]) At(i int) T {
	if len(c.items) == 0 && i == 0 {
		return c.implicit
	}
	if i < 0 || i >= len(c.items) {
		panic(&TrackIndexError{Kind: c.kind, Index: i, Len: len(c.items)})
	}
	return c.items[i]
}

// IndexOf returns the position of def, or -1.
func (c *TrackCollection[T]) IndexOf(def T) int {
	for i, d := range c.items {
		if d == def {
			return i
		}
	}
	return -1
}

// Add appends tracks. A track owned by another grid (or already in this
// collection) is moved.
func (c *TrackCollection[T]) Add(defs ...T) {
	for _, def := range defs {
		c.insert(len(c.items), def)
	}
	c.invalidate()
}

// Insert places def at index i. It panics with a *TrackIndexError when i
// is outside [0, Len()].
func (c *TrackCollection[T]) Insert(i int, def T) {
	if i < 0 || i > len(c.items) {
		panic(&TrackIndexError{Kind: c.kind, Index: i, Len: len(c.items)})
	}
	c.insert(i, def)
	c.invalidate()
}

func (c *TrackCollection[T]) insert(i int, def T) {
	t := def.track()
	if t.implicit {
		panic(fmt.Sprintf("ui: implicit %s cannot be added to a grid", c.kind))
	}
	if t.owner != nil {
		if t.owner == trackOwner(c) {
			if j := c.IndexOf(def); j < i {
				i--
			}
		}
		t.owner.removeTrack(t)
	}
	t.owner = c
	c.items = append(c.items, nil)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = def
	c.tracks = append(c.tracks, nil)
	copy(c.tracks[i+1:], c.tracks[i:])
	c.tracks[i] = t
}

// Remove detaches def. It returns false when def is not in the collection.
func (c *TrackCollection[T]) Remove(def T) bool {
	return c.removeTrack(def.track())
}

// RemoveAt detaches the track at index i. It panics with a
// *TrackIndexError when i is out of range.
func (c *TrackCollection[T]) RemoveAt(i int) T {
	if i < 0 || i >= len(c.items) {
		panic(&TrackIndexError{Kind: c.kind, Index: i, Len: len(c.items)})
	}
	def := c.items[i]
	c.removeTrack(def.track())
	return def
}

// Clear removes every track.
func (c *TrackCollection[T]) Clear() {
	if len(c.items) == 0 {
		return
	}
	for i, t := range c.tracks {
		t.owner = nil
		c.tracks[i] = nil
		c.items[i] = nil
	}
	c.items = c.items[:0]
	c.tracks = c.tracks[:0]
	c.invalidate()
}

func (c *TrackCollection[T]) removeTrack(t *TrackDefinition) bool {
	for i, tt := range c.tracks {
		if tt != t {
			continue
		}
		copy(c.items[i:], c.items[i+1:])
		c.items[len(c.items)-1] = nil
		c.items = c.items[:len(c.items)-1]
		copy(c.tracks[i:], c.tracks[i+1:])
		c.tracks[len(c.tracks)-1] = nil
		c.tracks = c.tracks[:len(c.tracks)-1]
		t.owner = nil
		c.invalidate()
		return true
	}
	return false
}

func (c *TrackCollection[T]) invalidate() {
	if c.grid != nil {
		c.grid.InvalidateMeasure()
	}
}

// layout returns the tracks the grid lays out: the declared ones, or the
// implicit star track when there are none.
func (c *TrackCollection[T]) layout() []*TrackDefinition {
	if len(c.tracks) == 0 {
		return c.fallback
	}
	return c.tracks
}

// setLengths replaces the collection with tracks of the given sizes.
func (c *TrackCollection[T]) setLengths(lengths []GridLength, mk func(GridLength) T) {
	c.Clear()
	for _, l := range lengths {
		c.insert(len(c.items), mk(l))
	}
	c.invalidate()
}

// tracksExtent sums the arranged sizes of tracks [start, start+count).
func tracksExtent(tracks []*TrackDefinition, start, count int) float64 {
	var sum float64
	for _, t := range tracks[start : start+count] {
		sum += t.actualSize
	}
	return sum
}
