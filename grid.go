package ui

import "math"

// Grid lays children out in rows and columns. Each track is sized in
// pixels, to its content (Auto) or as a weighted share of the remaining
// space (Star). Children pick their cell with the Row, Column, RowSpan and
// ColumnSpan attached properties.
//
// Measuring a grid is a sequence of passes over its cells, grouped by
// which star tracks they depend on:
//
//	0: no star tracks                      measured first
//	1: star rows, auto columns              needs star rows, feeds auto columns
//	2: star columns, no star rows           needs star columns
//	3: everything else                      measured last
//
// When a group-2 cell sits in an auto row and group 1 is not empty, the two
// axes depend on each other. Group 1 is then measured at unlimited height
// to size the columns first, and re-measured once the rows are resolved.
type Grid struct {
	Panel
	rows          *RowDefinitions
	columns       *ColumnDefinitions
	showGridLines bool

	// Per-pass state, reused across passes.
	cells           []virtualCell
	hasPriority     [4]bool
	autoRowsInP2    bool
	starRowCount    int
	starColumnCount int
	spans           []spanRequest
	order           []*TrackDefinition
}

// NewGrid creates a Grid with no declared tracks: a single star cell.
func NewGrid(opts ...Option) *Grid {
	g := &Grid{}
	g.Init(g)
	g.rows = newTrackCollection(g, "row", NewRowDefinition(Star(1)))
	g.columns = newTrackCollection(g, "column", NewColumnDefinition(Star(1)))
	applyOptions(g, opts)
	return g
}

// RowDefinitions returns the row collection.
func (g *Grid) RowDefinitions() *RowDefinitions { return g.rows }

// ColumnDefinitions returns the column collection.
func (g *Grid) ColumnDefinitions() *ColumnDefinitions { return g.columns }

// SetRows replaces the rows with tracks of the given heights.
func (g *Grid) SetRows(heights ...GridLength) {
	g.rows.setLengths(heights, NewRowDefinition)
}

// SetColumns replaces the columns with tracks of the given widths.
func (g *Grid) SetColumns(widths ...GridLength) {
	g.columns.setLengths(widths, NewColumnDefinition)
}

// ShowGridLines reports whether track boundaries are drawn.
func (g *Grid) ShowGridLines() bool { return g.showGridLines }

// SetShowGridLines toggles drawing of track boundaries.
func (g *Grid) SetShowGridLines(show bool) { g.showGridLines = show }

// MeasureOverride resolves track sizes against available and returns the
// sum of the tracks' content minimums.
func (g *Grid) MeasureOverride(available Size) Size {
	cols := g.columns.layout()
	rows := g.rows.layout()

	g.starColumnCount = prepareForMeasure(cols, math.IsInf(available.Width, 1))
	g.starRowCount = prepareForMeasure(rows, math.IsInf(available.Height, 1))
	g.updateCells(cols, rows)

	g.measureGroup(0, cols, rows, false, false)
	switch {
	case !g.autoRowsInP2:
		g.resolveRows(rows, available.Height)
		g.measureGroup(1, cols, rows, false, false)
		g.resolveColumns(cols, available.Width)
		g.measureGroup(2, cols, rows, false, false)
	case !g.hasPriority[1]:
		g.resolveColumns(cols, available.Width)
		g.measureGroup(2, cols, rows, false, false)
		g.resolveRows(rows, available.Height)
	default:
		// Rows and columns depend on each other: columns win. The
		// unbounded pass only sizes columns.
		g.measureGroup(1, cols, rows, true, false)
		g.resolveColumns(cols, available.Width)
		g.measureGroup(2, cols, rows, false, false)
		g.resolveRows(rows, available.Height)
		g.measureGroup(1, cols, rows, false, true)
	}
	g.measureGroup(3, cols, rows, false, false)

	return Size{Width: contentExtent(cols), Height: contentExtent(rows)}
}

func (g *Grid) resolveRows(rows []*TrackDefinition, avail float64) {
	if g.starRowCount > 0 {
		resolveStars(rows, avail, &g.order)
	}
}

func (g *Grid) resolveColumns(cols []*TrackDefinition, avail float64) {
	if g.starColumnCount > 0 {
		resolveStars(cols, avail, &g.order)
	}
}

// measureGroup measures the cells of one priority group and grows the
// tracks they span to fit. An unbounded height pass leaves rows untouched.
func (g *Grid) measureGroup(priority int, cols, rows []*TrackDefinition, unboundedHeight, ignoreWidth bool) {
	if !g.hasPriority[priority] {
		return
	}
	g.spans = g.spans[:0]
	for i := range g.cells {
		c := &g.cells[i]
		if c.priority != priority {
			continue
		}
		d := c.child.Measure(g.cellConstraint(c, cols, rows, unboundedHeight))

		if !ignoreWidth {
			if c.colSpan == 1 {
				t := cols[c.col]
				t.updateContent(math.Min(d.Width, t.maxSize))
			} else {
				g.registerSpan(true, c.col, c.colSpan, d.Width)
			}
		}
		if unboundedHeight {
			continue
		}
		if c.rowSpan == 1 {
			t := rows[c.row]
			t.updateContent(math.Min(d.Height, t.maxSize))
		} else {
			g.registerSpan(false, c.row, c.rowSpan, d.Height)
		}
	}
	for _, s := range g.spans {
		tracks := rows
		if s.column {
			tracks = cols
		}
		distributeSpan(tracks[s.start:s.start+s.count], s.size, &g.order)
	}
}

// cellConstraint is the space offered to a cell's child. Cells spanning
// only auto and fixed tracks on an axis, with at least one auto, are
// unconstrained on that axis.
func (g *Grid) cellConstraint(c *virtualCell, cols, rows []*TrackDefinition, unboundedHeight bool) Size {
	size := Infinite()
	if !c.autoCol || c.starCol {
		size.Width = offeredExtent(cols, c.col, c.colSpan)
	}
	if !unboundedHeight && (!c.autoRow || c.starRow) {
		size.Height = offeredExtent(rows, c.row, c.rowSpan)
	}
	return size
}

// ArrangeOverride finalizes track sizes for final and arranges each child
// in the rectangle its cell spans.
func (g *Grid) ArrangeOverride(final Size) Size {
	cols := g.columns.layout()
	rows := g.rows.layout()
	finalizeTracks(cols, final.Width, &g.order)
	finalizeTracks(rows, final.Height, &g.order)

	for i := range g.cells {
		c := &g.cells[i]
		c.child.Arrange(g.cellRect(c), ArrangeOptions{})
	}
	return final
}

// cellRect returns the arranged rectangle spanned by c.
func (g *Grid) cellRect(c *virtualCell) Rect {
	cols := g.columns.layout()
	rows := g.rows.layout()
	return Rect{
		X:      cols[c.col].position,
		Y:      rows[c.row].position,
		Width:  tracksExtent(cols, c.col, c.colSpan),
		Height: tracksExtent(rows, c.row, c.rowSpan),
	}
}

// prepareForMeasure resets every track for a measure pass and returns the
// number of star tracks. Stars against unlimited space act as auto.
func prepareForMeasure(tracks []*TrackDefinition, unbounded bool) int {
	stars := 0
	for _, t := range tracks {
		t.prepareForMeasure(unbounded)
		if t.unit == UnitStar {
			stars++
		}
	}
	return stars
}

// offeredExtent sums what tracks [start, start+count) offer during measure.
func offeredExtent(tracks []*TrackDefinition, start, count int) float64 {
	var sum float64
	for _, t := range tracks[start : start+count] {
		sum += t.offered()
	}
	return sum
}

// contentExtent sums the content minimums of tracks.
func contentExtent(tracks []*TrackDefinition) float64 {
	var sum float64
	for _, t := range tracks {
		sum += t.contentSize
	}
	return sum
}
