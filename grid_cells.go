package ui

import "github.com/grindlemire/go-ui/internal/debug"

// virtualCell is the per-child placement computed at the start of each
// measure pass.
type virtualCell struct {
	child        Element
	col, colSpan int
	row, rowSpan int

	autoCol, starCol bool
	autoRow, starRow bool
	priority         int
}

// updateCells rebuilds the cell for every child. The buffer is reused and
// only reallocated when the child count grows past its capacity.
func (g *Grid) updateCells(cols, rows []*TrackDefinition) {
	n := len(g.children)
	if cap(g.cells) < n {
		g.cells = make([]virtualCell, n)
	}
	g.cells = g.cells[:n]
	g.hasPriority = [4]bool{}
	g.autoRowsInP2 = false

	for i, child := range g.children {
		c := &g.cells[i]
		*c = virtualCell{child: child}
		c.col, c.colSpan = clampSpan(child, "column", GetColumn(child), GetColumnSpan(child), len(cols))
		c.row, c.rowSpan = clampSpan(child, "row", GetRow(child), GetRowSpan(child), len(rows))
		c.autoCol, c.starCol = spanUnits(cols[c.col : c.col+c.colSpan])
		c.autoRow, c.starRow = spanUnits(rows[c.row : c.row+c.rowSpan])
		c.priority = c.classify()

		g.hasPriority[c.priority] = true
		if c.priority == 2 && c.autoRow {
			g.autoRowsInP2 = true
		}
	}
}

// cellsCurrent reports whether the cells still describe the children, in
// order. Adding or removing children leaves them stale until the next
// measure.
func (g *Grid) cellsCurrent() bool {
	if len(g.cells) != len(g.children) {
		return false
	}
	for i := range g.cells {
		if g.cells[i].child != g.children[i] {
			return false
		}
	}
	return true
}

func (c *virtualCell) classify() int {
	switch {
	case !c.starRow && !c.starCol:
		return 0
	case c.starRow && !c.starCol && c.autoCol:
		return 1
	case c.starCol && !c.starRow:
		return 2
	default:
		return 3
	}
}

func spanUnits(tracks []*TrackDefinition) (auto, star bool) {
	for _, t := range tracks {
		switch t.unit {
		case UnitAuto:
			auto = true
		case UnitStar:
			star = true
		}
	}
	return auto, star
}

// clampSpan keeps a child's index and span inside the defined tracks.
func clampSpan(child Element, kind string, index, span, count int) (int, int) {
	i, s := index, span
	if i < 0 {
		i = 0
	}
	if i > count-1 {
		i = count - 1
	}
	if s < 1 {
		s = 1
	}
	if s > count-i {
		s = count - i
	}
	if i != index || s != span {
		debug.Log("grid placement clamped",
			"element", describe(child.base()), "axis", kind,
			"index", index, "span", span, "tracks", count)
	}
	return i, s
}

// cellAt returns the column and row containing p, or -1 when p lies
// outside the arranged tracks.
func cellAt(tracks []*TrackDefinition, v float64) int {
	if v < 0 {
		return -1
	}
	for i, t := range tracks {
		if v < t.position+t.actualSize {
			return i
		}
	}
	return -1
}
