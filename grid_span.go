package ui

import (
	"cmp"
	"math"
	"slices"
)

// spanRequest is the largest size requested by cells spanning the same
// range of tracks during one group pass.
type spanRequest struct {
	column bool
	start  int
	count  int
	size   float64
}

func (g *Grid) registerSpan(column bool, start, count int, size float64) {
	for i := range g.spans {
		s := &g.spans[i]
		if s.column == column && s.start == start && s.count == count {
			s.size = math.Max(s.size, size)
			return
		}
	}
	g.spans = append(g.spans, spanRequest{column: column, start: start, count: count, size: size})
}

// distributeSpan grows the content size of tracks so that together they
// hold requested. Space goes first where it costs least: up to the
// tracks' preferred sizes, then up to their max sizes, and as a last
// resort evenly past every max.
func distributeSpan(tracks []*TrackDefinition, requested float64, buf *[]*TrackDefinition) {
	if requested <= 0 || len(tracks) == 0 {
		return
	}

	var rangeMin, rangePreferred, rangeMax float64
	autoCount := 0
	for _, t := range tracks {
		rangeMin += t.contentSize
		rangePreferred += t.preferred()
		t.sizeCache = math.Max(t.maxSize, t.contentSize)
		rangeMax += t.sizeCache
		if t.unit == UnitAuto {
			autoCount++
		}
	}

	order := append((*buf)[:0], tracks...)
	*buf = order
	count := len(order)

	switch {
	case requested <= rangeMin:
		// Already large enough.

	case requested <= rangePreferred:
		// Auto tracks keep their content size; the rest grow toward their
		// preferred size, smallest first.
		slices.SortStableFunc(order, func(a, b *TrackDefinition) int {
			if c := cmpAutoFirst(a, b); c != 0 {
				return c
			}
			if a.unit == UnitAuto {
				return cmp.Compare(a.contentSize, b.contentSize)
			}
			return cmp.Compare(a.preferred(), b.preferred())
		})
		remaining := requested
		i := 0
		for ; i < autoCount; i++ {
			remaining -= order[i].contentSize
		}
		for ; i < count; i++ {
			grow := math.Min(remaining/float64(count-i), order[i].preferred())
			order[i].updateContent(grow)
			remaining -= grow
		}

	case requested <= rangeMax:
		// Non-auto tracks grow toward their max first, smallest max first,
		// then auto tracks absorb the rest, smallest content first.
		slices.SortStableFunc(order, func(a, b *TrackDefinition) int {
			if c := cmpAutoFirst(a, b); c != 0 {
				return -c
			}
			if a.unit == UnitAuto {
				return cmp.Compare(a.contentSize, b.contentSize)
			}
			return cmp.Compare(a.sizeCache, b.sizeCache)
		})
		remaining := requested - rangePreferred
		nonAuto := count - autoCount
		i := 0
		for ; i < nonAuto; i++ {
			t := order[i]
			base := t.preferred()
			t.updateContent(math.Min(base+remaining/float64(nonAuto-i), t.sizeCache))
			remaining -= t.contentSize - base
		}
		for ; i < count; i++ {
			t := order[i]
			base := t.contentSize
			t.updateContent(math.Min(base+remaining/float64(count-i), t.sizeCache))
			remaining -= t.contentSize - base
		}

	default:
		// Nothing fits within the max sizes: overflow evenly.
		equal := requested / float64(count)
		for _, t := range order {
			t.updateContent(equal)
		}
	}
}

// cmpAutoFirst orders auto tracks before the others.
func cmpAutoFirst(a, b *TrackDefinition) int {
	aAuto, bAuto := a.unit == UnitAuto, b.unit == UnitAuto
	switch {
	case aAuto == bAuto:
		return 0
	case aAuto:
		return -1
	default:
		return 1
	}
}
