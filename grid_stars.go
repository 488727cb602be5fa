package ui

import (
	"cmp"
	"math"
	"slices"

	"github.com/grindlemire/go-ui/internal/layout"
)

// starClip caps star weights and max sizes so weight ratios stay finite.
const starClip = 1e298

// resolveStars sizes the star tracks during measure. Space left after the
// auto and fixed tracks is shared by weight. Tracks whose max caps them
// soonest (lowest max/weight) are resolved first, so the space they cannot
// take flows to the others.
func resolveStars(tracks []*TrackDefinition, avail float64, buf *[]*TrackDefinition) {
	stars := (*buf)[:0]
	var taken float64
	for _, t := range tracks {
		switch t.unit {
		case UnitAuto:
			taken += t.contentSize
		case UnitPixel:
			taken += t.measureSize
		case UnitStar:
			stars = append(stars, t)
			loadStarWeight(t, t.contentSize)
		}
	}
	*buf = stars
	if len(stars) == 0 {
		return
	}
	accumulateWeights(stars)

	for _, t := range stars {
		weight := t.weight
		size := t.contentSize
		if !layout.IsZero(weight) {
			share := math.Max(avail-taken, 0) * (weight / t.sizeCache)
			size = math.Max(t.contentSize, math.Min(share, t.maxSize))
		}
		t.measureSize = size
		taken += size
	}
}

// finalizeTracks computes each track's arranged size and position for the
// final size of the axis. Tracks use their declared units again. When the
// tracks cannot fit, they shrink toward their content minimums, those with
// the least slack first.
func finalizeTracks(tracks []*TrackDefinition, final float64, buf *[]*TrackDefinition) {
	stars := (*buf)[:0]
	var used float64
	for _, t := range tracks {
		t.unit = t.length.Unit
		switch t.unit {
		case UnitStar:
			stars = append(stars, t)
			loadStarWeight(t, t.contentSize)
		default:
			size := t.contentSize
			if t.unit == UnitPixel {
				size = t.length.Value
			}
			t.sizeCache = math.Max(t.contentSize, math.Min(size, t.maxSize))
			used += t.sizeCache
		}
	}

	if len(stars) > 0 {
		accumulateWeights(stars)
		for _, t := range stars {
			weight := t.weight
			size := t.contentSize
			if !layout.IsZero(weight) {
				share := math.Max(final-used, 0) * (weight / t.sizeCache)
				size = math.Max(t.contentSize, math.Min(share, t.maxSize))
			}
			t.sizeCache = size
			used += size
		}
	}

	if used > final && !layout.AreClose(used, final) {
		order := append(stars[:0], tracks...)
		slices.SortStableFunc(order, func(a, b *TrackDefinition) int {
			return cmp.Compare(a.sizeCache-a.contentSize, b.sizeCache-b.contentSize)
		})
		deficit := final - used
		for i, t := range order {
			size := t.sizeCache + deficit/float64(len(order)-i)
			size = math.Min(math.Max(size, t.contentSize), t.sizeCache)
			deficit -= size - t.sizeCache
			t.sizeCache = size
		}
		stars = order
	}
	*buf = stars

	var pos float64
	for _, t := range tracks {
		t.position = pos
		t.actualSize = t.sizeCache
		pos += t.sizeCache
	}
}

// loadStarWeight stores the clipped weight and the max/weight ratio in
// sizeCache, the key stars are resolved by.
func loadStarWeight(t *TrackDefinition, minSize float64) {
	weight := t.length.Value
	if layout.IsZero(weight) {
		t.weight = 0
		t.sizeCache = 0
		return
	}
	weight = math.Min(weight, starClip)
	t.weight = weight
	t.sizeCache = math.Min(math.Max(minSize, t.maxSize), starClip) / weight
}

// accumulateWeights sorts stars by max/weight and replaces each sizeCache
// with the total weight of itself and every star after it.
func accumulateWeights(stars []*TrackDefinition) {
	slices.SortStableFunc(stars, func(a, b *TrackDefinition) int {
		return cmp.Compare(a.sizeCache, b.sizeCache)
	})
	var total float64
	for i := len(stars) - 1; i >= 0; i-- {
		total += stars[i].weight
		stars[i].sizeCache = total
	}
}
