package ui

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure_CachesForSameAvailable(t *testing.T) {
	e := newTestElement(30, 10)

	e.Measure(Sz(100, 100))
	e.Measure(Sz(100, 100))
	assert.Equal(t, 1, e.measureCalls, "same available size should hit the cache")

	e.Measure(Sz(80, 100))
	assert.Equal(t, 2, e.measureCalls, "a new available size should re-measure")

	e.InvalidateMeasure()
	assert.False(t, e.IsMeasureValid())
	e.Measure(Sz(80, 100))
	assert.Equal(t, 3, e.measureCalls, "an invalidated element should re-measure")
	assert.True(t, e.IsMeasureValid())
}

func TestArrange_CachesForSameRect(t *testing.T) {
	e := newTestElement(30, 10)
	e.Measure(Sz(100, 100))

	e.Arrange(NewRect(0, 0, 100, 100), ArrangeOptions{})
	e.Arrange(NewRect(0, 0, 100, 100), ArrangeOptions{})
	assert.Equal(t, 1, e.arrangeCalls)

	e.Arrange(NewRect(0, 0, 100, 100), ArrangeOptions{Fill: true})
	assert.Equal(t, 2, e.arrangeCalls, "different options should re-arrange")

	e.InvalidateArrange()
	assert.True(t, e.IsMeasureValid(), "InvalidateArrange keeps the measure")
	e.Arrange(NewRect(0, 0, 100, 100), ArrangeOptions{Fill: true})
	assert.Equal(t, 3, e.arrangeCalls)
	assert.Equal(t, 1, e.measureCalls)
}

func TestArrange_MeasuresFirstWhenNeeded(t *testing.T) {
	e := newTestElement(30, 10)

	e.Arrange(NewRect(0, 0, 50, 40), ArrangeOptions{})
	assert.Equal(t, 1, e.measureCalls)
	assert.Equal(t, Sz(50, 40), e.lastAvailable)
}

func TestInvalidateMeasure_WalksAncestors(t *testing.T) {
	leaf := newTestElement(10, 10)
	mid := NewStackPanel(WithChildren(leaf))
	root := NewStackPanel(WithChildren(mid))
	Layout(root, Sz(100, 100))

	require.True(t, root.IsMeasureValid())
	require.True(t, mid.IsMeasureValid())

	leaf.SetWidth(20)
	assert.False(t, leaf.IsMeasureValid())
	assert.False(t, mid.IsMeasureValid())
	assert.False(t, root.IsMeasureValid())
	assert.False(t, root.IsArrangeValid())

	Layout(root, Sz(100, 100))
	assert.True(t, root.IsMeasureValid())
	assert.Equal(t, 20.0, leaf.DesiredSize().Width)
}

func TestMeasure_RoundTripAfterInvalidation(t *testing.T) {
	leaf := newTestElement(10, 10)
	sibling := newTestElement(10, 10)
	root := NewStackPanel(WithChildren(leaf, sibling))

	Layout(root, Sz(100, 100))
	Layout(root, Sz(100, 100))
	assert.Equal(t, 1, leaf.measureCalls)
	assert.Equal(t, 1, sibling.measureCalls)

	leaf.InvalidateMeasure()
	Layout(root, Sz(100, 100))
	assert.Equal(t, 2, leaf.measureCalls)
	assert.Equal(t, 1, sibling.measureCalls, "a clean sibling is served from its cache")
}

func TestMeasure_DesiredSize(t *testing.T) {
	type tc struct {
		content   Size
		opts      []Option
		available Size
		want      Size
	}

	tests := map[string]tc{
		"content fits": {
			content: Sz(30, 10), available: Sz(100, 100), want: Sz(30, 10),
		},
		"clamped to available": {
			content: Sz(30, 10), available: Sz(20, 5), want: Sz(20, 5),
		},
		"margin added": {
			content: Sz(30, 10), opts: []Option{WithMargin(2)},
			available: Sz(100, 100), want: Sz(34, 14),
		},
		"explicit size wins over content": {
			content: Sz(30, 10), opts: []Option{WithSize(40, 5)},
			available: Sz(100, 100), want: Sz(40, 5),
		},
		"min raises content": {
			content: Sz(30, 10), opts: []Option{WithMinSize(50, 20)},
			available: Sz(100, 100), want: Sz(50, 20),
		},
		"max caps content": {
			content: Sz(30, 10), opts: []Option{WithMaxSize(20, 8)},
			available: Sz(100, 100), want: Sz(20, 8),
		},
		"max caps explicit size": {
			content: Sz(30, 10), opts: []Option{WithWidth(40), WithMaxSize(35, math.Inf(1))},
			available: Sz(100, 100), want: Sz(35, 10),
		},
		"min above max wins": {
			content: Sz(30, 10), opts: []Option{WithMinSize(50, 0), WithMaxSize(20, math.Inf(1))},
			available: Sz(100, 100), want: Sz(50, 10),
		},
		"min exceeds available": {
			content: Sz(30, 10), opts: []Option{WithMinSize(50, 0)},
			available: Sz(40, 100), want: Sz(50, 10),
		},
		"unbounded": {
			content: Sz(30, 10), available: Infinite(), want: Sz(30, 10),
		},
		"collapsed": {
			content: Sz(30, 10), opts: []Option{WithVisibility(Collapsed), WithMargin(3)},
			available: Sz(100, 100), want: Sz(0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newTestElement(tt.content.Width, tt.content.Height, tt.opts...)
			got := e.Measure(tt.available)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
		})
	}
}

func TestMeasure_ConstraintPassedToOverride(t *testing.T) {
	e := newTestElement(10, 10, WithMargin(5), WithMaxSize(50, math.Inf(1)))
	e.Measure(Sz(100, 100))
	assert.Equal(t, Sz(50, 90), e.lastAvailable)
}

func TestArrange_Alignment(t *testing.T) {
	type tc struct {
		h, v Alignment
		opts ArrangeOptions
		want Rect
	}

	tests := map[string]tc{
		"stretch":      {h: AlignStretch, v: AlignStretch, want: NewRect(0, 0, 100, 50)},
		"start":        {h: AlignStart, v: AlignStart, want: NewRect(0, 0, 30, 10)},
		"center":       {h: AlignCenter, v: AlignCenter, want: NewRect(35, 20, 30, 10)},
		"end":          {h: AlignEnd, v: AlignEnd, want: NewRect(70, 40, 30, 10)},
		"mixed":        {h: AlignEnd, v: AlignStretch, want: NewRect(70, 0, 30, 50)},
		"fill ignores": {h: AlignCenter, v: AlignEnd, opts: ArrangeOptions{Fill: true}, want: NewRect(0, 0, 100, 50)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newTestElement(30, 10, WithAlignment(tt.h, tt.v))
			e.Measure(Sz(100, 50))
			e.Arrange(NewRect(0, 0, 100, 50), tt.opts)
			assert.Equal(t, tt.want, e.Bounds())
		})
	}
}

func TestArrange_MarginAndOffset(t *testing.T) {
	e := newTestElement(10, 10, WithMarginTRBL(1, 2, 3, 4), WithAlignment(AlignStart, AlignStart))
	e.Measure(Infinite())
	e.Arrange(NewRect(10, 20, 100, 100), ArrangeOptions{})
	assert.Equal(t, NewRect(14, 21, 10, 10), e.Bounds())
	assert.Equal(t, Sz(10, 10), e.RenderSize())
}

func TestArrange_MaxCentersInStretchSlot(t *testing.T) {
	e := newTestElement(10, 10, WithMaxSize(40, math.Inf(1)))
	e.Measure(Sz(100, 100))
	e.Arrange(NewRect(0, 0, 100, 100), ArrangeOptions{})
	assert.Equal(t, NewRect(30, 0, 40, 100), e.Bounds())
}

func TestStrictMode(t *testing.T) {
	type tc struct {
		run func(e *testElement)
	}

	tests := map[string]tc{
		"NaN available": {run: func(e *testElement) { e.Measure(Sz(math.NaN(), 10)) }},
		"negative available": {run: func(e *testElement) { e.Measure(Sz(10, -1)) }},
		"infinite arrange": {run: func(e *testElement) {
			e.Arrange(NewRect(0, 0, math.Inf(1), 10), ArrangeOptions{})
		}},
	}

	for name, tt := range tests {
		t.Run(name+" panics in strict mode", func(t *testing.T) {
			e := newTestElement(10, 10, WithName("probe"))
			withStrict(func() {
				defer func() {
					rec := recover()
					require.NotNil(t, rec, "expected a panic")
					err, ok := rec.(error)
					require.True(t, ok)
					var ce *ContractError
					require.True(t, errors.As(err, &ce))
					assert.Equal(t, "probe", ce.Element)
				}()
				tt.run(e)
			})
		})
		t.Run(name+" is clamped otherwise", func(t *testing.T) {
			SetStrict(false)
			e := newTestElement(10, 10)
			assert.NotPanics(t, func() { tt.run(e) })
			d := e.DesiredSize()
			assert.False(t, math.IsNaN(d.Width) || math.IsNaN(d.Height))
			assert.GreaterOrEqual(t, d.Width, 0.0)
			assert.GreaterOrEqual(t, d.Height, 0.0)
		})
	}
}

func TestSetters_InvalidateOnlyOnChange(t *testing.T) {
	e := newTestElement(10, 10)
	e.Measure(Sz(50, 50))

	e.SetWidth(math.NaN())
	assert.True(t, e.IsMeasureValid(), "NaN to NaN is not a change")

	e.SetVisibility(Hidden)
	assert.True(t, e.IsMeasureValid(), "Hidden keeps layout")

	e.SetVisibility(Collapsed)
	assert.False(t, e.IsMeasureValid())
}
