package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_HitTest(t *testing.T) {
	wide := newTestElement(0, 0, WithName("wide"), WithCell(1, 0), WithSpan(1, 2))
	topLeft := newTestElement(0, 0, WithName("top-left"), WithCell(0, 0))
	topRight := newTestElement(0, 0, WithName("top-right"), WithCell(0, 1))
	over := newTestElement(0, 0, WithName("over"), WithCell(1, 1))

	g := NewGrid(
		WithColumns(Pixels(50), Pixels(50)),
		WithRows(Pixels(50), Pixels(50)),
		WithChildren(wide, topLeft, topRight, over),
	)
	Layout(g, Sz(150, 100))

	type tc struct {
		p    Point
		want Element
	}

	tests := map[string]tc{
		"top left cell":           {p: Pt(10, 10), want: topLeft},
		"top right cell":          {p: Pt(60, 10), want: topRight},
		"later child wins":        {p: Pt(75, 75), want: over},
		"spanning child":          {p: Pt(25, 75), want: wide},
		"past the tracks":         {p: Pt(120, 10), want: nil},
		"outside the grid bounds": {p: Pt(-1, 10), want: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := g.HitTest(tt.p)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, tt.want, got)
		})
	}
}

func TestGrid_HitTestBackground(t *testing.T) {
	g := NewGrid(WithColumns(Pixels(10)), WithBackground(Blue))
	Layout(g, Sz(40, 10))

	assert.Same(t, g, g.HitTest(Pt(30, 5)), "a painted grid catches points outside its children")
}

func TestGrid_HitTestSkipsHidden(t *testing.T) {
	under := newTestElement(0, 0)
	hidden := newTestElement(0, 0, WithVisibility(Hidden))
	g := NewGrid(WithChildren(under, hidden))
	Layout(g, Sz(10, 10))

	assert.Same(t, under, g.HitTest(Pt(5, 5)))
}

func TestGrid_DrawBatchesClips(t *testing.T) {
	g := NewGrid(
		WithColumns(Pixels(10), Pixels(10)),
		WithChildren(
			newTestElement(0, 0, WithCell(0, 0)),
			newTestElement(0, 0, WithCell(0, 0)),
			newTestElement(0, 0, WithCell(0, 1)),
			newTestElement(0, 0, WithCell(0, 0)),
		),
	)
	Layout(g, Sz(20, 20))

	rc := &recordingContext{}
	Render(g, rc)

	want := []string{
		"offset 0,0",
		"clip 0,0 10x20",
		"offset 0,0", "unoffset",
		"offset 0,0", "unoffset",
		"unclip",
		"clip 10,0 10x20",
		"offset 10,0", "unoffset",
		"unclip",
		"clip 0,0 10x20",
		"offset 0,0", "unoffset",
		"unclip",
		"unoffset",
	}
	assert.Equal(t, want, rc.ops)
}

func TestGrid_DrawSkipsCollapsedChildren(t *testing.T) {
	g := NewGrid(WithChildren(
		newTestElement(0, 0, WithVisibility(Collapsed)),
		NewBox("x"),
	))
	Layout(g, Sz(4, 1))

	rc := &recordingContext{}
	Render(g, rc)

	assert.Equal(t, 1, rc.count("clip 0,0 4x1"))
	assert.Equal(t, 1, rc.count(`text 0,0 4x1 "x"`))
}

func TestGrid_DrawGridLines(t *testing.T) {
	g := NewGrid(
		WithColumns(Pixels(4), Star(1)),
		WithRows(Pixels(2), Pixels(2)),
		WithGridLines(),
	)
	Layout(g, Sz(10, 4))

	rc := &recordingContext{}
	Render(g, rc)

	assert.Equal(t, []string{
		"offset 0,0",
		"stroke 0,0 4x4",
		"stroke 4,0 6x4",
		"stroke 0,0 10x2",
		"stroke 0,2 10x2",
		"unoffset",
	}, rc.ops)
}

func TestGrid_DrawBeforeLayout(t *testing.T) {
	g := NewGrid(WithChildren(NewBox("x")))
	Layout(g, Sz(4, 1))
	require.NoError(t, g.Add(NewBox("y")))

	rc := &recordingContext{}
	assert.NotPanics(t, func() { Render(g, rc) })
}

func TestGrid_ChildrenSwappedBeforeLayout(t *testing.T) {
	removed := newTestElement(0, 0)
	g := NewGrid(WithColumns(Pixels(10)), WithRows(Pixels(10)), WithChildren(removed))
	Layout(g, Sz(10, 10))
	require.Same(t, removed, g.HitTest(Pt(5, 5)))

	require.True(t, g.Remove(removed))
	require.NoError(t, g.Add(newTestElement(0, 0)))

	assert.Nil(t, g.HitTest(Pt(5, 5)), "a detached child is never hit")

	rc := &recordingContext{}
	Render(g, rc)
	assert.Equal(t, []string{"offset 0,0", "offset 0,0", "unoffset", "unoffset"}, rc.ops)
}
