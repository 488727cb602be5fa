package ui

import (
	"math"

	"github.com/grindlemire/go-ui/internal/property"
)

// Attached properties are declared by the panel that reads them and stored
// on the child. Changing one invalidates the parent's measure.
var (
	rowProp        = attachedInt("Grid.Row", 0)
	columnProp     = attachedInt("Grid.Column", 0)
	rowSpanProp    = attachedInt("Grid.RowSpan", 1)
	columnSpanProp = attachedInt("Grid.ColumnSpan", 1)
	dockProp       = attached(property.NewComparable("DockPanel.Dock", DockLeft))
	leftProp       = attachedFloat("Canvas.Left")
	topProp        = attachedFloat("Canvas.Top")
	rightProp      = attachedFloat("Canvas.Right")
	bottomProp     = attachedFloat("Canvas.Bottom")
)

func attached[T any](d *property.Descriptor[T]) *property.Descriptor[T] {
	d.OnChange(func(h property.Holder, _, _ T) {
		if e, ok := h.(Element); ok {
			if p := e.Parent(); p != nil {
				p.InvalidateMeasure()
			}
		}
	})
	return d
}

func attachedInt(name string, def int) *property.Descriptor[int] {
	return attached(property.NewComparable(name, def))
}

// attachedFloat declares a float property whose default is NaN (unset).
func attachedFloat(name string) *property.Descriptor[float64] {
	return attached(property.New(name, math.NaN(), sameFloat))
}

// GetRow returns the grid row of e.
func GetRow(e Element) int { return rowProp.Get(e) }

// SetRow places e in a grid row. Out-of-range rows are clamped at layout time.
func SetRow(e Element, row int) { rowProp.Set(e, row) }

// GetColumn returns the grid column of e.
func GetColumn(e Element) int { return columnProp.Get(e) }

// SetColumn places e in a grid column.
func SetColumn(e Element, col int) { columnProp.Set(e, col) }

// GetRowSpan returns how many rows e spans.
func GetRowSpan(e Element) int { return rowSpanProp.Get(e) }

// SetRowSpan sets how many rows e spans. Values below 1 are clamped at layout time.
func SetRowSpan(e Element, n int) { rowSpanProp.Set(e, n) }

// GetColumnSpan returns how many columns e spans.
func GetColumnSpan(e Element) int { return columnSpanProp.Get(e) }

// SetColumnSpan sets how many columns e spans.
func SetColumnSpan(e Element, n int) { columnSpanProp.Set(e, n) }

// GetDock returns the edge e docks to in a DockPanel.
func GetDock(e Element) Dock { return dockProp.Get(e) }

// SetDock sets the edge e docks to in a DockPanel.
func SetDock(e Element, d Dock) { dockProp.Set(e, d) }

// GetLeft returns the Canvas left offset of e, or NaN when unset.
func GetLeft(e Element) float64 { return leftProp.Get(e) }

// SetLeft sets the Canvas left offset of e. NaN unsets it.
func SetLeft(e Element, v float64) { leftProp.Set(e, v) }

// GetTop returns the Canvas top offset of e, or NaN when unset.
func GetTop(e Element) float64 { return topProp.Get(e) }

// SetTop sets the Canvas top offset of e. NaN unsets it.
func SetTop(e Element, v float64) { topProp.Set(e, v) }

// GetRight returns the Canvas right offset of e, or NaN when unset.
func GetRight(e Element) float64 { return rightProp.Get(e) }

// SetRight sets the Canvas right offset of e. NaN unsets it.
func SetRight(e Element, v float64) { rightProp.Set(e, v) }

// GetBottom returns the Canvas bottom offset of e, or NaN when unset.
func GetBottom(e Element) float64 { return bottomProp.Get(e) }

// SetBottom sets the Canvas bottom offset of e. NaN unsets it.
func SetBottom(e Element, v float64) { bottomProp.Set(e, v) }
