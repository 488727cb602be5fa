// Package ui provides a retained-mode layout core for Go.
//
// Elements form a tree. Each layout pass measures the tree top-down against
// an available size, then arranges it into final rectangles. Results are
// cached per element and invalidated up the parent chain when a property
// that affects layout changes. Panels arrange their children: StackPanel,
// DockPanel, Canvas, and Grid with pixel, auto and star tracks. Drawing goes
// through a DrawingContext; CellContext renders to a terminal cell Buffer.
package ui
