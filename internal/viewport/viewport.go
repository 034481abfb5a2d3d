// Package viewport computes which part of a tile grid is visible when the
// renderer shows only VisibleColumns x VisibleRows tiles at a time.
package viewport

// Window describes a visible region over a grid of Columns x Rows tiles.
type Window struct {
	Columns        int
	Rows           int
	VisibleColumns int
	VisibleRows    int
}

// Extent returns the visible size in tiles, never larger than the grid.
func (w Window) Extent() (cols, rows int) {
	return min(max(w.VisibleColumns, 1), max(w.Columns, 0)),
		min(max(w.VisibleRows, 1), max(w.Rows, 0))
}

// OriginFor returns the top-left tile coordinate of the window after
// scrolling to (x, y). The destination becomes the top-left tile unless that
// would scroll past the last column or row, in which case the window stops
// at the grid edge.
func (w Window) OriginFor(x, y int) (ox, oy int) {
	return clamp(x, 0, w.Columns-max(w.VisibleColumns, 1)),
		clamp(y, 0, w.Rows-max(w.VisibleRows, 1))
}

// Contains reports whether (x, y) is visible with the window at origin
// (ox, oy).
func (w Window) Contains(ox, oy, x, y int) bool {
	cols, rows := w.Extent()
	return x >= ox && x < ox+cols && y >= oy && y < oy+rows
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
