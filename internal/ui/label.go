package ui

import "github.com/mattn/go-runewidth"

// truncateEllipsis is appended when a label does not fit its tile.
const truncateEllipsis = "…"

// truncateLabel shortens s to at most maxWidth terminal columns, counting
// wide runes as two.
func truncateLabel(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= runewidth.StringWidth(truncateEllipsis) {
		return truncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, truncateEllipsis)
}
