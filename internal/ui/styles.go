package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, focused tile border
	ColorHighlight = "205" // Magenta - for the current tile, help keys
	ColorDanger    = "196" // Red - for blocked moves
	ColorMuted     = "241" // Gray - for idle tiles, hints
	ColorText      = "252" // Light gray - for labels
)

// Styles contains the shared style definitions for the grid.
var Styles = struct {
	Title       lipgloss.Style // Bold accent color - header line
	Tile        lipgloss.Style // Idle tile box
	TileCurrent lipgloss.Style // The current tile
	TileEmpty   lipgloss.Style // Window cell past the last tile
	Status      lipgloss.Style // Position and last transition
	Blocked     lipgloss.Style // Blocked-move notice
	Hint        lipgloss.Style // Help/hint text
	HelpKey     lipgloss.Style // Key names in help bars
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Tile: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center, lipgloss.Center),
	TileCurrent: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Align(lipgloss.Center, lipgloss.Center),
	TileEmpty: lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Blocked: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
}
