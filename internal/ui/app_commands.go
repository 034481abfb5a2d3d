package ui

import (
	"griddle/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// loadConfigCmd re-reads path off the update loop and returns the items as
// an ItemsReloadedMsg.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(path)
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		return ItemsReloadedMsg{Items: cfg.Items, Columns: cfg.Columns}
	}
}
