package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help box shown after SPC.
// When the handler holds a partial sequence (e.g. "SPC c") it lists the
// next level instead.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	hints := keyHandler.Registry.LeaderHints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	// Sort keys for stable display
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.HelpKey
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	content := Styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1).
		Render(content)
}
