package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC r" for SPC then r.
// Single keys: "q", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help bar.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the next key of every binding under currentSeq with its
// description. An empty currentSeq means "just pressed SPC". Keys that open a
// deeper level are shown with a trailing ellipsis.
func (r *KeybindRegistry) LeaderHints(currentSeq string) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		key := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			key = parts[0]
		}
		if r.HasPrefix(prefix + key) {
			out[key] = key + "…"
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[key] = d
		} else {
			out[key] = seq
		}
	}
	return out
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true the key belonged to the keybind system and must not
// reach the grid.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the pending leader sequence, e.g. "SPC" or "SPC c".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
