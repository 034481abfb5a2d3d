package ui

import (
	"strconv"

	"griddle/internal/grid"
	"griddle/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// AppModel is the root model. Keys go to the leader-key handler first and
// fall through to the grid, which owns the plain q and ctrl+c quit keys.
type AppModel struct {
	Grid       *GridView
	KeyHandler *KeyHandler
	ConfigPath string // reloaded by SPC r; empty disables reload
	Logger     *zap.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel wires the default leader bindings around view.
func NewAppModel(view *GridView, configPath string, logger *zap.Logger) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	if configPath != "" {
		reg.BindWithDesc("SPC r", func() tea.Msg { return ReloadMsg{} }, "Reload config")
	}
	bindShiftSequences(reg)
	return &AppModel{
		Grid:       view,
		KeyHandler: NewKeyHandler(reg),
		ConfigPath: configPath,
		Logger:     logging.OrNop(logger),
	}
}

// bindShiftSequences adds "SPC <dir> <n>" jumps of two and three tiles.
func bindShiftSequences(reg *KeybindRegistry) {
	keys := map[string]grid.Direction{"h": grid.Left, "l": grid.Right, "k": grid.Up, "j": grid.Down}
	for k, d := range keys {
		for _, n := range []int{2, 3} {
			msg := ShiftMsg{Direction: d, Distance: n}
			reg.BindWithDesc("SPC "+k+" "+strconv.Itoa(n),
				func() tea.Msg { return msg },
				d.String()+" ×"+strconv.Itoa(n))
		}
	}
}

// ShiftMsg moves the current tile; it is produced by leader sequences.
type ShiftMsg struct {
	Direction grid.Direction
	Distance  int
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Grid.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReloadMsg:
		if a.ConfigPath == "" {
			return a, nil
		}
		return a, loadConfigCmd(a.ConfigPath)
	case reloadFailedMsg:
		a.Logger.Warn("config reload failed", zap.Error(msg.err))
		a.Grid.setStatus("reload failed: "+msg.err.Error(), true)
		return a, nil
	case ShiftMsg:
		a.Grid.shift(msg.Direction, msg.Distance)
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				a.Grid.clearCount()
				return a, keyCmd
			}
		}
	}

	v, cmd := a.Grid.Update(msg)
	if g, ok := v.(*GridView); ok {
		a.Grid = g
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Grid.View()
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	}
	return base
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
