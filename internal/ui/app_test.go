package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, configPath string) (*AppModel, tea.Model) {
	t.Helper()
	a := NewAppModel(newTestGridView(t, 6, 3), configPath, nil)
	return a, a.AsTeaModel()
}

// drive sends msg and then feeds every message its command produces back
// into the model, the way the Bubble Tea runtime would.
func drive(m tea.Model, msg tea.Msg) tea.Model {
	for msg != nil {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd == nil {
			return m
		}
		msg = cmd()
	}
	return m
}

func TestApp_KeysReachGrid(t *testing.T) {
	a, m := newTestApp(t, "")
	drive(m, keyMsg("l"))
	assert.Equal(t, 1, a.Grid.Board().Current())
}

func TestApp_QuitKeys(t *testing.T) {
	a, m := newTestApp(t, "")
	for _, k := range []string{"q", "ctrl+c"} {
		assert.Nil(t, a.KeyHandler.Registry.Lookup(k), "%s is a grid key", k)
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestApp_LeaderShiftSequence(t *testing.T) {
	a, m := newTestApp(t, "")

	drive(m, keyMsg(" "))
	assert.Contains(t, m.View(), "SPC")
	assert.Contains(t, m.View(), "l…")

	drive(m, keyMsg("l"))
	assert.Equal(t, 0, a.Grid.Board().Current(), "partial sequence does not move")
	drive(m, keyMsg("2"))
	assert.Equal(t, 2, a.Grid.Board().Current())
	assert.False(t, a.KeyHandler.LeaderWaiting)

	drive(m, keyMsg(" "))
	drive(m, keyMsg("j"))
	drive(m, keyMsg("3"))
	assert.Equal(t, 2, a.Grid.Board().Current())
	assert.True(t, a.Grid.Blocked())
}

func TestApp_LeaderSequenceDropsCountPrefix(t *testing.T) {
	a := NewAppModel(newTestGridView(t, 9, 9), "", nil)
	m := a.AsTeaModel()

	for _, k := range []string{"3", " ", "l", "2"} {
		m = drive(m, keyMsg(k))
	}
	assert.Equal(t, 2, a.Grid.Board().Current())

	drive(m, keyMsg("l"))
	assert.Equal(t, 3, a.Grid.Board().Current())
}

func TestApp_ReloadFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: 2\nitems: [p, q, r, s]\n"), 0o644))
	a, m := newTestApp(t, path)

	drive(m, keyMsg(" "))
	drive(m, keyMsg("r"))

	g := a.Grid.Board().Grid()
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 2, g.Columns())
	tile, _ := g.Tile(1)
	assert.Equal(t, "q", tile.Data())
}

func TestApp_ReloadFailureShowsStatus(t *testing.T) {
	a, m := newTestApp(t, filepath.Join(t.TempDir(), "missing.yaml"))
	drive(m, ReloadMsg{})
	assert.True(t, a.Grid.Blocked())
	assert.Contains(t, a.Grid.Status(), "reload failed")
	assert.Equal(t, 6, a.Grid.Board().Grid().Len())
}

func TestApp_ReloadWithoutConfigIsNoop(t *testing.T) {
	a, m := newTestApp(t, "")
	_, cmd := m.Update(ReloadMsg{})
	assert.Nil(t, cmd)
	assert.Nil(t, a.KeyHandler.Registry.Lookup("SPC r"))
}
