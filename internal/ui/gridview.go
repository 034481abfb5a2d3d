package ui

import (
	"fmt"
	"strconv"
	"strings"

	"griddle/internal/board"
	"griddle/internal/grid"
	"griddle/internal/logging"
	"griddle/internal/nav"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// GridOptions configures a GridView.
type GridOptions struct {
	Items          []string
	Columns        int
	VisibleColumns int
	VisibleRows    int
	TileWidth      int // cells, border included
	TileHeight     int // cells, border included

	Logger *zap.Logger
	Tracer trace.Tracer
}

// GridView draws the visible window of a board and navigates it.
type GridView struct {
	board  *board.Board[string]
	labels map[*grid.Tile[string]]string
	keys   KeyMap
	help   help.Model
	logger *zap.Logger

	tileWidth  int
	tileHeight int

	count    int    // pending numeric prefix for the next move
	lastExit string // label of the tile most recently left
	status   string
	blocked  bool
	added    int // tiles created with the add key, for labels
}

// Ensure GridView implements View.
var _ View = (*GridView)(nil)

// NewGridView builds the board and the labels for its tiles.
func NewGridView(opts GridOptions) (*GridView, error) {
	v := &GridView{
		labels:     make(map[*grid.Tile[string]]string),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logging.OrNop(opts.Logger),
		tileWidth:  max(opts.TileWidth, 3),
		tileHeight: max(opts.TileHeight, 3),
	}
	v.help.Styles.ShortKey = Styles.HelpKey
	v.help.Styles.FullKey = Styles.HelpKey

	b, err := board.New(board.Config[string]{
		Items:          opts.Items,
		Columns:        opts.Columns,
		VisibleColumns: opts.VisibleColumns,
		VisibleRows:    opts.VisibleRows,
		Render:         v.renderTile,
		OnExit:         v.onExit,
		OnEnter:        v.onEnter,
		Logger:         v.logger,
		Tracer:         opts.Tracer,
	})
	if err != nil {
		return nil, err
	}
	v.board = b
	return v, nil
}

// Board returns the board behind the view.
func (v *GridView) Board() *board.Board[string] { return v.board }

// Status returns the current status line text, unstyled.
func (v *GridView) Status() string { return v.status }

// Blocked reports whether the last move was refused.
func (v *GridView) Blocked() bool { return v.blocked }

func (v *GridView) renderTile(t *grid.Tile[string]) {
	v.labels[t] = truncateLabel(t.Data(), v.tileWidth-2)
}

func (v *GridView) dispose(tiles []*grid.Tile[string]) {
	for _, t := range tiles {
		delete(v.labels, t)
	}
}

func (v *GridView) onExit(ctx nav.Context[string]) {
	if ctx.Tile != nil {
		v.lastExit = ctx.Tile.Data()
	}
}

func (v *GridView) onEnter(ctx nav.Context[string]) {
	v.status = fmt.Sprintf("%s → %s", v.lastExit, ctx.Tile.Data())
}

// Init implements View.
func (v *GridView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
		return v, nil
	case ItemsReloadedMsg:
		v.reload(msg)
		return v, nil
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *GridView) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' && (v.count > 0 || s != "0") {
		v.count = min(v.count*10+int(s[0]-'0'), 999)
		return nil
	}
	distance := max(v.count, 1)
	v.count = 0

	switch {
	case key.Matches(msg, v.keys.Left):
		v.shift(grid.Left, distance)
	case key.Matches(msg, v.keys.Right):
		v.shift(grid.Right, distance)
	case key.Matches(msg, v.keys.Up):
		v.shift(grid.Up, distance)
	case key.Matches(msg, v.keys.Down):
		v.shift(grid.Down, distance)
	case key.Matches(msg, v.keys.First):
		v.jump(0)
	case key.Matches(msg, v.keys.Last):
		v.jump(v.board.Grid().Len() - 1)
	case key.Matches(msg, v.keys.Add):
		v.added++
		label := "new " + strconv.Itoa(v.added)
		v.board.Add(label)
		v.setStatus("added "+label, false)
	case key.Matches(msg, v.keys.Remove):
		v.removeCurrent()
	case key.Matches(msg, v.keys.Wider):
		v.resize(v.board.Grid().Columns() + 1)
	case key.Matches(msg, v.keys.Narrower):
		v.resize(v.board.Grid().Columns() - 1)
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
	case key.Matches(msg, v.keys.Quit):
		return tea.Quit
	}
	return nil
}

func (v *GridView) shift(d grid.Direction, distance int) {
	if v.board.ShiftBy(d, distance) == nav.Blocked {
		msg := "blocked: " + d.String()
		if distance > 1 {
			msg += " ×" + strconv.Itoa(distance)
		}
		v.setStatus(msg, true)
		return
	}
	v.blocked = false
}

func (v *GridView) jump(dest int) {
	if _, err := v.board.Goto(dest); err != nil {
		v.setStatus("no tiles", true)
		return
	}
	v.blocked = false
}

func (v *GridView) removeCurrent() {
	if v.board.Grid().Len() == 0 {
		v.setStatus("no tiles", true)
		return
	}
	removed, err := v.board.Remove(v.board.Current(), 1)
	if err != nil {
		v.logger.Warn("remove failed", zap.Error(err))
		v.setStatus(err.Error(), true)
		return
	}
	v.dispose(removed)
	v.setStatus("removed "+removed[0].Data(), false)
}

func (v *GridView) resize(columns int) {
	if err := v.board.Resize(columns); err != nil {
		v.setStatus("columns must be at least 1", true)
		return
	}
	v.setStatus(fmt.Sprintf("%d columns", columns), false)
}

func (v *GridView) reload(msg ItemsReloadedMsg) {
	v.count = 0
	removed, err := v.board.Replace(msg.Columns, msg.Items...)
	v.dispose(removed)
	if err != nil {
		v.logger.Warn("reload failed", zap.Int("columns", msg.Columns), zap.Error(err))
		v.setStatus("reload failed: "+err.Error(), true)
		return
	}
	v.setStatus(fmt.Sprintf("reloaded %d tiles", len(msg.Items)), false)
}

// clearCount drops a pending numeric prefix.
func (v *GridView) clearCount() { v.count = 0 }

func (v *GridView) setStatus(s string, blocked bool) {
	v.status = s
	v.blocked = blocked
}

// View implements View.
func (v *GridView) View() string {
	g := v.board.Grid()

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("griddle  %d tiles · %d×%d", g.Len(), g.Columns(), g.Rows())))
	b.WriteString("\n")
	if g.Len() == 0 {
		b.WriteString(Styles.Hint.Render("No tiles. Press a to add one."))
	} else {
		b.WriteString(v.renderWindow())
	}
	b.WriteString("\n")
	b.WriteString(v.renderStatus())
	b.WriteString("\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

func (v *GridView) renderWindow() string {
	g := v.board.Grid()
	w := v.board.Viewport()
	ox, oy := v.board.Origin()
	cols, rows := w.Extent()

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		cells := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			cells = append(cells, v.renderCell(g, ox+c, oy+r))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *GridView) renderCell(g *grid.Grid[string], x, y int) string {
	inner := func(s lipgloss.Style) lipgloss.Style {
		return s.Width(v.tileWidth - 2).Height(v.tileHeight - 2)
	}
	i, ok := g.IndexAt(x, y)
	if !ok {
		return inner(Styles.TileEmpty).Render("")
	}
	t, _ := g.Tile(i)
	if i == v.board.Current() {
		return inner(Styles.TileCurrent).Render(v.labels[t])
	}
	return inner(Styles.Tile).Render(v.labels[t])
}

func (v *GridView) renderStatus() string {
	t, ok := v.board.CurrentTile()
	pos := "-"
	if ok {
		pos = fmt.Sprintf("%d/%d (%d,%d)", t.Index()+1, v.board.Grid().Len(), t.X(), t.Y())
	}
	line := Styles.Status.Render(pos)
	if v.count > 0 {
		line += " " + Styles.Hint.Render(strconv.Itoa(v.count))
	}
	if v.status != "" {
		style := Styles.Hint
		if v.blocked {
			style = Styles.Blocked
		}
		line += "  " + style.Render(v.status)
	}
	return line
}
