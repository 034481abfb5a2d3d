// Package board wires a grid, its navigation controller and the renderer's
// callbacks into one value that a view can own.
package board

import (
	"context"
	"fmt"

	"griddle/internal/grid"
	"griddle/internal/logging"
	"griddle/internal/nav"
	"griddle/internal/viewport"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// RenderFunc prepares whatever the renderer attaches to a new tile.
type RenderFunc[T any] func(*grid.Tile[T])

// Config is everything needed to build a Board.
type Config[T any] struct {
	Items          []T
	Columns        int
	VisibleColumns int
	VisibleRows    int

	Render  RenderFunc[T]
	OnEnter nav.Callback[T]
	OnExit  nav.Callback[T]

	Logger *zap.Logger
	Tracer trace.Tracer
}

// Board owns a grid and the controller navigating it. Like its parts it is
// single-goroutine only.
type Board[T any] struct {
	grid   *grid.Grid[T]
	nav    *nav.Controller[T]
	render RenderFunc[T]
	logger *zap.Logger
	tracer trace.Tracer
}

// New lays out cfg.Items and renders each tile.
func New[T any](cfg Config[T]) (*Board[T], error) {
	g, err := grid.New(cfg.Items, grid.Options{
		Columns:        cfg.Columns,
		VisibleColumns: cfg.VisibleColumns,
		VisibleRows:    cfg.VisibleRows,
	})
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	var opts []nav.Option[T]
	if cfg.OnEnter != nil {
		opts = append(opts, nav.WithOnEnter(cfg.OnEnter))
	}
	if cfg.OnExit != nil {
		opts = append(opts, nav.WithOnExit(cfg.OnExit))
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	b := &Board[T]{
		grid:   g,
		nav:    nav.New(g, opts...),
		render: cfg.Render,
		logger: logging.OrNop(cfg.Logger),
		tracer: tracer,
	}
	b.renderAll(b.render, g.Tiles())
	b.logger.Debug("board created",
		zap.Int("tiles", g.Len()),
		zap.Int("columns", g.Columns()))
	return b, nil
}

// Grid exposes the layout for rendering. Mutate it through the Board so the
// current index stays valid.
func (b *Board[T]) Grid() *grid.Grid[T] { return b.grid }

// Current returns the current tile index.
func (b *Board[T]) Current() int { return b.nav.Current() }

// CurrentTile returns the current tile, or false when the board is empty.
func (b *Board[T]) CurrentTile() (*grid.Tile[T], bool) { return b.nav.CurrentTile() }

// CanShift reports whether a shift would move.
func (b *Board[T]) CanShift(d grid.Direction, distance int) bool {
	return b.nav.CanShift(d, distance)
}

// Add appends tiles for items using the board's render function.
func (b *Board[T]) Add(items ...T) []*grid.Tile[T] {
	return b.AddWith(nil, items...)
}

// AddWith appends tiles rendered with render instead of the board default.
// A nil render falls back to the default.
func (b *Board[T]) AddWith(render RenderFunc[T], items ...T) []*grid.Tile[T] {
	added := b.grid.Append(items...)
	b.renderAll(render, added)
	b.logger.Debug("tiles added", zap.Int("count", len(added)), zap.Int("len", b.grid.Len()))
	return added
}

// Insert adds tiles for items starting at index at. The current index is
// left as is, so inserting at or before it puts a different item under it.
// No callback fires.
func (b *Board[T]) Insert(at int, items ...T) ([]*grid.Tile[T], error) {
	added, err := b.grid.Insert(at, items...)
	if err != nil {
		return nil, err
	}
	b.renderAll(nil, added)
	b.logger.Debug("tiles inserted", zap.Int("at", at), zap.Int("count", len(added)))
	return added, nil
}

// Remove deletes count tiles at index at and returns them for disposal. The
// current index is clamped into the smaller grid without notifying.
func (b *Board[T]) Remove(at, count int) ([]*grid.Tile[T], error) {
	removed, err := b.grid.Remove(at, count)
	if err != nil {
		return nil, err
	}
	if b.nav.Sync() {
		b.logger.Debug("current index clamped", zap.Int("current", b.nav.Current()))
	}
	b.logger.Debug("tiles removed", zap.Int("at", at), zap.Int("count", count), zap.Int("len", b.grid.Len()))
	return removed, nil
}

// Replace swaps every tile for a fresh set built from items, laid out in
// columns columns (0 puts every item in one row). The old tiles are returned
// for disposal and the current index goes back to 0.
func (b *Board[T]) Replace(columns int, items ...T) ([]*grid.Tile[T], error) {
	if columns < 0 {
		return nil, fmt.Errorf("replace: columns=%d: %w", columns, grid.ErrInvalidColumns)
	}
	if columns == 0 {
		columns = max(len(items), 1)
	}
	removed, err := b.Remove(0, b.grid.Len())
	if err != nil {
		return nil, err
	}
	if err := b.grid.SetColumns(columns); err != nil {
		return removed, err
	}
	b.Add(items...)
	b.logger.Debug("tiles replaced",
		zap.Int("removed", len(removed)),
		zap.Int("len", b.grid.Len()),
		zap.Int("columns", columns))
	return removed, nil
}

// Resize changes the column count.
func (b *Board[T]) Resize(columns int) error {
	if err := b.grid.SetColumns(columns); err != nil {
		return err
	}
	b.logger.Debug("board resized", zap.Int("columns", columns), zap.Int("rows", b.grid.Rows()))
	return nil
}

// Goto jumps to dest. See nav.Controller.Goto.
func (b *Board[T]) Goto(dest int) (nav.Outcome, error) {
	_, span := b.tracer.Start(context.Background(), "griddle.goto",
		trace.WithAttributes(
			attribute.Int("griddle.from", b.nav.Current()),
			attribute.Int("griddle.to", dest),
		))
	defer span.End()

	out, err := b.nav.Goto(dest)
	span.SetAttributes(attribute.String("griddle.outcome", out.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger.Warn("goto rejected", zap.Int("to", dest), zap.Error(err))
		return out, err
	}
	b.logger.Debug("goto", zap.Int("to", dest))
	return out, nil
}

// Shift moves one tile in direction d.
func (b *Board[T]) Shift(d grid.Direction) nav.Outcome {
	return b.ShiftBy(d, 1)
}

// ShiftBy moves distance tiles in direction d, all or nothing.
func (b *Board[T]) ShiftBy(d grid.Direction, distance int) nav.Outcome {
	from := b.nav.Current()
	_, span := b.tracer.Start(context.Background(), "griddle.shift",
		trace.WithAttributes(
			attribute.Int("griddle.from", from),
			attribute.String("griddle.direction", d.String()),
			attribute.Int("griddle.distance", distance),
		))
	defer span.End()

	out := b.nav.ShiftBy(d, distance)
	span.SetAttributes(
		attribute.String("griddle.outcome", out.String()),
		attribute.Int("griddle.to", b.nav.Current()),
	)
	b.logger.Debug("shift",
		zap.Stringer("direction", d),
		zap.Int("distance", distance),
		zap.Int("from", from),
		zap.Int("to", b.nav.Current()),
		zap.Stringer("outcome", out))
	return out
}

// Viewport describes the visible window over the current layout.
func (b *Board[T]) Viewport() viewport.Window {
	return viewport.Window{
		Columns:        b.grid.Columns(),
		Rows:           b.grid.Rows(),
		VisibleColumns: b.grid.VisibleColumns(),
		VisibleRows:    b.grid.VisibleRows(),
	}
}

// Origin returns the window origin that brings the current tile into view.
func (b *Board[T]) Origin() (x, y int) {
	t, ok := b.nav.CurrentTile()
	if !ok {
		return 0, 0
	}
	return b.Viewport().OriginFor(t.X(), t.Y())
}

func (b *Board[T]) renderAll(render RenderFunc[T], tiles []*grid.Tile[T]) {
	if render == nil {
		render = b.render
	}
	if render == nil {
		return
	}
	for _, t := range tiles {
		render(t)
	}
}
