// Package nav tracks the current tile of a grid and moves it along the
// adjacency graph, notifying observers on every transition.
//
// Callbacks run synchronously inside Goto. A callback that inserts or removes
// tiles while a transition is in flight leaves the controller in an
// unspecified state; avoiding that is the caller's job.
package nav

import (
	"fmt"

	"griddle/internal/grid"
)

// Outcome reports whether a navigation request moved the current tile.
type Outcome int

const (
	Moved Outcome = iota
	Blocked
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Context is what enter and exit callbacks observe: the grid and the tile
// current at the time of the call.
type Context[T any] struct {
	Grid  *grid.Grid[T]
	Index int
	Tile  *grid.Tile[T]
}

// Callback observes a transition.
type Callback[T any] func(Context[T])

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithOnEnter registers the callback fired after the current index changes.
func WithOnEnter[T any](fn Callback[T]) Option[T] {
	return func(c *Controller[T]) { c.onEnter = fn }
}

// WithOnExit registers the callback fired before the current index changes.
func WithOnExit[T any](fn Callback[T]) Option[T] {
	return func(c *Controller[T]) { c.onExit = fn }
}

// Controller holds the current tile index of a grid.
type Controller[T any] struct {
	grid    *grid.Grid[T]
	current int
	onEnter Callback[T]
	onExit  Callback[T]
}

// New returns a controller positioned on tile 0.
func New[T any](g *grid.Grid[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{grid: g}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the current tile index. It is 0 for an empty grid.
func (c *Controller[T]) Current() int { return c.current }

// CurrentTile returns the current tile, or false for an empty grid.
func (c *Controller[T]) CurrentTile() (*grid.Tile[T], bool) {
	return c.grid.Tile(c.current)
}

// Goto makes dest the current tile. The exit callback sees the old tile, the
// enter callback the new one. An out-of-range dest returns Blocked with an
// error wrapping grid.ErrOutOfRange and changes nothing.
func (c *Controller[T]) Goto(dest int) (Outcome, error) {
	if dest < 0 || dest >= c.grid.Len() {
		return Blocked, fmt.Errorf("goto %d (len %d): %w", dest, c.grid.Len(), grid.ErrOutOfRange)
	}
	if c.onExit != nil {
		c.onExit(c.context())
	}
	c.current = dest
	if c.onEnter != nil {
		c.onEnter(c.context())
	}
	return Moved, nil
}

// Shift moves one tile in direction d.
func (c *Controller[T]) Shift(d grid.Direction) Outcome {
	return c.ShiftBy(d, 1)
}

// ShiftBy moves distance tiles in direction d. The move is all or nothing:
// if the path runs off the grid the result is Blocked and no callback fires.
// A completed move fires exit and enter once, not once per step.
func (c *Controller[T]) ShiftBy(d grid.Direction, distance int) Outcome {
	dest, ok := c.Resolve(d, distance)
	if !ok {
		return Blocked
	}
	out, err := c.Goto(dest)
	if err != nil {
		return Blocked
	}
	return out
}

// Resolve returns the index ShiftBy would land on without moving.
func (c *Controller[T]) Resolve(d grid.Direction, distance int) (int, bool) {
	if distance < 1 {
		return 0, false
	}
	i := c.current
	if _, ok := c.grid.Tile(i); !ok {
		return 0, false
	}
	for range distance {
		next, ok := c.grid.Neighbor(i, d).Get()
		if !ok {
			return 0, false
		}
		i = next
	}
	return i, true
}

// CanShift reports whether ShiftBy(d, distance) would move.
func (c *Controller[T]) CanShift(d grid.Direction, distance int) bool {
	_, ok := c.Resolve(d, distance)
	return ok
}

// Sync pulls the current index back inside the grid after tiles were
// removed. It fires no callbacks and reports whether the index changed.
// Insertions need no sync: the index stays valid, though it may now name a
// different item.
func (c *Controller[T]) Sync() bool {
	n := c.grid.Len()
	switch {
	case n == 0 && c.current != 0:
		c.current = 0
		return true
	case n > 0 && c.current >= n:
		c.current = n - 1
		return true
	}
	return false
}

func (c *Controller[T]) context() Context[T] {
	t, _ := c.grid.Tile(c.current)
	return Context[T]{Grid: c.grid, Index: c.current, Tile: t}
}
