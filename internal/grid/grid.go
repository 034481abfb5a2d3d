// Package grid arranges an ordered sequence of items into a row-major tile
// grid with a fixed column count and computes the four-neighbor adjacency
// graph used for directional navigation.
//
// A Grid is not safe for concurrent use. It is meant to be driven from a
// single goroutine, typically a UI update loop.
package grid

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOutOfRange is returned when an index or span falls outside the grid.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidColumns is returned for a column or visible-size count below
	// what the grid can lay out.
	ErrInvalidColumns = errors.New("invalid column count")
)

// Options configures a new Grid. Zero values take the defaults documented on
// each field.
type Options struct {
	Columns        int // 0 lays every item out in a single row
	VisibleColumns int // 0 means 1
	VisibleRows    int // 0 means 1
}

// Grid owns an ordered tile sequence and its layout.
type Grid[T any] struct {
	tiles          []*Tile[T]
	nCol           int
	visibleColumns int
	visibleRows    int
}

// New lays items out according to opts.
func New[T any](items []T, opts Options) (*Grid[T], error) {
	if opts.Columns < 0 || opts.VisibleColumns < 0 || opts.VisibleRows < 0 {
		return nil, fmt.Errorf("new grid: columns=%d visible=%dx%d: %w",
			opts.Columns, opts.VisibleColumns, opts.VisibleRows, ErrInvalidColumns)
	}
	nCol := opts.Columns
	if nCol == 0 {
		nCol = max(len(items), 1)
	}
	g := &Grid[T]{
		tiles:          make([]*Tile[T], 0, len(items)),
		nCol:           nCol,
		visibleColumns: max(opts.VisibleColumns, 1),
		visibleRows:    max(opts.VisibleRows, 1),
	}
	for _, it := range items {
		g.tiles = append(g.tiles, NewTile(it))
	}
	RecomputeLayout(g.tiles, g.nCol)
	return g, nil
}

// Len returns the number of tiles.
func (g *Grid[T]) Len() int { return len(g.tiles) }

// Columns returns the column count.
func (g *Grid[T]) Columns() int { return g.nCol }

// Rows returns the number of rows, counting a trailing partial row.
func (g *Grid[T]) Rows() int {
	return (len(g.tiles) + g.nCol - 1) / g.nCol
}

// VisibleColumns is a sizing hint for the renderer.
func (g *Grid[T]) VisibleColumns() int { return g.visibleColumns }

// VisibleRows is a sizing hint for the renderer.
func (g *Grid[T]) VisibleRows() int { return g.visibleRows }

// Tile returns the tile at index i.
func (g *Grid[T]) Tile(i int) (*Tile[T], bool) {
	if i < 0 || i >= len(g.tiles) {
		return nil, false
	}
	return g.tiles[i], true
}

// Tiles returns the tiles in index order. The slice is a copy; the tiles are
// shared and read-only to callers.
func (g *Grid[T]) Tiles() []*Tile[T] {
	out := make([]*Tile[T], len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Neighbor returns the neighbor of tile i in direction d. An out-of-range i
// has no neighbors.
func (g *Grid[T]) Neighbor(i int, d Direction) Neighbor {
	t, ok := g.Tile(i)
	if !ok {
		return None
	}
	return t.adjacency.Get(d)
}

// IndexAt maps a coordinate back to a linear index.
func (g *Grid[T]) IndexAt(x, y int) (int, bool) {
	if x < 0 || x >= g.nCol || y < 0 {
		return 0, false
	}
	i := y*g.nCol + x
	if i >= len(g.tiles) {
		return 0, false
	}
	return i, true
}

// Append adds tiles for items at the end of the grid.
func (g *Grid[T]) Append(items ...T) []*Tile[T] {
	added, _ := g.Insert(len(g.tiles), items...)
	return added
}

// Insert adds tiles for items so the first one lands at index at. at may
// equal Len to append. The grid is unchanged on error.
func (g *Grid[T]) Insert(at int, items ...T) ([]*Tile[T], error) {
	if at < 0 || at > len(g.tiles) {
		return nil, fmt.Errorf("insert at %d (len %d): %w", at, len(g.tiles), ErrOutOfRange)
	}
	added := make([]*Tile[T], len(items))
	for i, it := range items {
		added[i] = NewTile(it)
	}
	g.tiles = slices.Insert(g.tiles, at, added...)
	RecomputeLayout(g.tiles, g.nCol)
	return added, nil
}

// Remove deletes count tiles starting at index at and returns them so the
// caller can dispose of whatever it attached to them. The grid is unchanged
// on error.
func (g *Grid[T]) Remove(at, count int) ([]*Tile[T], error) {
	if at < 0 || count < 0 || at+count > len(g.tiles) {
		return nil, fmt.Errorf("remove %d at %d (len %d): %w", count, at, len(g.tiles), ErrOutOfRange)
	}
	removed := make([]*Tile[T], count)
	copy(removed, g.tiles[at:at+count])
	g.tiles = slices.Delete(g.tiles, at, at+count)
	RecomputeLayout(g.tiles, g.nCol)
	return removed, nil
}

// SetColumns changes the column count and relays every tile.
func (g *Grid[T]) SetColumns(n int) error {
	if n < 1 {
		return fmt.Errorf("set columns %d: %w", n, ErrInvalidColumns)
	}
	g.nCol = n
	RecomputeLayout(g.tiles, g.nCol)
	return nil
}
