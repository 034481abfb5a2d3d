package grid

// Tile is one cell of the grid. Its coordinates and adjacency are assigned
// by RecomputeLayout; callers only read them.
type Tile[T any] struct {
	data      T
	index     int
	x, y      int
	adjacency Adjacency
}

// NewTile returns an unplaced tile holding data. It has no coordinates until
// RecomputeLayout runs over the sequence containing it.
func NewTile[T any](data T) *Tile[T] {
	return &Tile[T]{data: data, index: -1, x: -1, y: -1}
}

// Data returns the application item the tile was created for.
func (t *Tile[T]) Data() T { return t.data }

// Index returns the tile's linear position.
func (t *Tile[T]) Index() int { return t.index }

// X returns the tile's column.
func (t *Tile[T]) X() int { return t.x }

// Y returns the tile's row.
func (t *Tile[T]) Y() int { return t.y }

// Adjacency returns the tile's four neighbors.
func (t *Tile[T]) Adjacency() Adjacency { return t.adjacency }

// RecomputeLayout assigns index, coordinates and adjacency to every tile,
// laid out row-major in nCol columns. It ignores any previous assignment, so
// it is safe to call after arbitrary insertions or removals.
//
// Neighbors that would fall at or beyond len(tiles) are absent: the last,
// partial row neither wraps nor points past the end.
func RecomputeLayout[T any](tiles []*Tile[T], nCol int) {
	if nCol < 1 {
		nCol = 1
	}
	n := len(tiles)
	for i, t := range tiles {
		x := i % nCol
		y := i / nCol
		t.index = i
		t.x = x
		t.y = y

		var adj Adjacency
		if x > 0 {
			adj.Left = NeighborAt(i - 1)
		}
		if x < nCol-1 && i+1 < n {
			adj.Right = NeighborAt(i + 1)
		}
		if y > 0 {
			adj.Up = NeighborAt(i - nCol)
		}
		// (y+1)*nCol <= i+nCol, so this also satisfies y < n/nCol - 1.
		if i+nCol < n {
			adj.Down = NeighborAt(i + nCol)
		}
		t.adjacency = adj
	}
}
