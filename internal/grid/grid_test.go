package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func newTestGrid(t *testing.T, n, cols int) *Grid[string] {
	t.Helper()
	g, err := New(letters(n), Options{Columns: cols})
	require.NoError(t, err)
	return g
}

func adjacencies(g *Grid[string]) []Adjacency {
	out := make([]Adjacency, g.Len())
	for i, t := range g.Tiles() {
		out[i] = t.Adjacency()
	}
	return out
}

func neighbor(t *testing.T, g *Grid[string], i int, d Direction) (int, bool) {
	t.Helper()
	return g.Neighbor(i, d).Get()
}

func TestRecomputeLayout_IndexRoundTrip(t *testing.T) {
	for n := 0; n <= 17; n++ {
		for cols := 1; cols <= 6; cols++ {
			g := newTestGrid(t, n, cols)
			for i, tile := range g.Tiles() {
				assert.Equal(t, i, tile.Index())
				assert.Equal(t, tile.Index(), tile.Y()*cols+tile.X(), "n=%d cols=%d i=%d", n, cols, i)
				idx, ok := g.IndexAt(tile.X(), tile.Y())
				assert.True(t, ok)
				assert.Equal(t, i, idx)
			}
		}
	}
}

func TestRecomputeLayout_EdgeColumnsHaveNoSideNeighbors(t *testing.T) {
	for n := 1; n <= 13; n++ {
		for cols := 1; cols <= 5; cols++ {
			g := newTestGrid(t, n, cols)
			for _, tile := range g.Tiles() {
				adj := tile.Adjacency()
				if tile.X() == 0 {
					assert.False(t, adj.Left.Exists(), "n=%d cols=%d tile %d", n, cols, tile.Index())
				}
				if tile.X() == cols-1 {
					assert.False(t, adj.Right.Exists(), "n=%d cols=%d tile %d", n, cols, tile.Index())
				}
				// No neighbor ever points outside the grid.
				for _, d := range Directions {
					if j, ok := adj.Get(d).Get(); ok {
						assert.True(t, j >= 0 && j < n, "tile %d %s -> %d", tile.Index(), d, j)
					}
				}
			}
		}
	}
}

func TestRecomputeLayout_SixByThree(t *testing.T) {
	g := newTestGrid(t, 6, 3)
	require.Equal(t, 2, g.Rows())

	t0, _ := g.Tile(0)
	assert.Equal(t, NeighborAt(1), t0.Adjacency().Right)
	assert.Equal(t, NeighborAt(3), t0.Adjacency().Down)
	assert.Equal(t, None, t0.Adjacency().Left)
	assert.Equal(t, None, t0.Adjacency().Up)

	t4, _ := g.Tile(4)
	assert.Equal(t, Adjacency{
		Left:  NeighborAt(3),
		Right: NeighborAt(5),
		Up:    NeighborAt(1),
		Down:  None,
	}, t4.Adjacency())
}

func TestRecomputeLayout_PartialRow(t *testing.T) {
	g := newTestGrid(t, 5, 3)

	j, ok := neighbor(t, g, 1, Down)
	assert.True(t, ok)
	assert.Equal(t, 4, j)

	_, ok = neighbor(t, g, 2, Down)
	assert.False(t, ok, "tile below 2 would be index 5, past the end")

	_, ok = neighbor(t, g, 4, Right)
	assert.False(t, ok, "last tile of a partial row has nothing to its right")

	j, ok = neighbor(t, g, 4, Up)
	assert.True(t, ok)
	assert.Equal(t, 1, j)
}

func TestRecomputeLayout_Idempotent(t *testing.T) {
	g := newTestGrid(t, 11, 4)
	before := adjacencies(g)
	RecomputeLayout(g.tiles, g.nCol)
	after := adjacencies(g)
	if diff := cmp.Diff(before, after, cmp.AllowUnexported(Neighbor{})); diff != "" {
		t.Errorf("adjacency changed on second recompute (-before +after):\n%s", diff)
	}
}

func TestRecomputeLayout_ZeroIndexIsNotAbsent(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	j, ok := neighbor(t, g, 1, Left)
	require.True(t, ok)
	assert.Equal(t, 0, j)
}

func TestNew_Defaults(t *testing.T) {
	g, err := New(letters(4), Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Columns(), "zero columns lays out a single row")
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 1, g.VisibleColumns())
	assert.Equal(t, 1, g.VisibleRows())

	empty, err := New[string](nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Columns())
	assert.Equal(t, 0, empty.Rows())

	_, err = New(letters(2), Options{Columns: -1})
	assert.ErrorIs(t, err, ErrInvalidColumns)
}

func TestGrid_InsertMiddle(t *testing.T) {
	g := newTestGrid(t, 4, 2)
	added, err := g.Insert(1, "x", "y")
	require.NoError(t, err)
	require.Len(t, added, 2)

	var got []string
	for _, tile := range g.Tiles() {
		got = append(got, tile.Data())
	}
	assert.Equal(t, []string{"a", "x", "y", "b", "c", "d"}, got)
	assert.Equal(t, 1, added[0].Index())
	assert.Equal(t, 1, added[0].X())
	assert.Equal(t, 0, added[0].Y())

	// The old tile 1 ("b") is now at index 3 and its adjacency follows.
	b, _ := g.Tile(3)
	assert.Equal(t, "b", b.Data())
	assert.Equal(t, NeighborAt(1), b.Adjacency().Up)
	assert.Equal(t, NeighborAt(5), b.Adjacency().Down)
}

func TestGrid_AppendAtEnd(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	added := g.Append("d")
	require.Len(t, added, 1)
	assert.Equal(t, 3, added[0].Index())

	// Tile 0 gained a down neighbor only after the append.
	assert.Equal(t, NeighborAt(3), g.Neighbor(0, Down))
	assert.Equal(t, None, g.Neighbor(1, Down))
}

func TestGrid_InsertOutOfRange(t *testing.T) {
	g := newTestGrid(t, 3, 2)
	before := adjacencies(g)

	for _, at := range []int{-1, 4} {
		_, err := g.Insert(at, "z")
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, before, adjacencies(g))

	_, err := g.Insert(3, "z")
	assert.NoError(t, err, "inserting at Len appends")
}

func TestGrid_RemoveRecomputes(t *testing.T) {
	g := newTestGrid(t, 6, 3)
	removed, err := g.Remove(2, 1)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "c", removed[0].Data())
	require.Equal(t, 5, g.Len())

	// Former tile 4 ("e") is now index 3, first column of the second row.
	e, _ := g.Tile(3)
	assert.Equal(t, "e", e.Data())
	assert.Equal(t, 0, e.X())
	assert.Equal(t, 1, e.Y())
	assert.Equal(t, Adjacency{Right: NeighborAt(4), Up: NeighborAt(0)}, e.Adjacency())

	// Every remaining tile agrees with a fresh layout of the same length.
	fresh := newTestGrid(t, 5, 3)
	assert.Equal(t, adjacencies(fresh), adjacencies(g))
}

func TestGrid_RemoveOutOfRange(t *testing.T) {
	g := newTestGrid(t, 6, 3)
	cases := []struct{ at, count int }{
		{-1, 1},
		{5, 2},
		{0, 7},
		{2, -1},
	}
	for _, tc := range cases {
		_, err := g.Remove(tc.at, tc.count)
		assert.ErrorIs(t, err, ErrOutOfRange, "remove(%d, %d)", tc.at, tc.count)
	}
	assert.Equal(t, 6, g.Len())

	removed, err := g.Remove(6, 0)
	assert.NoError(t, err)
	assert.Empty(t, removed)
}

func TestGrid_SetColumns(t *testing.T) {
	g := newTestGrid(t, 6, 3)
	require.NoError(t, g.SetColumns(2))
	assert.Equal(t, 3, g.Rows())

	t4, _ := g.Tile(4)
	assert.Equal(t, 0, t4.X())
	assert.Equal(t, 2, t4.Y())
	assert.Equal(t, NeighborAt(2), t4.Adjacency().Up)

	assert.ErrorIs(t, g.SetColumns(0), ErrInvalidColumns)
	assert.Equal(t, 2, g.Columns())
}

func TestGrid_NeighborOutOfRange(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	assert.Equal(t, None, g.Neighbor(5, Left))
	_, ok := g.Tile(-1)
	assert.False(t, ok)
	_, ok = g.IndexAt(1, 1)
	assert.False(t, ok)
}
