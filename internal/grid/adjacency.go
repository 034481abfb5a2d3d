package grid

import "strconv"

// Neighbor is an optional tile index. The zero value means "no neighbor",
// so index 0 is never mistaken for absence.
type Neighbor struct {
	index int
	ok    bool
}

// None is the absent neighbor.
var None = Neighbor{}

// NeighborAt returns a present neighbor pointing at index.
func NeighborAt(index int) Neighbor {
	return Neighbor{index: index, ok: true}
}

// Get returns the neighbor index and whether one exists.
func (n Neighbor) Get() (int, bool) {
	return n.index, n.ok
}

// Exists reports whether the neighbor is present.
func (n Neighbor) Exists() bool {
	return n.ok
}

func (n Neighbor) String() string {
	if !n.ok {
		return "none"
	}
	return strconv.Itoa(n.index)
}

// Adjacency maps each direction to the nearest tile in that direction.
type Adjacency struct {
	Left  Neighbor
	Right Neighbor
	Up    Neighbor
	Down  Neighbor
}

// Get returns the neighbor in direction d.
func (a Adjacency) Get(d Direction) Neighbor {
	switch d {
	case Left:
		return a.Left
	case Right:
		return a.Right
	case Up:
		return a.Up
	case Down:
		return a.Down
	}
	return None
}
