package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the four axes a tile can have a neighbor along.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in a stable order.
var Directions = []Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// ParseDirection accepts direction names and vi-style keys (h, j, k, l).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "h":
		return Left, nil
	case "right", "l":
		return Right, nil
	case "up", "k":
		return Up, nil
	case "down", "j":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
