package pipe

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol indicates a byte that is not part of the pipe alphabet.
var ErrUnknownSymbol = errors.New("pipe: unknown symbol")

// Direction is one of the four cardinal directions.
type Direction int

const (
	// North points to the previous row.
	North Direction = iota
	// South points to the next row.
	South
	// East points to the next column.
	East
	// West points to the previous column.
	West
)

// Directions lists every cardinal direction in N, S, E, W order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// offset returns the (row, col) delta of one step in direction d.
func (d Direction) offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Symbol is a single diagram character.
type Symbol byte

// The pipe alphabet.
const (
	Vertical   Symbol = '|'
	Horizontal Symbol = '-'
	NorthEast  Symbol = 'L'
	NorthWest  Symbol = 'J'
	SouthWest  Symbol = '7'
	SouthEast  Symbol = 'F'
	Ground     Symbol = '.'
	Start      Symbol = 'S'
)

// Point is an immutable lattice position. Row and Col are zero-based.
type Point struct {
	Row, Col int
}

// Cell pairs a position with the symbol stored there.
type Cell struct {
	Point
	Symbol Symbol
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
