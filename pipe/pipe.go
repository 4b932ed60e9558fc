package pipe

import "fmt"

// connections holds the fixed symbol → exposed directions table.
var connections = map[Symbol][]Direction{
	Vertical:   {North, South},
	Horizontal: {East, West},
	NorthEast:  {North, East},
	NorthWest:  {North, West},
	SouthWest:  {South, West},
	SouthEast:  {South, East},
	Start:      {North, South, East, West},
	Ground:     nil,
}

// ParseSymbol validates b against the alphabet.
func ParseSymbol(b byte) (Symbol, error) {
	s := Symbol(b)
	if _, ok := connections[s]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	}

	return s, nil
}

// DirectionsOf returns the directions exposed by s, in N, S, E, W order.
// Unknown symbols expose nothing.
func DirectionsOf(s Symbol) []Direction {
	dirs := connections[s]
	out := make([]Direction, len(dirs))
	copy(out, dirs)

	return out
}

// Exposes reports whether s opens toward d.
func (s Symbol) Exposes(d Direction) bool {
	for _, x := range connections[s] {
		if x == d {
			return true
		}
	}

	return false
}

// IsCorner reports whether s is one of L, J, 7, F.
func (s Symbol) IsCorner() bool {
	switch s {
	case NorthEast, NorthWest, SouthWest, SouthEast:
		return true
	}

	return false
}

// IsVertical reports whether s is the straight | pipe.
func (s Symbol) IsVertical() bool { return s == Vertical }

// IsPipe reports whether s exposes at least one direction.
func (s Symbol) IsPipe() bool { return len(connections[s]) > 0 }

func (s Symbol) String() string { return string(rune(s)) }

// Mirror reflects s across a vertical axis: L↔J, F↔7; other symbols are
// symmetric and returned unchanged.
func Mirror(s Symbol) Symbol {
	switch s {
	case NorthEast:
		return NorthWest
	case NorthWest:
		return NorthEast
	case SouthEast:
		return SouthWest
	case SouthWest:
		return SouthEast
	}

	return s
}

// Step returns the neighbor of p in direction d. The result may lie outside
// any grid; callers check bounds.
func (p Point) Step(d Direction) Point {
	dr, dc := d.offset()

	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Neighbors returns the four cardinal neighbors of p in N, S, E, W order.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range Directions {
		out[i] = p.Step(d)
	}

	return out
}

// DirectionTo returns the direction from p to q when q is a cardinal
// neighbor of p.
func (p Point) DirectionTo(q Point) (Direction, bool) {
	for _, d := range Directions {
		if p.Step(d) == q {
			return d, true
		}
	}

	return 0, false
}

// Connected reports whether a and b are cardinal neighbors that expose
// matching directions toward each other.
func Connected(a, b Cell) bool {
	d, ok := a.Point.DirectionTo(b.Point)
	if !ok {
		return false
	}

	return a.Symbol.Exposes(d) && b.Symbol.Exposes(d.Opposite())
}
