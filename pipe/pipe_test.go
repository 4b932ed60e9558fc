package pipe_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipe"
)

// TestDirectionsOf checks the full connectivity table.
func TestDirectionsOf(t *testing.T) {
	cases := []struct {
		sym  pipe.Symbol
		want []pipe.Direction
	}{
		{pipe.Vertical, []pipe.Direction{pipe.North, pipe.South}},
		{pipe.Horizontal, []pipe.Direction{pipe.East, pipe.West}},
		{pipe.NorthEast, []pipe.Direction{pipe.North, pipe.East}},
		{pipe.NorthWest, []pipe.Direction{pipe.North, pipe.West}},
		{pipe.SouthWest, []pipe.Direction{pipe.South, pipe.West}},
		{pipe.SouthEast, []pipe.Direction{pipe.South, pipe.East}},
		{pipe.Start, []pipe.Direction{pipe.North, pipe.South, pipe.East, pipe.West}},
	}
	for _, tc := range cases {
		t.Run(tc.sym.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, pipe.DirectionsOf(tc.sym))
		})
	}
	assert.Empty(t, pipe.DirectionsOf(pipe.Ground))
}

func TestDirectionsOf_ReturnsCopy(t *testing.T) {
	dirs := pipe.DirectionsOf(pipe.Vertical)
	dirs[0] = pipe.West
	assert.Equal(t, []pipe.Direction{pipe.North, pipe.South}, pipe.DirectionsOf(pipe.Vertical))
}

func TestParseSymbol(t *testing.T) {
	for _, b := range []byte("|-LJ7F.S") {
		s, err := pipe.ParseSymbol(b)
		require.NoError(t, err)
		assert.Equal(t, pipe.Symbol(b), s)
	}
	_, err := pipe.ParseSymbol('x')
	require.True(t, errors.Is(err, pipe.ErrUnknownSymbol), "got %v", err)
}

func TestOpposite(t *testing.T) {
	for _, d := range pipe.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
}

func TestClassification(t *testing.T) {
	for _, s := range []pipe.Symbol{'L', 'J', '7', 'F'} {
		assert.True(t, s.IsCorner(), "%s should be a corner", s)
	}
	for _, s := range []pipe.Symbol{'|', '-', '.', 'S'} {
		assert.False(t, s.IsCorner(), "%s should not be a corner", s)
	}
	assert.True(t, pipe.Vertical.IsVertical())
	assert.False(t, pipe.Horizontal.IsVertical())
	assert.False(t, pipe.Ground.IsPipe())
}

// TestConnected exercises mutual exposure in every direction.
func TestConnected(t *testing.T) {
	at := func(r, c int, s pipe.Symbol) pipe.Cell {
		return pipe.Cell{Point: pipe.Point{Row: r, Col: c}, Symbol: s}
	}
	cases := []struct {
		name string
		a, b pipe.Cell
		want bool
	}{
		{"EastWest", at(0, 0, 'F'), at(0, 1, '-'), true},
		{"WestEast", at(0, 1, '-'), at(0, 0, 'F'), true},
		{"NorthSouth", at(1, 0, 'L'), at(0, 0, '|'), true},
		{"OneSided", at(0, 0, 'F'), at(0, 1, '|'), false},
		{"GroundNeighbor", at(0, 0, '-'), at(0, 1, '.'), false},
		{"Diagonal", at(0, 0, 'F'), at(1, 1, 'J'), false},
		{"NotAdjacent", at(0, 0, '-'), at(0, 2, '-'), false},
		{"Same", at(0, 0, 'S'), at(0, 0, 'S'), false},
		{"StartExposesAll", at(1, 1, 'S'), at(1, 0, 'L'), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pipe.Connected(tc.a, tc.b))
		})
	}
}

func TestMirror(t *testing.T) {
	pairs := map[pipe.Symbol]pipe.Symbol{'L': 'J', 'J': 'L', 'F': '7', '7': 'F', '|': '|', '-': '-', '.': '.', 'S': 'S'}
	for in, want := range pairs {
		assert.Equal(t, want, pipe.Mirror(in))
	}
}

func TestPointNeighbors(t *testing.T) {
	p := pipe.Point{Row: 2, Col: 3}
	n := p.Neighbors()
	assert.Equal(t, [4]pipe.Point{{1, 3}, {3, 3}, {2, 4}, {2, 2}}, n)
	d, ok := p.DirectionTo(pipe.Point{Row: 2, Col: 2})
	require.True(t, ok)
	assert.Equal(t, pipe.West, d)
	_, ok = p.DirectionTo(pipe.Point{Row: 4, Col: 3})
	assert.False(t, ok)
}
