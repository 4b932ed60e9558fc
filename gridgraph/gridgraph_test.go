package gridgraph_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

var square = []string{
	".....",
	".S-7.",
	".|.|.",
	".L-J.",
	".....",
}

func load(t *testing.T, name string) []string {
	t.Helper()
	f, err := os.Open("../testdata/" + name)
	require.NoError(t, err)
	defer f.Close()
	lines, err := gridgraph.ReadLines(f)
	require.NoError(t, err)
	return lines
}

//----------------------------------------------------------------------------//
// NewGridGraph
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that malformed diagrams are rejected with
// a *ParseError wrapping the matching sentinel.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
		line  int
	}{
		{"EmptyRows", []string{}, gridgraph.ErrEmptyGrid, -1},
		{"EmptyCols", []string{""}, gridgraph.ErrEmptyGrid, -1},
		{"NonRectangular", []string{"S-7", "|.", "L-J"}, gridgraph.ErrNonRectangular, 1},
		{"NoStart", []string{"F-7", "L-J"}, gridgraph.ErrStartCount, -1},
		{"TwoStarts", []string{"S-S", "L-J"}, gridgraph.ErrStartCount, -1},
		{"UnknownSymbol", []string{"S-7", "LxJ"}, pipe.ErrUnknownSymbol, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.lines)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "error = %v; want %v", err, tc.err)
			var pe *gridgraph.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestNewGridGraph_Lenient(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([]string{"S-7", "LxJ"}, gridgraph.WithStrict(false))
	require.NoError(t, err)
	assert.Equal(t, pipe.Ground, gg.At(pipe.Point{Row: 1, Col: 1}).Symbol)
}

func TestNewGridGraph_Square(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(square)
	require.NoError(t, err)
	assert.Equal(t, 5, gg.Width)
	assert.Equal(t, 5, gg.Height)
	assert.Equal(t, pipe.Point{Row: 1, Col: 1}, gg.Start())
	assert.Equal(t, pipe.Start, gg.StartSymbol())
	assert.False(t, gg.StartResolved())
	assert.Equal(t, square, gg.Rows())
}

func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([]string{"S-7", "L-J"})
	require.NoError(t, err)

	for _, p := range []pipe.Point{{Row: 0, Col: 0}, {Row: 1, Col: 2}} {
		assert.True(t, gg.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []pipe.Point{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 1, Col: -1}} {
		assert.False(t, gg.InBounds(p), "InBounds(%v)", p)
	}
	assert.False(t, gg.Connected(pipe.Point{Row: 0, Col: 2}, pipe.Point{Row: 0, Col: 3}))
}

//----------------------------------------------------------------------------//
// Start lifecycle
//----------------------------------------------------------------------------//

func TestResolveStart_Once(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(square)
	require.NoError(t, err)

	require.NoError(t, gg.ResolveStart(pipe.SouthEast))
	assert.True(t, gg.StartResolved())
	assert.Equal(t, pipe.SouthEast, gg.StartSymbol())
	assert.Equal(t, ".F-7.", gg.Rows()[1])

	err = gg.ResolveStart(pipe.NorthEast)
	assert.True(t, errors.Is(err, gridgraph.ErrStartResolved))
	assert.Equal(t, pipe.SouthEast, gg.StartSymbol())
}

func TestConnectedNeighbors(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(square)
	require.NoError(t, err)
	require.NoError(t, gg.ResolveStart(pipe.SouthEast))

	assert.Equal(t,
		[]pipe.Point{{Row: 2, Col: 1}, {Row: 1, Col: 2}},
		gg.ConnectedNeighbors(gg.Start()))
	assert.Empty(t, gg.ConnectedNeighbors(pipe.Point{Row: 0, Col: 0}))
	assert.Equal(t,
		[]pipe.Point{{Row: 1, Col: 3}, {Row: 3, Col: 3}},
		gg.ConnectedNeighbors(pipe.Point{Row: 2, Col: 3}))
}

//----------------------------------------------------------------------------//
// Mirror, ReadLines, PipeComponents
//----------------------------------------------------------------------------//

func TestMirror(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([]string{"..F7", ".S-J"})
	require.NoError(t, err)
	m := gg.Mirror()
	assert.Equal(t, []string{"F7..", "L-S."}, m.Rows())
	assert.Equal(t, pipe.Point{Row: 1, Col: 2}, m.Start())
	assert.False(t, m.StartResolved())

	require.NoError(t, gg.ResolveStart(pipe.NorthEast))
	assert.Equal(t, "L-S.", gg.Mirror().Rows()[1])
}

func TestReadLines(t *testing.T) {
	lines, err := gridgraph.ReadLines(strings.NewReader("S-7\r\nL-J\r\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S-7", "L-J"}, lines)
}

func TestPipeComponents(t *testing.T) {
	cases := []struct {
		file    string
		count   int
		largest int
	}{
		{"square.txt", 1, 8},
		{"square_noise.txt", 12, 8},
		{"complex.txt", 7, 16},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			gg, err := gridgraph.NewGridGraph(load(t, tc.file))
			require.NoError(t, err)
			comps := gg.PipeComponents()
			assert.Len(t, comps, tc.count)
			largest := 0
			for _, c := range comps {
				if len(c) > largest {
					largest = len(c)
				}
			}
			assert.Equal(t, tc.largest, largest)
		})
	}
}

func TestCoordinate(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(square)
	require.NoError(t, err)
	assert.Equal(t, pipe.Point{Row: 2, Col: 3}, gg.Coordinate(13))
}
