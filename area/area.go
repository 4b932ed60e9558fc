package area

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
)

// ErrBrokenRun indicates a loop symbol that cannot appear between two
// corners of a horizontal run. It only occurs for loops that are not
// well formed.
var ErrBrokenRun = errors.New("area: unexpected symbol inside a horizontal run")

// passThrough lists opening/closing corner pairs that cross the scan line.
var passThrough = map[[2]pipe.Symbol]bool{
	{pipe.SouthWest, pipe.NorthEast}: true,
	{pipe.SouthEast, pipe.NorthWest}: true,
	{pipe.NorthWest, pipe.SouthEast}: true,
	{pipe.NorthEast, pipe.SouthWest}: true,
}

// scanner is the state machine walked over a row prefix.
type scanner struct {
	crossings int
	colinear  bool
	opening   pipe.Symbol
}

// step feeds one loop cell into the scan.
func (sc *scanner) step(c pipe.Cell) error {
	if !sc.colinear {
		switch {
		case c.Symbol.IsVertical():
			sc.crossings++
		case c.Symbol.IsCorner():
			sc.colinear = true
			sc.opening = c.Symbol
		}
		return nil
	}

	switch {
	case c.Symbol.IsCorner():
		if passThrough[[2]pipe.Symbol{sc.opening, c.Symbol}] {
			sc.crossings++
		}
		sc.colinear = false
	case c.Symbol == pipe.Horizontal:
	default:
		return &loop.GeometryError{
			At:  c.Point,
			Err: fmt.Errorf("%w: %s after %s: %w", ErrBrokenRun, c.Symbol, sc.opening, loop.ErrNotCycle),
		}
	}
	return nil
}

// Enclosed reports whether p lies inside loop l drawn on gg.
func Enclosed(gg *gridgraph.GridGraph, l *loop.Loop, p pipe.Point) (bool, error) {
	if l.Contains(p) {
		return false, nil
	}
	var sc scanner
	for col := 0; col < p.Col; col++ {
		q := pipe.Point{Row: p.Row, Col: col}
		if !l.Contains(q) {
			continue
		}
		if err := sc.step(gg.At(q)); err != nil {
			return false, err
		}
	}

	return sc.crossings%2 == 1, nil
}

// EnclosedCells returns every enclosed cell in row-major order.
func EnclosedCells(gg *gridgraph.GridGraph, l *loop.Loop) ([]pipe.Point, error) {
	var out []pipe.Point
	for row := 0; row < gg.Height; row++ {
		for col := 0; col < gg.Width; col++ {
			p := pipe.Point{Row: row, Col: col}
			in, err := Enclosed(gg, l, p)
			if err != nil {
				return nil, err
			}
			if in {
				out = append(out, p)
			}
		}
	}

	return out, nil
}

// Count returns the number of non-loop cells enclosed by l.
func Count(gg *gridgraph.GridGraph, l *loop.Loop) (int, error) {
	cells, err := EnclosedCells(gg, l)
	if err != nil {
		return 0, err
	}

	return len(cells), nil
}
