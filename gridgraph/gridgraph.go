package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pipeloop/pipe"
)

// NewGridGraph constructs a GridGraph from equal-length text rows.
// Returns a *ParseError wrapping ErrEmptyGrid, ErrNonRectangular,
// pipe.ErrUnknownSymbol or ErrStartCount.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(lines []string, opts ...Option) (*GridGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, parseErr(-1, ErrEmptyGrid)
	}
	h, w := len(lines), len(lines[0])
	cells := make([][]pipe.Symbol, h)
	starts := 0
	var start pipe.Point
	for y, line := range lines {
		if len(line) != w {
			return nil, parseErr(y, fmt.Errorf("%w: got %d, want %d", ErrNonRectangular, len(line), w))
		}
		row := make([]pipe.Symbol, w)
		for x := 0; x < w; x++ {
			s, err := pipe.ParseSymbol(line[x])
			if err != nil {
				if o.Strict {
					return nil, parseErr(y, err)
				}
				s = pipe.Ground
			}
			if s == pipe.Start {
				starts++
				start = pipe.Point{Row: y, Col: x}
			}
			row[x] = s
		}
		cells[y] = row
	}
	if starts != 1 {
		return nil, parseErr(-1, fmt.Errorf("%w: found %d", ErrStartCount, starts))
	}

	return &GridGraph{
		Width:  w,
		Height: h,
		cells:  cells,
		start:  start,
	}, nil
}

// ReadLines reads a diagram from r, one row per line. Carriage returns and
// trailing blank lines are dropped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read diagram: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *GridGraph) InBounds(p pipe.Point) bool {
	return p.Col >= 0 && p.Col < gg.Width && p.Row >= 0 && p.Row < gg.Height
}

// At returns the cell at p. p must be in bounds.
func (gg *GridGraph) At(p pipe.Point) pipe.Cell {
	return pipe.Cell{Point: p, Symbol: gg.cells[p.Row][p.Col]}
}

// Start returns the position of the start marker.
func (gg *GridGraph) Start() pipe.Point { return gg.start }

// StartResolved reports whether ResolveStart has already run.
func (gg *GridGraph) StartResolved() bool { return gg.state == startResolved }

// StartSymbol returns the symbol currently stored in the start cell:
// pipe.Start before resolution, the concrete pipe afterwards.
func (gg *GridGraph) StartSymbol() pipe.Symbol {
	return gg.cells[gg.start.Row][gg.start.Col]
}

// ResolveStart overwrites the start cell with its concrete pipe shape.
// It may be called once; later calls return ErrStartResolved.
func (gg *GridGraph) ResolveStart(s pipe.Symbol) error {
	if gg.state == startResolved {
		return ErrStartResolved
	}
	gg.cells[gg.start.Row][gg.start.Col] = s
	gg.state = startResolved

	return nil
}

// Connected reports whether p and q are in bounds and mutually connected.
func (gg *GridGraph) Connected(p, q pipe.Point) bool {
	if !gg.InBounds(p) || !gg.InBounds(q) {
		return false
	}

	return pipe.Connected(gg.At(p), gg.At(q))
}

// ConnectedNeighbors returns the in-bounds neighbors of p that are mutually
// connected to it, in N, S, E, W order.
// Complexity: O(1).
func (gg *GridGraph) ConnectedNeighbors(p pipe.Point) []pipe.Point {
	out := make([]pipe.Point, 0, 2)
	for _, q := range p.Neighbors() {
		if gg.Connected(p, q) {
			out = append(out, q)
		}
	}

	return out
}

// Rows renders the current symbols back to text, one string per row.
func (gg *GridGraph) Rows() []string {
	out := make([]string, gg.Height)
	var sb strings.Builder
	for y, row := range gg.cells {
		sb.Reset()
		for _, s := range row {
			sb.WriteByte(byte(s))
		}
		out[y] = sb.String()
	}

	return out
}

// Mirror returns a horizontally reflected copy of gg with corner symbols
// swapped so every connection is preserved. The copy starts Unresolved with
// the start marker restored, whatever the state of gg.
func (gg *GridGraph) Mirror() *GridGraph {
	cells := make([][]pipe.Symbol, gg.Height)
	for y, row := range gg.cells {
		cells[y] = make([]pipe.Symbol, gg.Width)
		for x, s := range row {
			cells[y][gg.Width-1-x] = pipe.Mirror(s)
		}
	}
	start := pipe.Point{Row: gg.start.Row, Col: gg.Width - 1 - gg.start.Col}
	cells[start.Row][start.Col] = pipe.Start

	return &GridGraph{
		Width:  gg.Width,
		Height: gg.Height,
		cells:  cells,
		start:  start,
	}
}

// index maps p to a row-major index: Row*Width + Col.
func (gg *GridGraph) index(p pipe.Point) int {
	return p.Row*gg.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
func (gg *GridGraph) Coordinate(idx int) pipe.Point {
	return pipe.Point{Row: idx / gg.Width, Col: idx % gg.Width}
}
