// Package diagram ties loading, loop discovery and area estimation into a
// single entry point for a pipe diagram.
//
// Parse either yields a complete Diagram or an error; there is no partial
// result. Errors are returned unchanged so callers can classify them with
// errors.As against *gridgraph.ParseError or *loop.GeometryError.
package diagram

import (
	"io"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
)

// Options collects the options forwarded to the grid loader and loop builder.
type Options struct {
	Grid []gridgraph.Option
	Loop []loop.Option
}

// Option configures Parse.
type Option func(*Options)

// WithGridOptions forwards options to gridgraph.NewGridGraph.
func WithGridOptions(opts ...gridgraph.Option) Option {
	return func(o *Options) {
		o.Grid = append(o.Grid, opts...)
	}
}

// WithLoopOptions forwards options to loop.Build.
func WithLoopOptions(opts ...loop.Option) Option {
	return func(o *Options) {
		o.Loop = append(o.Loop, opts...)
	}
}

// Diagram is a loaded grid together with its resolved loop.
type Diagram struct {
	grid *gridgraph.GridGraph
	loop *loop.Loop
}

// Result holds both answers for a diagram.
type Result struct {
	MaxDistance int
	Area        int
}

// Parse loads lines and builds the loop through the start cell.
func Parse(lines []string, opts ...Option) (*Diagram, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	gg, err := gridgraph.NewGridGraph(lines, o.Grid...)
	if err != nil {
		return nil, err
	}
	l, err := loop.Build(gg, o.Loop...)
	if err != nil {
		return nil, err
	}

	return &Diagram{grid: gg, loop: l}, nil
}

// Read parses a diagram from r.
func Read(r io.Reader, opts ...Option) (*Diagram, error) {
	lines, err := gridgraph.ReadLines(r)
	if err != nil {
		return nil, err
	}

	return Parse(lines, opts...)
}

// Grid returns the underlying grid, with the start already resolved.
func (d *Diagram) Grid() *gridgraph.GridGraph { return d.grid }

// Loop returns the loop through the start cell.
func (d *Diagram) Loop() *loop.Loop { return d.loop }

// MaxDistance returns the distance of the loop cell farthest from the start.
func (d *Diagram) MaxDistance() int { return d.loop.MaxDistance() }

// Area returns the number of cells enclosed by the loop.
func (d *Diagram) Area() (int, error) { return area.Count(d.grid, d.loop) }

// Render draws the loop and its enclosed cells to w.
func (d *Diagram) Render(w io.Writer) error { return area.Render(w, d.grid, d.loop) }

// Solve computes both answers.
func (d *Diagram) Solve() (Result, error) {
	n, err := d.Area()
	if err != nil {
		return Result{}, err
	}

	return Result{MaxDistance: d.MaxDistance(), Area: n}, nil
}

// Solve parses lines and returns both answers.
func Solve(lines []string, opts ...Option) (Result, error) {
	d, err := Parse(lines, opts...)
	if err != nil {
		return Result{}, err
	}

	return d.Solve()
}

// Part1 returns the farthest loop distance from the start.
func Part1(lines []string) (int, error) {
	d, err := Parse(lines)
	if err != nil {
		return 0, err
	}

	return d.MaxDistance(), nil
}

// Part2 returns the enclosed area.
func Part2(lines []string) (int, error) {
	d, err := Parse(lines)
	if err != nil {
		return 0, err
	}

	return d.Area()
}
