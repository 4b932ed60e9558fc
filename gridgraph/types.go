package gridgraph

import "github.com/katalvlaran/pipeloop/pipe"

// Options contains tunable parameters for loading a diagram.
type Options struct {
	// Strict rejects bytes outside the pipe alphabet. When false they are
	// read as ground.
	Strict bool
}

// Option configures NewGridGraph.
type Option func(*Options)

// DefaultOptions returns Options with Strict=true.
func DefaultOptions() Options {
	return Options{Strict: true}
}

// WithStrict toggles rejection of unknown symbols.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// startState tracks the one-time rewrite of the start cell.
type startState int

const (
	startUnresolved startState = iota
	startResolved
)

// GridGraph is a rectangular pipe lattice viewed as an implicit graph.
// Width and Height define dimensions; cells[y][x] holds the symbol at row y,
// column x. Only the start cell may change after construction.
type GridGraph struct {
	Width, Height int
	cells         [][]pipe.Symbol
	start         pipe.Point
	state         startState
}
