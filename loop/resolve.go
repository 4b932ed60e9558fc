package loop

import (
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

// ResolveStartSymbol infers the concrete pipe hidden under the start marker
// from its North and East neighbors only. A start whose real connections
// are South and West resolves correctly through the fallback; straight
// starts (| or -) do not, and Build then fails with ErrOpenStart.
func ResolveStartSymbol(gg *gridgraph.GridGraph) pipe.Symbol {
	s := gg.Start()
	north := links(gg, s.Step(pipe.North), pipe.South)
	east := links(gg, s.Step(pipe.East), pipe.West)

	switch {
	case north && east:
		return pipe.NorthEast
	case north:
		return pipe.NorthWest
	case east:
		return pipe.SouthEast
	default:
		return pipe.SouthWest
	}
}

// links reports whether the cell at p exists and exposes d.
func links(gg *gridgraph.GridGraph, p pipe.Point, d pipe.Direction) bool {
	return gg.InBounds(p) && gg.At(p).Symbol.Exposes(d)
}
