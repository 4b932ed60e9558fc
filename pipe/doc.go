// Package pipe defines the symbol alphabet of a pipe diagram and the
// connectivity rules between neighboring cells.
//
// What:
//
//   - Direction: the four cardinal directions North, South, East, West.
//   - Symbol: one of | - L J 7 F . S, each exposing a fixed set of directions.
//   - Point / Cell: a lattice position and the symbol stored there.
//   - Connected: the only edge test of the implicit pipe graph.
//
// Connectivity table:
//
//	|  North, South        L  North, East       7  South, West
//	-  East, West          J  North, West       F  South, East
//	S  all four (until the start cell is resolved)
//	.  none
//
// Two cells are connected when they are cardinal neighbors and each exposes
// the direction pointing at the other. Nothing beyond the two symbols and
// their relative position is consulted.
//
// Errors:
//
//   - ErrUnknownSymbol: a byte outside the alphabet was parsed.
package pipe
