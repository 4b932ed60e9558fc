// Package gridgraph loads a pipe diagram into a rectangular lattice and
// exposes it as an implicit, undirected graph.
//
// What:
//
//   - GridGraph holds the parsed cells and the location of the single start
//     marker S.
//   - Edges are never materialized: two cells are adjacent iff
//     pipe.Connected reports it, so traversals ask ConnectedNeighbors.
//   - The start cell is Unresolved until ResolveStart rewrites its symbol;
//     that transition happens exactly once.
//   - PipeComponents groups every pipe cell into mutually connected
//     fragments, which is how stray pipes around the loop are counted.
//
// Complexity:
//
//   - NewGridGraph:     O(W×H) time and memory.
//   - ConnectedNeighbors: O(1).
//   - PipeComponents:   O(W×H), Memory: O(W×H).
//
// Options:
//
//   - WithStrict(false): unknown bytes are read as ground instead of failing.
//
// Errors (all wrapped in *ParseError):
//
//   - ErrEmptyGrid: input has no rows or zero-width rows.
//   - ErrNonRectangular: a row length differs from the first row.
//   - ErrStartCount: the start marker does not occur exactly once.
//   - pipe.ErrUnknownSymbol: a byte outside the alphabet (strict mode).
package gridgraph
