// Package pipeloop measures the closed pipe loop hidden in a text diagram.
//
// A diagram is a rectangle of pipe symbols:
//
//	| - L J 7 F   pipe segments
//	.             ground
//	S             start marker sitting on an unknown pipe
//
// Exactly one loop passes through S. pipeloop answers two questions about it:
// how far along the loop the cell farthest from S lies, and how many cells
// the loop encloses.
//
//	.....
//	.S-7.      farthest distance: 4
//	.|.|.      enclosed cells:    1
//	.L-J.
//	.....
//
// Packages, leaf first:
//
//	pipe/      symbols, directions and the Connected edge test
//	gridgraph/ loads the lattice and exposes it as an implicit graph
//	loop/      resolves S and walks the loop (heap or level-order frontier)
//	area/      scan-line parity count of enclosed cells, plus a renderer
//	diagram/   one-call facade: Parse, Solve, Part1, Part2
//	config/    YAML settings with environment overrides
//	cmd/pipeloop command line front end
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
