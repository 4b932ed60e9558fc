// Package area counts the cells enclosed by a pipe loop using a horizontal
// scan-line parity test.
//
// For a non-loop cell the ray runs from the left edge of its row up to, but
// excluding, the cell. Only loop members take part; stray pipes are noise.
//
//	state        loop symbol   effect
//	Normal       |             one crossing
//	Normal       L J 7 F       enter InColinear(opening corner)
//	InColinear   -             run continues
//	InColinear   L J 7 F       close the run; one crossing for 7+L, F+J,
//	                           J+F, L+7, none for the bounces F+7, L+J …
//
// The cell is enclosed iff the crossing count is odd. Loop cells are never
// enclosed.
//
// Complexity: O(W×H×W) for Count, O(W) per Enclosed query.
package area
