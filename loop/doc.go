// Package loop reconstructs the closed pipe loop that passes through the
// start cell of a diagram and labels every loop cell with its distance from
// the start.
//
// Build runs in two phases:
//
//  1. Start resolution. The start marker S hides its real pipe shape.
//     ResolveStartSymbol inspects only the North and East neighbors:
//     North links back and East links back → L, only North → J,
//     only East → F, neither → 7. The result is written into the grid once.
//
//  2. Traversal. A single-source shortest-path search over the implicit
//     graph defined by pipe.Connected, starting at distance 0. The visited
//     set is the loop; the largest finalized distance is the farthest point.
//
// Strategies:
//
//   - StrategyHeap (default): min-heap frontier keyed on distance with lazy
//     decrease-key; a cell is finalized the first time it is popped.
//   - StrategyLevelOrder: FIFO frontier. All edges weigh 1, so both
//     strategies finalize cells in non-decreasing distance order and
//     produce identical loops.
//
// Complexity:
//
//   - Heap:       O(L log L) time, O(L) memory, L = loop length.
//   - LevelOrder: O(L) time, O(L) memory.
//
// Errors:
//
//   - *GeometryError wrapping ErrOpenStart: the resolved start has fewer
//     than two connected neighbors.
//   - *GeometryError wrapping ErrNotCycle: the traversal reached a cell that
//     does not have exactly two loop neighbors, or the loop is shorter than 4.
//   - ErrOptionViolation: an unknown strategy was requested.
//   - ctx.Err(): the context passed via WithContext was cancelled.
package loop
