package gridgraph

import "github.com/katalvlaran/pipeloop/pipe"

// PipeComponents finds all fragments of mutually connected pipe cells.
// Ground cells are skipped. Components are returned in row-major order of
// their first cell; each component lists its cells in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) PipeComponents() [][]pipe.Point {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]pipe.Point

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := pipe.Point{Row: y, Col: x}
			if !gg.cells[y][x].IsPipe() || seen[gg.index(p)] {
				continue
			}
			queue := []pipe.Point{p}
			seen[gg.index(p)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, q := range gg.ConnectedNeighbors(queue[qi]) {
					if i := gg.index(q); !seen[i] {
						seen[i] = true
						queue = append(queue, q)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
