package pipe_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipe"
)

// ExampleConnected shows that an F corner links to a - pipe on its east side
// but not to a | pipe there.
func ExampleConnected() {
	corner := pipe.Cell{Point: pipe.Point{Row: 0, Col: 0}, Symbol: pipe.SouthEast}
	dash := pipe.Cell{Point: pipe.Point{Row: 0, Col: 1}, Symbol: pipe.Horizontal}
	bar := pipe.Cell{Point: pipe.Point{Row: 0, Col: 1}, Symbol: pipe.Vertical}

	fmt.Println(pipe.Connected(corner, dash), pipe.Connected(corner, bar))
	fmt.Println(pipe.DirectionsOf(pipe.SouthEast))
	// Output:
	// true false
	// [South East]
}
