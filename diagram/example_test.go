package diagram_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/diagram"
)

// ExampleSolve reports both answers for a loop with stray pipes around it.
func ExampleSolve() {
	res, err := diagram.Solve([]string{
		"7-F7-",
		".FJ|7",
		"SJLL7",
		"|F--J",
		"LJ.LJ",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.MaxDistance)
	fmt.Println(res.Area)
	// Output:
	// 8
	// 1
}
