package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
)

// ExampleBuild resolves the start of a square loop and reports the
// farthest distance along it.
func ExampleBuild() {
	gg, _ := gridgraph.NewGridGraph([]string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	})
	l, err := loop.Build(gg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("start=%s len=%d max=%d\n", gg.StartSymbol(), l.Len(), l.MaxDistance())
	// Output: start=F len=8 max=4
}
