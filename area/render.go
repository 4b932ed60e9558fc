package area

import (
	"bufio"
	"io"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Render draws the loop onto w: loop cells keep their symbol (the start
// is shown as S), enclosed cells become '+' and everything else a space.
func Render(w io.Writer, gg *gridgraph.GridGraph, l *loop.Loop) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < gg.Height; row++ {
		for col := 0; col < gg.Width; col++ {
			p := pipe.Point{Row: row, Col: col}
			in, err := Enclosed(gg, l, p)
			if err != nil {
				return err
			}
			switch {
			case in:
				bw.WriteByte('+')
			case p == l.Start():
				bw.WriteByte(byte(pipe.Start))
			case l.Contains(p):
				bw.WriteByte(byte(gg.At(p).Symbol))
			default:
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
