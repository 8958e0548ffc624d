package board_test

import (
	"fmt"

	"github.com/katalvlaran/wordgrid/board"
)

// ExampleBoard_Neighbors shows the clipped 8-neighborhood of a corner cell
// and the fixed order in which neighbors are produced.
func ExampleBoard_Neighbors() {
	b, _ := board.New([]string{
		"C", "A", "T",
		"O", "R", "E",
		"W", "S", "QU",
	})

	nbs, _ := b.Neighbors(0, 0)
	for _, c := range nbs {
		tile, _ := b.TileAt(c.Row, c.Col)
		fmt.Printf("(%d,%d)=%s idx=%d\n", c.Row, c.Col, tile, b.Index(c.Row, c.Col))
	}
	fmt.Println(b)

	// Output:
	// (0,1)=a idx=1
	// (1,0)=o idx=3
	// (1,1)=r idx=4
	// c a t
	// o r e
	// w s qu
}
