package seatgrid_test

import (
	"fmt"

	"github.com/katalvlaran/seatpath/seatgrid"
)

// ExampleGrid_Regions shows how sold seats split a hall into blocks.
//
//	1 1 0 1
//	1 1 0 1
func ExampleGrid_Regions() {
	g, _ := seatgrid.From2D(
		[][]int{{1, 1, 0, 1}, {1, 1, 0, 1}},
		[][]int{{10, 10, 0, 30}, {20, 20, 0, 30}},
	)

	for i, block := range g.Regions() {
		fmt.Printf("block %d:", i)
		for _, c := range block {
			fmt.Printf(" %s", c)
		}
		fmt.Println()
	}

	// Output:
	// block 0: (0, 0) (1, 0) (0, 1) (1, 1)
	// block 1: (0, 3) (1, 3)
}

// ExampleGrid_PathCost sums the prices along a row of seats.
func ExampleGrid_PathCost() {
	g, _ := seatgrid.From2D([][]int{{1, 1, 1}}, [][]int{{15, 25, 35}})

	cost, err := g.PathCost([]seatgrid.Cell{seatgrid.At(0, 0), seatgrid.At(0, 1), seatgrid.At(0, 2)})
	fmt.Println(cost, err)

	// Output:
	// 75 <nil>
}
