package seatsearch_test

import (
	"fmt"

	"github.com/katalvlaran/seatpath/seatgrid"
	"github.com/katalvlaran/seatpath/seatsearch"
)

// ExampleSearch walks a 4×4 hall from the cheap corner at (3,0) to a seat
// near the front at (0,2), stepping around the sold seat at (1,1).
func ExampleSearch() {
	g, _ := seatgrid.From2D(
		[][]int{
			{1, 1, 1, 1},
			{1, 0, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
		},
		[][]int{
			{50, 20, 40, 50},
			{20, 30, 30, 40},
			{10, 20, 30, 40},
			{10, 20, 30, 40},
		},
	)

	res, err := seatsearch.Search(g, seatgrid.At(3, 0), seatgrid.At(0, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Optimal seats found:")
	for _, seat := range res.Path {
		fmt.Printf("%s with price %d\n", seat, seat.Cost)
	}
	fmt.Println("total:", res.Cost)

	// Output:
	// Optimal seats found:
	// (3, 0) with price 10
	// (2, 0) with price 10
	// (2, 1) with price 20
	// (2, 2) with price 30
	// (1, 2) with price 30
	// (0, 2) with price 40
	// total: 140
}

// ExampleFindSeats shows the "no route" outcome: an empty slice, not an error.
func ExampleFindSeats() {
	path, err := seatsearch.FindSeats(
		[][]int{{1, 0, 1}},
		[][]int{{10, 10, 10}},
		seatgrid.At(0, 0),
		seatgrid.At(0, 2),
	)
	fmt.Println(len(path), err)

	// Output:
	// 0 <nil>
}
