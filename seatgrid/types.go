package seatgrid

import "fmt"

// Cell is a seat position plus the price of occupying it.
// Cost is informational: Grid fills it from its price matrix.
type Cell struct {
	Row, Col int // zero-based coordinates
	Cost     int // price at (Row, Col)
}

// At returns a Cell at (row, col) with no cost attached.
// Handy for naming endpoints before a grid is consulted.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// SamePosition reports whether c and o name the same seat, ignoring Cost.
func (c Cell) SamePosition(o Cell) bool {
	return c.Row == o.Row && c.Col == o.Col
}

// String renders the cell the way the CLI prints seats: "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// orthogonalOffsets lists (dRow, dCol) in the order neighbors are produced:
// up, down, left, right.
var orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable seat map. Rows and Cols are its dimensions;
// available[r][c] reports whether the seat may be taken and prices[r][c]
// holds its non-negative price.
type Grid struct {
	Rows, Cols int
	available  [][]bool
	prices     [][]int
}
