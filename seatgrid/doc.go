// Package seatgrid models a rectangular block of seats as a graph: every
// cell carries an availability flag and a price, and neighbors are the
// four orthogonal cells.
//
// What:
//
//   - Grid wraps validated, deep-copied availability and price matrices.
//   - Cell is a (Row, Col) position with the price of occupying it.
//   - Neighbors yields in-bounds, available cells in a fixed order
//     (up, down, left, right).
//   - Regions groups available seats into orthogonally connected blocks.
//   - PathCost checks a seat sequence and sums its prices.
//
// Why:
//
//   - Seat selection: pick adjacent seats while steering around sold ones.
//   - Pre-flight checks: tell "different block" apart from "no cheap route".
//
// Complexity:
//
//   - New / From2D:   O(R×C) time and memory (deep copy).
//   - Neighbors:      O(1).
//   - Regions:        O(R×C) time and memory.
//   - PathCost:       O(len(path)).
//
// Errors:
//
//   - ErrInvalidGrid: class of every construction failure; ErrEmptyGrid,
//     ErrNonRectangular, ErrDimensionMismatch and ErrNegativePrice wrap it.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrBrokenPath: consecutive path cells are not orthogonal neighbors.
package seatgrid
