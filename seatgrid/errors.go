package seatgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is the class of all grid construction failures.
	// Use errors.Is(err, ErrInvalidGrid) to catch any of the specific ones below.
	ErrInvalidGrid = errors.New("seatgrid: invalid grid")

	// ErrEmptyGrid indicates a matrix with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrDimensionMismatch indicates availability and price matrices of different shape.
	ErrDimensionMismatch = fmt.Errorf("%w: availability and price dimensions differ", ErrInvalidGrid)
	// ErrNegativePrice indicates a seat with a price below zero.
	ErrNegativePrice = fmt.Errorf("%w: price must be non-negative", ErrInvalidGrid)

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("seatgrid: coordinate out of bounds")
	// ErrBrokenPath indicates two consecutive path cells that are not orthogonal neighbors.
	ErrBrokenPath = errors.New("seatgrid: path cells are not adjacent")
	// ErrCostOverflow indicates a path whose price sum does not fit in int64.
	ErrCostOverflow = errors.New("seatgrid: path cost overflows int64")
)
