// Package seatpath picks a chain of adjacent seats across a priced,
// partially sold hall.
//
// The module is organized as small packages:
//
//	seatgrid/      validated immutable hall: availability, prices, neighbors, blocks
//	seatsearch/    best-first search with the price-distance heuristic
//	scenario/      YAML (and PGM bitmap) search requests
//	render/        PNG rendering of a hall and a route
//	cmd/seatpath/  command-line front end
//
// Quick ASCII example (S = start, G = goal, # = sold):
//
//	. . G .
//	. # . .
//	. . . .
//	S . . .
//
//	go get github.com/katalvlaran/seatpath
package seatpath
