// Package seatsearch finds a low-cost route of adjacent seats between two
// cells of a seatgrid.Grid with a best-first search.
//
// Overview:
//
//   - The search is A*-shaped: a min-heap frontier, a costFromStart table
//     and a cameFrom table rebuilt into the final path.
//   - The default heuristic, PriceDistance, adds the Manhattan distance to
//     the goal and the signed price difference price(goal) − price(cell).
//     It can be negative and is not admissible, so the returned path is a
//     best-effort cheap route, not a proven cheapest one.
//   - The cost of a path is the sum of the prices of all its seats, start
//     and goal included.
//
// Determinism:
//
//   - Neighbors are relaxed in the order up, down, left, right.
//   - Frontier entries with equal priority pop in insertion order (FIFO),
//     so the same grid and endpoints always yield the same path.
//
// Endpoint policy:
//
//   - start == goal returns the single-seat path, before any expansion.
//   - A taken start is still seeded, and a taken goal is simply never
//     pushed, which yields an empty result when start != goal.
//     WithStrictEndpoints turns both cases into ErrUnavailableEndpoint.
//
// Options:
//
//   - WithHeuristic(h):      replace PriceDistance (e.g. with Manhattan).
//   - WithStrictEndpoints(): reject taken start/goal seats up front.
//   - WithMaxCost(limit):    never push routes costing more than limit.
//   - WithOnExpand(fn), WithOnPush(fn): observation hooks for tracing.
//
// Errors:
//
//   - ErrNilGrid:               nil grid.
//   - seatgrid.ErrOutOfBounds:  start or goal outside the grid.
//   - seatgrid.ErrInvalidGrid:  malformed matrices passed to FindSeats.
//   - ErrUnavailableEndpoint:   taken endpoint under WithStrictEndpoints.
//   - ErrBadMaxCost:            panic message of WithMaxCost(limit < 0).
//
// "No route" is not an error: Result.Found is false and Result.Path is empty.
//
// Thread safety:
//
//   - All search state is local to one call. A Grid is never mutated, so
//     any number of goroutines may search the same Grid at once.
//
// Example:
//
//	g, _ := seatgrid.From2D(available, prices)
//	res, err := seatsearch.Search(g, seatgrid.At(3, 0), seatgrid.At(0, 2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, seat := range res.Path {
//	    fmt.Printf("%s with price %d\n", seat, seat.Cost)
//	}
package seatsearch
