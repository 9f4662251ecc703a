package seatsearch

import "github.com/katalvlaran/seatpath/seatgrid"

// PriceDistance is the default heuristic: the Manhattan distance from
// `from` to `goal` plus the signed price difference price(goal) − price(from).
//
// The result can be negative and is neither admissible nor consistent, so
// a search ordered by it is a best-first cost search rather than a
// guaranteed shortest-path search. Prices are read from g; the Cost fields
// of the arguments are ignored. The result saturates at math.MaxInt64.
func PriceDistance(g *seatgrid.Grid, from, goal seatgrid.Cell) int64 {
	manhattan := int64(absInt(from.Row-goal.Row) + absInt(from.Col-goal.Col))
	delta := int64(g.Price(goal.Row, goal.Col)) - int64(g.Price(from.Row, from.Col))
	if delta > maxCost-manhattan {
		return maxCost
	}

	return manhattan + delta
}

// Manhattan ignores prices and returns only the grid distance to goal.
// It is admissible for unit prices and is offered for comparison runs.
func Manhattan(_ *seatgrid.Grid, from, goal seatgrid.Cell) int64 {
	return int64(absInt(from.Row-goal.Row) + absInt(from.Col-goal.Col))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
