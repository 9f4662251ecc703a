package seatgrid

// Regions finds all orthogonally connected blocks of available seats.
// Blocks are returned in row-major order of their first seat; seats inside
// a block are in BFS discovery order from that seat.
//
// Time:   O(R×C).
// Memory: O(R×C) for the seen flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, g.Size())
	var regions [][]Cell

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !g.available[r][c] || seen[g.Index(r, c)] {
				continue
			}
			seen[g.Index(r, c)] = true
			queue := []Cell{{Row: r, Col: c, Cost: g.prices[r][c]}}
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi]) {
					i := g.Index(n.Row, n.Col)
					if !seen[i] {
						seen[i] = true
						queue = append(queue, n)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// Connected reports whether a and b are both available and lie in the same
// block of seats. Any search between two connected seats can succeed;
// between unconnected ones it cannot.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Available(a.Row, a.Col) || !g.Available(b.Row, b.Col) {
		return false
	}
	if a.SamePosition(b) {
		return true
	}
	seen := make([]bool, g.Size())
	seen[g.Index(a.Row, a.Col)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n.SamePosition(b) {
				return true
			}
			i := g.Index(n.Row, n.Col)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
