package seatsearch

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/seatpath/seatgrid"
)

// maxCost is "no ceiling" in Options and the saturation point of priorities.
const maxCost = math.MaxInt64

// unreached marks a cell with no recorded costFromStart. Prices are
// non-negative, so no reached cell can carry it.
const unreached = -1

// noPredecessor marks the start of the cameFrom chain.
const noPredecessor = -1

// Search runs a best-first search over g from start to goal and returns the
// first route that pops the goal off the frontier.
//
// Frontier priority of a pushed cell v is costFromStart[v] + Heuristic(v, goal);
// costFromStart[start] is the start seat's own price and every step adds
// the price of the entered seat. Only orthogonal, in-bounds, available
// neighbors are pushed, and only when their tentative cost is strictly
// lower than the best recorded so far. There is no closed set, so a seat
// may be expanded more than once. A step whose cumulative cost would
// overflow int64 is never taken; priorities saturate at math.MaxInt64.
//
// Returns:
//
//   - Result.Found == true with Path from start to goal inclusive and Cost
//     equal to the sum of the path's prices, or
//   - Result.Found == false with an empty Path when the goal is unreachable
//     (or out of reach under WithMaxCost). This is not an error.
//
// Errors (checked in order, before any search work):
//
//  1. ErrNilGrid if g is nil.
//  2. seatgrid.ErrOutOfBounds if start or goal lies outside g.
//  3. ErrUnavailableEndpoint if WithStrictEndpoints is set and start or goal is taken.
//
// The Cost fields of start and goal are ignored; prices come from g.
//
// Complexity:
//
//   - Time:  O(P log P) where P is the number of frontier pushes; without a
//     closed set P can exceed R×C.
//   - Space: O(R×C + P).
func Search(g *seatgrid.Grid, start, goal seatgrid.Cell, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs; fail fast before allocating search state.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	s, err := g.Resolve(start)
	if err != nil {
		return Result{}, fmt.Errorf("seatsearch: start: %w", err)
	}
	t, err := g.Resolve(goal)
	if err != nil {
		return Result{}, fmt.Errorf("seatsearch: goal: %w", err)
	}
	if cfg.StrictEndpoints {
		if !g.Available(s.Row, s.Col) {
			return Result{}, fmt.Errorf("%w: start %s", ErrUnavailableEndpoint, s)
		}
		if !g.Available(t.Row, t.Col) {
			return Result{}, fmt.Errorf("%w: goal %s", ErrUnavailableEndpoint, t)
		}
	}

	// 3) Run.
	r := newRunner(g, cfg, t)
	r.seed(s)

	return r.process(), nil
}

// FindSeats is the matrix-in, seats-out form of Search: it validates the
// 0/1 availability and price matrices into a grid, searches, and returns
// only the path. An empty slice means no route exists.
func FindSeats(available, prices [][]int, start, goal seatgrid.Cell, opts ...Option) ([]seatgrid.Cell, error) {
	g, err := seatgrid.From2D(available, prices)
	if err != nil {
		return nil, err
	}
	res, err := Search(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// runner holds the state of a single Search; nothing outlives the call.
type runner struct {
	g        *seatgrid.Grid
	options  Options
	goal     seatgrid.Cell
	goalIdx  int
	cost     []int64  // costFromStart per cell index; unreached if none
	cameFrom []int    // predecessor cell index; noPredecessor for the start
	pq       frontier // min-heap on (priority, seq)
	seq      uint64
	expanded int
	pushed   int
}

func newRunner(g *seatgrid.Grid, cfg Options, goal seatgrid.Cell) *runner {
	n := g.Size()
	r := &runner{
		g:        g,
		options:  cfg,
		goal:     goal,
		goalIdx:  g.Index(goal.Row, goal.Col),
		cost:     make([]int64, n),
		cameFrom: make([]int, n),
		pq:       make(frontier, 0, n),
	}
	for i := range r.cost {
		r.cost[i] = unreached
		r.cameFrom[i] = noPredecessor
	}
	heap.Init(&r.pq)

	return r
}

// seed records the start seat at its own price and pushes it. The start is
// seeded even when it is taken; only WithStrictEndpoints rejects that.
func (r *runner) seed(start seatgrid.Cell) {
	c := int64(start.Cost)
	if c > r.options.MaxCost {
		return
	}
	i := r.g.Index(start.Row, start.Col)
	r.cost[i] = c
	r.push(i, c, prioritize(c, r.options.Heuristic(r.g, start, r.goal)))
}

// process pops until the goal surfaces or the frontier drains.
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(entry)
		if e.idx == r.goalIdx {
			return r.found()
		}
		r.expand(e.idx)
	}

	return Result{
		Found:    false,
		Path:     []seatgrid.Cell{},
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
}

// expand relaxes the four orthogonal neighbors of cell u using its current
// best cost, which may be lower than the cost its frontier entry carried.
func (r *runner) expand(u int) {
	row, col := r.g.Coordinate(u)
	cur := seatgrid.Cell{Row: row, Col: col, Cost: r.g.Price(row, col)}
	r.options.OnExpand(cur, r.cost[u])
	r.expanded++

	var v int
	var price, tentative int64
	for _, n := range r.g.Neighbors(cur) {
		v = r.g.Index(n.Row, n.Col)
		price = int64(n.Cost)

		// The sum would wrap past math.MaxInt64.
		if r.cost[u] > maxCost-price {
			continue
		}
		tentative = r.cost[u] + price

		// Over budget: never enters the frontier.
		if tentative > r.options.MaxCost {
			continue
		}
		// Strictly better only; equal costs keep the first predecessor.
		if r.cost[v] != unreached && tentative >= r.cost[v] {
			continue
		}

		r.cameFrom[v] = u
		r.cost[v] = tentative
		r.push(v, tentative, prioritize(tentative, r.options.Heuristic(r.g, n, r.goal)))
	}
}

// prioritize adds an estimate to a cost, saturating at maxCost. cost is never
// negative, so only a positive estimate can overflow.
func prioritize(cost, estimate int64) int64 {
	if estimate > 0 && cost > maxCost-estimate {
		return maxCost
	}

	return cost + estimate
}

func (r *runner) push(idx int, cost, priority int64) {
	heap.Push(&r.pq, entry{idx: idx, cost: cost, priority: priority, seq: r.seq})
	r.seq++
	r.pushed++

	row, col := r.g.Coordinate(idx)
	r.options.OnPush(seatgrid.Cell{Row: row, Col: col, Cost: r.g.Price(row, col)}, cost, priority)
}

// found walks cameFrom back from the goal and returns the path start → goal.
func (r *runner) found() Result {
	var path []seatgrid.Cell
	for at := r.goalIdx; at != noPredecessor; at = r.cameFrom[at] {
		row, col := r.g.Coordinate(at)
		path = append(path, seatgrid.Cell{Row: row, Col: col, Cost: r.g.Price(row, col)})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Found:    true,
		Path:     path,
		Cost:     r.cost[r.goalIdx],
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
}
