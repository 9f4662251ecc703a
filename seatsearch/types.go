// Package seatsearch defines the options, hooks, result type and sentinel
// errors for the best-first seat search.
package seatsearch

import (
	"errors"

	"github.com/katalvlaran/seatpath/seatgrid"
)

// Sentinel errors returned by Search. Grid shape and bounds failures are
// reported with the seatgrid sentinels (ErrInvalidGrid, ErrOutOfBounds).
var (
	// ErrNilGrid indicates a nil *seatgrid.Grid was passed to Search.
	ErrNilGrid = errors.New("seatsearch: grid is nil")

	// ErrUnavailableEndpoint indicates that WithStrictEndpoints is set and
	// the start or goal seat is taken.
	ErrUnavailableEndpoint = errors.New("seatsearch: start or goal seat is not available")

	// ErrBadMaxCost indicates a negative cost ceiling passed to WithMaxCost.
	ErrBadMaxCost = errors.New("seatsearch: MaxCost must be non-negative")
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It is only used to order the frontier; it does not need to be admissible.
type Heuristic func(g *seatgrid.Grid, from, goal seatgrid.Cell) int64

// Options configures Search.
//
//	Heuristic:       frontier priority estimate; default PriceDistance.
//	StrictEndpoints: a taken start or goal seat fails with ErrUnavailableEndpoint.
//	MaxCost:         cumulative cost ceiling; neighbors whose tentative cost
//	                 exceeds it are never pushed. Default math.MaxInt64.
//	OnExpand:        called with a cell and its costFromStart on each expansion.
//	OnPush:          called with a cell, its tentative cost and its priority on each push.
type Options struct {
	Heuristic       Heuristic
	StrictEndpoints bool
	MaxCost         int64
	OnExpand        func(c seatgrid.Cell, costFromStart int64)
	OnPush          func(c seatgrid.Cell, costFromStart, priority int64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic replaces the default PriceDistance heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithStrictEndpoints rejects a taken start or goal seat up front instead
// of seeding the search from it.
func WithStrictEndpoints() Option {
	return func(o *Options) {
		o.StrictEndpoints = true
	}
}

// WithMaxCost sets a ceiling on the cumulative cost of any explored route.
// Must pass a non-negative value; a negative limit panics with ErrBadMaxCost.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = limit
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(c seatgrid.Cell, costFromStart int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run after each frontier push.
func WithOnPush(fn func(c seatgrid.Cell, costFromStart, priority int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// DefaultOptions returns the configuration Search starts from:
// PriceDistance heuristic, lenient endpoints, no cost ceiling, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:       PriceDistance,
		StrictEndpoints: false,
		MaxCost:         maxCost,
		OnExpand:        func(seatgrid.Cell, int64) {},
		OnPush:          func(seatgrid.Cell, int64, int64) {},
	}
}

// Result is the outcome of one Search.
//
//   - Found:    true if the goal was reached.
//   - Path:     seats from start to goal inclusive, Cost filled from the grid;
//     empty (non-nil) when Found is false.
//   - Cost:     sum of prices along Path, equal to costFromStart[goal].
//   - Expanded: number of frontier pops that expanded neighbors.
//   - Pushed:   number of frontier pushes, the start seed included.
type Result struct {
	Found    bool
	Path     []seatgrid.Cell
	Cost     int64
	Expanded int
	Pushed   int
}
