package seatsearch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatpath/seatgrid"
)

// TestPriceDistance checks positive, zero and negative estimates on the demo hall prices.
func TestPriceDistance(t *testing.T) {
	g, err := seatgrid.From2D(
		[][]int{{1, 1, 1, 1}, {1, 0, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}},
		[][]int{{50, 20, 40, 50}, {20, 30, 30, 40}, {10, 20, 30, 40}, {10, 20, 30, 40}},
	)
	require.NoError(t, err)
	goal := seatgrid.At(0, 2)

	cases := []struct {
		name string
		from seatgrid.Cell
		want int64
	}{
		{"FarCheap", seatgrid.At(3, 0), 5 + 30},
		{"NearCheap", seatgrid.At(0, 1), 1 + 20},
		{"PricierThanGoal", seatgrid.At(0, 0), 2 - 10},
		{"AtGoal", goal, 0},
		{"CostFieldIgnored", seatgrid.Cell{Row: 3, Col: 3, Cost: 1000}, 4 + 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PriceDistance(g, tc.from, goal))
		})
	}

	assert.Equal(t, int64(5), Manhattan(g, seatgrid.At(3, 0), goal))
}

// TestPriceDistance_Saturates keeps a huge goal price from wrapping negative.
func TestPriceDistance_Saturates(t *testing.T) {
	g, err := seatgrid.From2D([][]int{{1, 1}}, [][]int{{0, math.MaxInt64}})
	require.NoError(t, err)

	assert.Equal(t, int64(math.MaxInt64), PriceDistance(g, seatgrid.At(0, 0), seatgrid.At(0, 1)))
	assert.Equal(t, int64(1-math.MaxInt64), PriceDistance(g, seatgrid.At(0, 1), seatgrid.At(0, 0)))
}

// TestPrioritize_Saturates clamps cost plus estimate at math.MaxInt64.
func TestPrioritize_Saturates(t *testing.T) {
	assert.Equal(t, int64(7), prioritize(3, 4))
	assert.Equal(t, int64(-1), prioritize(3, -4))
	assert.Equal(t, int64(math.MaxInt64), prioritize(math.MaxInt64-1, 2))
	assert.Equal(t, int64(math.MaxInt64), prioritize(math.MaxInt64, 0))
}

// TestFrontier_FIFOOnTies pops equal priorities in insertion order.
func TestFrontier_FIFOOnTies(t *testing.T) {
	f := frontier{}
	pushAll := []entry{
		{idx: 1, priority: 5, seq: 0},
		{idx: 2, priority: 3, seq: 1},
		{idx: 3, priority: 5, seq: 2},
		{idx: 4, priority: 3, seq: 3},
		{idx: 5, priority: -2, seq: 4},
	}
	for _, e := range pushAll {
		pushEntry(&f, e)
	}

	var got []int
	for f.Len() > 0 {
		got = append(got, popEntry(&f).idx)
	}
	assert.Equal(t, []int{5, 2, 4, 1, 3}, got)
}
