package seatgrid

import (
	"reflect"
	"testing"
)

// TestRegions_Simple finds three blocks in a 3×3 hall.
//
// Grid (1 = free, 0 = taken):
//
//	1 1 0
//	0 0 1
//	1 0 1
//
// Expected blocks, in row-major order of their first seat:
// {(0,0),(0,1)}, {(1,2),(2,2)}, {(2,0)}.
func TestRegions_Simple(t *testing.T) {
	g, err := From2D(
		[][]int{{1, 1, 0}, {0, 0, 1}, {1, 0, 1}},
		[][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	got := g.Regions()
	want := [][]Cell{
		{{0, 0, 1}, {0, 1, 2}},
		{{1, 2, 6}, {2, 2, 9}},
		{{2, 0, 7}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Regions() = %v; want %v", got, want)
	}
}

// TestRegions_AllTaken returns no blocks when every seat is sold.
func TestRegions_AllTaken(t *testing.T) {
	g, _ := From2D([][]int{{0, 0}, {0, 0}}, [][]int{{1, 1}, {1, 1}})
	if n := len(g.Regions()); n != 0 {
		t.Errorf("all taken: got %d regions; want 0", n)
	}
}

// TestConnected checks same-block, cross-block and taken-seat queries.
func TestConnected(t *testing.T) {
	g, _ := From2D(
		[][]int{{1, 1, 0}, {0, 0, 1}, {1, 0, 1}},
		[][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
	)

	cases := []struct {
		a, b Cell
		want bool
	}{
		{At(0, 0), At(0, 1), true},
		{At(1, 2), At(2, 2), true},
		{At(0, 0), At(0, 0), true},
		{At(0, 0), At(2, 2), false},
		{At(0, 0), At(0, 2), false}, // taken
		{At(1, 1), At(1, 1), false}, // taken
		{At(5, 5), At(0, 0), false}, // off grid
	}
	for _, tc := range cases {
		if got := g.Connected(tc.a, tc.b); got != tc.want {
			t.Errorf("Connected(%s, %s) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
