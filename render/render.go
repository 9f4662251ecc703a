// Package render draws a seat grid and a found path to a PNG image:
// free seats are shaded by price, sold seats are dark, the path is a
// polyline with a green start marker and a blue goal marker.
package render

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/seatpath/seatgrid"
)

// ErrBadScale indicates a non-positive pixels-per-seat scale.
var ErrBadScale = errors.New("render: scale must be positive")

// Palette used by Draw.
var (
	CheapColor     = color.RGBA{R: 170, G: 220, B: 170, A: 255}
	ExpensiveColor = color.RGBA{R: 240, G: 160, B: 160, A: 255}
	TakenColor     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	PathColor      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	StartColor     = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	GoalColor      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Draw renders g at scale pixels per seat and overlays path if it is non-empty.
// Seat (r, c) occupies the square [c·scale, (c+1)·scale) × [r·scale, (r+1)·scale).
func Draw(g *seatgrid.Grid, path []seatgrid.Cell, scale int) (image.Image, error) {
	dc, err := draw(g, path, scale)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// SavePNG renders like Draw and writes the image to file.
func SavePNG(file string, g *seatgrid.Grid, path []seatgrid.Cell, scale int) error {
	dc, err := draw(g, path, scale)
	if err != nil {
		return err
	}

	return dc.SavePNG(file)
}

// EncodePNG renders like Draw and writes PNG bytes to w.
func EncodePNG(w io.Writer, g *seatgrid.Grid, path []seatgrid.Cell, scale int) error {
	dc, err := draw(g, path, scale)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

func draw(g *seatgrid.Grid, path []seatgrid.Cell, scale int) (*gg.Context, error) {
	if scale <= 0 {
		return nil, ErrBadScale
	}
	s := float64(scale)
	dc := gg.NewContext(g.Cols*scale, g.Rows*scale)
	dc.SetColor(color.White)
	dc.Clear()

	lo, hi := priceRange(g)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Available(r, c) {
				dc.SetColor(priceColor(g.Price(r, c), lo, hi))
			} else {
				dc.SetColor(TakenColor)
			}
			dc.DrawRectangle(float64(c)*s, float64(r)*s, s, s)
			dc.Fill()
		}
	}

	if len(path) == 0 {
		return dc, nil
	}

	center := func(c seatgrid.Cell) (float64, float64) {
		return float64(c.Col)*s + s/2, float64(c.Row)*s + s/2
	}
	if len(path) > 1 {
		dc.SetColor(PathColor)
		dc.SetLineWidth(s / 4)
		dc.MoveTo(center(path[0]))
		for _, c := range path[1:] {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}

	x, y := center(path[0])
	dc.SetColor(StartColor)
	dc.DrawCircle(x, y, s/3)
	dc.Fill()

	x, y = center(path[len(path)-1])
	dc.SetColor(GoalColor)
	dc.DrawCircle(x, y, s/3)
	dc.Fill()

	return dc, nil
}

// priceRange returns the lowest and highest price among free seats.
func priceRange(g *seatgrid.Grid) (int, int) {
	lo, hi, seen := 0, 0, false
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !g.Available(r, c) {
				continue
			}
			p := g.Price(r, c)
			if !seen || p < lo {
				lo = p
			}
			if !seen || p > hi {
				hi = p
			}
			seen = true
		}
	}

	return lo, hi
}

// priceColor interpolates linearly from CheapColor at lo to ExpensiveColor at hi.
func priceColor(p, lo, hi int) color.RGBA {
	if hi <= lo {
		return CheapColor
	}
	t := float64(p-lo) / float64(hi-lo)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
	}

	return color.RGBA{
		R: mix(CheapColor.R, ExpensiveColor.R),
		G: mix(CheapColor.G, ExpensiveColor.G),
		B: mix(CheapColor.B, ExpensiveColor.B),
		A: 255,
	}
}
