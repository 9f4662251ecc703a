package scenario

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Registers the PBM/PGM/PPM decoders with image.Decode.
	_ "github.com/jbuchbinder/gopnm"
)

// ReadAvailabilityImage decodes a PNM bitmap (PGM in practice) into a 0/1
// availability matrix, one seat per pixel, row 0 at the top of the image.
// A pixel whose darkness (255 − gray) / 255 exceeds thresh is a sold seat (0).
func ReadAvailabilityImage(path string, thresh float64) ([][]int, error) {
	if thresh <= 0 || thresh > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadThreshold, thresh)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scenario: decode image %s: %w", path, err)
	}

	b := img.Bounds()
	avail := make([][]int, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]int, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			darkness := (255.0 - float64(gray)) / 255.0
			if darkness <= thresh {
				row[x-b.Min.X] = 1
			}
		}
		avail[y-b.Min.Y] = row
	}

	return avail, nil
}
