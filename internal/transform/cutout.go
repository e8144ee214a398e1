package transform

import (
	"fmt"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// Hole is a rectangular cutout region in pixel coordinates.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive), the same half-open convention used for image regions
// throughout this module.
type Hole struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// Cutout overwrites the given rectangular regions with fillValue across all
// channels and returns the result. The input tensor is never mutated; the
// fill is applied to an independent copy.
//
// Holes may overlap; overlapping holes simply apply the fill repeatedly.
// Every hole must lie inside the image and have non-negative extent,
// otherwise Cutout returns an error and leaves no partial result.
func Cutout(img *tensor.Tensor, holes []Hole, fillValue float64) (*tensor.Tensor, error) {
	channels, height, width := img.Shape()
	for _, hole := range holes {
		if hole.X1 < 0 || hole.Y1 < 0 || hole.X2 > width || hole.Y2 > height {
			return nil, fmt.Errorf("hole (%d,%d)-(%d,%d) outside image bounds %dx%d",
				hole.X1, hole.Y1, hole.X2, hole.Y2, width, height)
		}
		if hole.X1 > hole.X2 || hole.Y1 > hole.Y2 {
			return nil, fmt.Errorf("invalid hole (%d,%d)-(%d,%d): x1 must be <= x2, y1 must be <= y2",
				hole.X1, hole.Y1, hole.X2, hole.Y2)
		}
	}

	out := img.Clone()
	for _, hole := range holes {
		for c := 0; c < channels; c++ {
			for y := hole.Y1; y < hole.Y2; y++ {
				for x := hole.X1; x < hole.X2; x++ {
					out.Set(c, y, x, fillValue)
				}
			}
		}
	}
	return out, nil
}
