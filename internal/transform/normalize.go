package transform

import (
	"fmt"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// Normalize applies per-channel affine rescaling: (pixel - mean) / std,
// computed in float and returned as a float32 tensor.
//
// mean and std are each either a single element (applied to every channel)
// or one element per channel. std must not contain zeros. There is no
// clipping: normalization matches statistics, it does not produce a display
// range, so results may lie outside [0, 1].
func Normalize(img *tensor.Tensor, mean, std []float64) (*tensor.Tensor, error) {
	channels, height, width := img.Shape()
	if err := checkStats("mean", mean, channels); err != nil {
		return nil, err
	}
	if err := checkStats("std", std, channels); err != nil {
		return nil, err
	}
	for i, s := range std {
		if s == 0 {
			return nil, fmt.Errorf("std[%d] is zero", i)
		}
	}

	out := tensor.Zeros(tensor.Float32, channels, height, width)
	plane := img.PlaneSize()
	for c := 0; c < channels; c++ {
		m := statFor(mean, c)
		denominator := 1.0 / statFor(std, c)
		for i := 0; i < plane; i++ {
			idx := c*plane + i
			out.SetValue(idx, (img.Value(idx)-m)*denominator)
		}
	}
	return out, nil
}

func checkStats(name string, values []float64, channels int) error {
	if len(values) != 1 && len(values) != channels {
		return fmt.Errorf("%s must have 1 or %d elements, got %d", name, channels, len(values))
	}
	return nil
}

// statFor broadcasts a scalar or picks the per-channel entry.
func statFor(values []float64, c int) float64 {
	if len(values) == 1 {
		return values[0]
	}
	return values[c]
}
