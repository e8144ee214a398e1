package transform

import (
	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// Transform is an image transform over a single tensor. Transforms never
// mutate their input; they return a new tensor or an error.
type Transform func(*tensor.Tensor) (*tensor.Tensor, error)

// Clip clamps every element of t to [0, maxValue] and returns the result
// stored as dtype dt. Clamping is total, so there is no error path.
func Clip(t *tensor.Tensor, dt tensor.DType, maxValue float64) *tensor.Tensor {
	c, h, w := t.Shape()
	out := tensor.Zeros(dt, c, h, w)
	for i, n := 0, t.Len(); i < n; i++ {
		v := t.Value(i)
		if v < 0 {
			v = 0
		} else if v > maxValue {
			v = maxValue
		}
		out.SetValue(i, v)
	}
	return out
}

// Clipped wraps a transform so that its result is clamped back to the legal
// range of the input's dtype. The wrapper captures the input dtype and its
// maximum pixel value (defaulting to 1.0 for dtypes outside the table),
// delegates to fn, then clips the result to that dtype and maximum.
//
// Integer-path colorspace transforms use this to guarantee a value in the
// legal range despite intermediate floating arithmetic.
func Clipped(fn Transform) Transform {
	return func(img *tensor.Tensor) (*tensor.Tensor, error) {
		dt := img.DType()
		maxVal, err := MaxValue(dt)
		if err != nil {
			maxVal = 1.0
		}
		out, err := fn(img)
		if err != nil {
			return nil, err
		}
		return Clip(out, dt, maxVal), nil
	}
}
