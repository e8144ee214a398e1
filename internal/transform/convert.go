package transform

import (
	"fmt"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// ToFloat rescales img into the conventional float range by dividing every
// element by the maximum pixel value of the source dtype, and stores the
// result as dtype dt.
//
// The divisor is looked up from the source dtype unless an explicit value is
// supplied as the optional maxValue argument. When the lookup is needed and
// the source dtype is not in the table, ToFloat returns an error wrapping
// ErrUnknownDType.
func ToFloat(img *tensor.Tensor, dt tensor.DType, maxValue ...float64) (*tensor.Tensor, error) {
	maxVal, err := resolveMax(img.DType(), maxValue)
	if err != nil {
		return nil, err
	}
	c, h, w := img.Shape()
	out := tensor.Zeros(dt, c, h, w)
	for i, n := 0, img.Len(); i < n; i++ {
		out.SetValue(i, img.Value(i)/maxVal)
	}
	return out, nil
}

// FromFloat is the multiplicative inverse of ToFloat modulo the truncating
// cast: it multiplies every element by the maximum pixel value of the target
// dtype dt and stores the result as dt.
//
// The factor is looked up from the target dtype unless supplied explicitly;
// a missing table entry yields an error wrapping ErrUnknownDType. Values
// that land outside the target kind's range after scaling saturate rather
// than wrap.
func FromFloat(img *tensor.Tensor, dt tensor.DType, maxValue ...float64) (*tensor.Tensor, error) {
	maxVal, err := resolveMax(dt, maxValue)
	if err != nil {
		return nil, err
	}
	c, h, w := img.Shape()
	out := tensor.Zeros(dt, c, h, w)
	for i, n := 0, img.Len(); i < n; i++ {
		out.SetValue(i, img.Value(i)*maxVal)
	}
	return out, nil
}

// resolveMax picks the explicit max value if one was given, otherwise looks
// dt up in the max-value table.
func resolveMax(dt tensor.DType, explicit []float64) (float64, error) {
	switch len(explicit) {
	case 0:
		return MaxValue(dt)
	case 1:
		return explicit[0], nil
	default:
		return 0, fmt.Errorf("at most one explicit max value allowed, got %d", len(explicit))
	}
}
