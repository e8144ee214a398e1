package transform

import (
	"errors"
	"fmt"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// ErrUnknownDType is returned when a maximum-value lookup is required for a
// dtype that has no table entry and no explicit maximum was supplied.
var ErrUnknownDType = errors.New("unknown dtype")

// ErrUnsupportedDType is returned when a dtype-polymorphic operation
// receives an input dtype outside its supported set.
var ErrUnsupportedDType = errors.New("unsupported dtype")

// maxValues is the fixed table mapping a pixel storage kind to its maximum
// representable pixel value. It is never mutated after init.
var maxValues = map[tensor.DType]float64{
	tensor.Uint8:   255,
	tensor.Float32: 1.0,
	tensor.Float64: 1.0,
}

// MaxValue returns the maximum pixel value for the given storage kind:
// 255 for uint8, 1.0 for float32 and float64. Any other dtype yields an
// error wrapping ErrUnknownDType.
func MaxValue(dt tensor.DType) (float64, error) {
	maxVal, ok := maxValues[dt]
	if !ok {
		return 0, fmt.Errorf("%w: can't infer the maximum value for dtype %s, pass it explicitly", ErrUnknownDType, dt)
	}
	return maxVal, nil
}
