package transform

import (
	"fmt"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// AddSnow bleaches out dark-to-mid lightness pixels, imitating snow.
//
// snowPoint controls how much of the lightness range is bleached: it is
// rescaled internally to a uint8 lightness threshold snowPoint*127.5 + 85.
// Every pixel whose HLS Lightness falls below the threshold has its
// Lightness multiplied by brightnessCoeff and clamped back to [0, 255].
//
// Only uint8 and float32 inputs are accepted; anything else yields an error
// wrapping ErrUnsupportedDType. A float32 input is converted to uint8 for
// the effect and converted back to float32 at the end, so the output dtype
// always matches the input dtype.
func AddSnow(img *tensor.Tensor, snowPoint, brightnessCoeff float64) (*tensor.Tensor, error) {
	needsFloat := false

	snowPoint = snowPoint*127.5 + 85 // threshold in uint8 lightness units

	switch img.DType() {
	case tensor.Uint8:
	case tensor.Float32:
		u8, err := FromFloat(img, tensor.Uint8)
		if err != nil {
			return nil, err
		}
		img = u8
		needsFloat = true
	default:
		return nil, fmt.Errorf("%w: snow effect supports only uint8 and float32, got %s",
			ErrUnsupportedDType, img.DType())
	}

	hls, err := RGBToHLS(img)
	if err != nil {
		return nil, err
	}
	hlsF := hls.Cast(tensor.Float32)

	plane := hlsF.PlaneSize()
	for i := 0; i < plane; i++ {
		idx := plane + i // channel 1 = Lightness
		if v := hlsF.Value(idx); v < snowPoint {
			v *= brightnessCoeff
			if v > 255 {
				v = 255
			} else if v < 0 {
				v = 0
			}
			hlsF.SetValue(idx, v)
		}
	}

	rgb, err := HLSToRGB(hlsF.Cast(tensor.Uint8))
	if err != nil {
		return nil, err
	}
	if needsFloat {
		return ToFloat(rgb, tensor.Float32)
	}
	return rgb, nil
}
