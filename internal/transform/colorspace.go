package transform

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// RGBToHLS converts a 3-channel RGB tensor to the HLS colorspace.
//
// The float variant (float32/float64 input) assumes pixels in [0, 1] and
// returns a tensor of the same dtype with Hue in degrees [0, 360) and L, S
// in [0, 1]. The uint8 variant rescales to [0, 1], converts, maps Hue to
// [0, 180] and L, S to [0, 255], rounds with RoundOpenCV and clips back to
// uint8 so the result byte-matches an integer reference implementation.
//
// Any other input dtype yields an error wrapping ErrUnsupportedDType.
func RGBToHLS(img *tensor.Tensor) (*tensor.Tensor, error) {
	if err := requireColorChannels(img); err != nil {
		return nil, err
	}
	switch img.DType() {
	case tensor.Float32, tensor.Float64:
		return rgbToHLSFloat(img)
	case tensor.Uint8:
		return Clipped(rgbToHLSUint8)(img)
	default:
		return nil, fmt.Errorf("%w: rgb to hls supports only uint8, float32 and float64, got %s",
			ErrUnsupportedDType, img.DType())
	}
}

// HLSToRGB converts a 3-channel HLS tensor back to RGB. It mirrors RGBToHLS:
// the float variant reads Hue in degrees and L, S in [0, 1]; the uint8
// variant reads Hue in [0, 180] and L, S in [0, 255], converts through the
// float-domain kernel, rescales to [0, 255], rounds and clips.
//
// Any other input dtype yields an error wrapping ErrUnsupportedDType.
func HLSToRGB(img *tensor.Tensor) (*tensor.Tensor, error) {
	if err := requireColorChannels(img); err != nil {
		return nil, err
	}
	switch img.DType() {
	case tensor.Float32, tensor.Float64:
		return hlsToRGBFloat(img)
	case tensor.Uint8:
		return Clipped(hlsToRGBUint8)(img)
	default:
		return nil, fmt.Errorf("%w: hls to rgb supports only uint8, float32 and float64, got %s",
			ErrUnsupportedDType, img.DType())
	}
}

func requireColorChannels(img *tensor.Tensor) error {
	if c, _, _ := img.Shape(); c != 3 {
		return fmt.Errorf("colorspace conversion needs a 3-channel tensor, got %d channels", c)
	}
	return nil
}

// rgbToHLSFloat converts float pixels in [0, 1] through the trusted HSL
// kernel. No clipping: float inputs are assumed in range by convention.
func rgbToHLSFloat(img *tensor.Tensor) (*tensor.Tensor, error) {
	c, h, w := img.Shape()
	out := tensor.Zeros(img.DType(), c, h, w)
	plane := img.PlaneSize()
	for i := 0; i < plane; i++ {
		col := colorful.Color{R: img.Value(i), G: img.Value(plane + i), B: img.Value(2*plane + i)}
		hue, sat, light := col.Hsl()
		out.SetValue(i, hue)
		out.SetValue(plane+i, light)
		out.SetValue(2*plane+i, sat)
	}
	return out, nil
}

// rgbToHLSUint8 is the integer-path kernel. It returns rounded int32 values;
// the Clipped wrapper in RGBToHLS clamps them to [0, 255] and casts to uint8.
func rgbToHLSUint8(img *tensor.Tensor) (*tensor.Tensor, error) {
	c, h, w := img.Shape()
	f := tensor.Zeros(tensor.Float64, c, h, w)
	plane := img.PlaneSize()
	for i := 0; i < plane; i++ {
		col := colorful.Color{
			R: img.Value(i) / 255.0,
			G: img.Value(plane+i) / 255.0,
			B: img.Value(2*plane+i) / 255.0,
		}
		hue, sat, light := col.Hsl()
		// Hue in [0,180], L and S in [0,255], matching the integer convention.
		f.SetValue(i, hue/2.0)
		f.SetValue(plane+i, light*255.0)
		f.SetValue(2*plane+i, sat*255.0)
	}
	return RoundOpenCV(f), nil
}

func hlsToRGBFloat(img *tensor.Tensor) (*tensor.Tensor, error) {
	c, h, w := img.Shape()
	out := tensor.Zeros(img.DType(), c, h, w)
	plane := img.PlaneSize()
	for i := 0; i < plane; i++ {
		col := colorful.Hsl(img.Value(i), img.Value(2*plane+i), img.Value(plane+i))
		out.SetValue(i, col.R)
		out.SetValue(plane+i, col.G)
		out.SetValue(2*plane+i, col.B)
	}
	return out, nil
}

func hlsToRGBUint8(img *tensor.Tensor) (*tensor.Tensor, error) {
	c, h, w := img.Shape()
	f := tensor.Zeros(tensor.Float64, c, h, w)
	plane := img.PlaneSize()
	for i := 0; i < plane; i++ {
		col := colorful.Hsl(
			img.Value(i)*2.0,
			img.Value(2*plane+i)/255.0,
			img.Value(plane+i)/255.0,
		)
		f.SetValue(i, col.R*255.0)
		f.SetValue(plane+i, col.G*255.0)
		f.SetValue(2*plane+i, col.B*255.0)
	}
	return RoundOpenCV(f), nil
}
