package imgconv

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"

	"github.com/ironsheep/pixel-augment/internal/tensor"
	"github.com/ironsheep/pixel-augment/internal/transform"
)

// FromImage converts any image.Image into a 3-channel uint8 RGB tensor with
// shape (3, height, width). The image is first normalized to RGBA, then the
// color channels are copied plane by plane; alpha is discarded.
func FromImage(img image.Image) *tensor.Tensor {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	plane := height * width
	data := make([]uint8, 3*plane)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := rgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			dst := y*width + x
			data[dst] = rgba.Pix[src]
			data[plane+dst] = rgba.Pix[src+1]
			data[2*plane+dst] = rgba.Pix[src+2]
		}
	}
	return tensor.NewUint8(3, height, width, data)
}

// ToImage converts a 3-channel RGB tensor back to a fully opaque NRGBA
// image. Uint8 tensors are copied directly. Float tensors are assumed to
// hold pixels in [0, 1]; they are rescaled to [0, 255], rounded and clamped
// before the copy. Any other dtype or channel count is an error.
func ToImage(t *tensor.Tensor) (*image.NRGBA, error) {
	channels, height, width := t.Shape()
	if channels != 3 {
		return nil, fmt.Errorf("image conversion needs a 3-channel tensor, got %d channels", channels)
	}

	var u8 *tensor.Tensor
	switch t.DType() {
	case tensor.Uint8:
		u8 = t
	case tensor.Float32, tensor.Float64:
		scaled := tensor.Zeros(tensor.Float64, channels, height, width)
		for i, n := 0, t.Len(); i < n; i++ {
			scaled.SetValue(i, t.Value(i)*255.0)
		}
		u8 = transform.Clip(transform.RoundOpenCV(scaled), tensor.Uint8, 255)
	default:
		return nil, fmt.Errorf("cannot render %s tensor as an image", t.DType())
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	pix := u8.Uint8s()
	plane := height * width
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := y*width + x
			dst := out.PixOffset(x, y)
			out.Pix[dst] = pix[src]
			out.Pix[dst+1] = pix[plane+src]
			out.Pix[dst+2] = pix[2*plane+src]
			out.Pix[dst+3] = 255
		}
	}
	return out, nil
}
