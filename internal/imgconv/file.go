package imgconv

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// Load reads an image file and returns it as a uint8 RGB tensor. Format is
// detected from the file contents; PNG, JPEG, GIF, TIFF and BMP are
// supported by the underlying decoder.
func Load(path string) (*tensor.Tensor, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromImage(img), nil
}

// Save encodes a tensor to an image file. The format is chosen from the
// file extension by the underlying encoder. Float tensors are rescaled from
// [0, 1] as in ToImage.
func Save(t *tensor.Tensor, path string) error {
	img, err := ToImage(t)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Resize scales a tensor to the given pixel dimensions using Lanczos
// resampling, going through an image round-trip. Intended for preparing
// inputs before augmentation, not for exact numeric work: resampling
// interpolates pixel values.
func Resize(t *tensor.Tensor, width, height int) (*tensor.Tensor, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid resize dimensions %dx%d", width, height)
	}
	img, err := ToImage(t)
	if err != nil {
		return nil, err
	}
	var resized image.Image = imaging.Resize(img, width, height, imaging.Lanczos)
	return FromImage(resized), nil
}
