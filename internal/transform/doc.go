// Package transform implements pixel-level image transforms for augmentation
// pipelines: dtype-aware clipping, RGB↔HLS colorspace conversion, rescaling
// between integer and float pixel representations, rectangular region masking
// (cutout), a snow weather effect, and per-channel normalization.
//
// # Dual Pixel Representations
//
// Every operation behaves consistently across two representations of an
// image: 8-bit unsigned pixels in [0, 255] and floating-point pixels in
// [0, 1]. Dtype-polymorphic operations (RGBToHLS, HLSToRGB, AddSnow) select
// an integer or float code path from the input tensor's dtype and return
// ErrUnsupportedDType for anything outside their supported set.
//
// # Integer-Path Rounding
//
// The integer code paths reproduce the pixel values of OpenCV-style integer
// image processing: float-domain colorspace math followed by RoundOpenCV,
// a clamp to the legal range, and a cast back to uint8. RoundOpenCV rounds
// half to even exactly at .5 ties and away from zero everywhere else, which
// is what makes the uint8 results byte-comparable against an integer
// reference implementation.
//
// # HLS Convention
//
// HLS tensors store Hue in channel 0, Lightness in channel 1 and Saturation
// in channel 2. Integer tensors hold H in [0, 180] and L, S in [0, 255];
// float tensors hold H in degrees [0, 360) and L, S in [0, 1].
//
// # Errors
//
// Two sentinel errors cover all failure modes of the numeric core:
// ErrUnknownDType when a maximum-value lookup has no table entry and no
// explicit maximum was supplied, and ErrUnsupportedDType when a polymorphic
// operation receives a dtype outside its supported set. Both are surfaced
// wrapped, so callers match them with errors.Is. Cutout and Normalize
// additionally validate their geometry and statistics arguments and return
// plain descriptive errors for violations.
package transform
