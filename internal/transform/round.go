package transform

import (
	"math"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// RoundOpenCV converts a floating tensor to the nearest integers using
// OpenCV-compatible rounding and returns the result as an int32 tensor.
//
// For each element x, with intPart = trunc(x) and fract = x - intPart:
//   - if fract is exactly +0.5 or -0.5 and intPart is even, the result is
//     intPart (round half to even applies only exactly at the tie);
//   - otherwise the result is trunc(x + 0.5) for x >= 0 and trunc(x - 0.5)
//     for x < 0 (round away from zero).
//
// Both cases agree with round-half-to-even at every exact .5 tie and with
// ordinary nearest rounding everywhere else, so the output byte-matches an
// integer reference library after a narrowing cast. Callers that need a
// narrower kind clip and cast afterwards.
func RoundOpenCV(t *tensor.Tensor) *tensor.Tensor {
	c, h, w := t.Shape()
	out := tensor.Zeros(tensor.Int32, c, h, w)
	for i, n := 0, t.Len(); i < n; i++ {
		x := t.Value(i)
		intPart := math.Trunc(x)
		fract := x - intPart
		if (fract == 0.5 || fract == -0.5) && math.Mod(intPart, 2) == 0 {
			out.SetValue(i, intPart)
			continue
		}
		if x >= 0 {
			out.SetValue(i, math.Trunc(x+0.5))
		} else {
			out.SetValue(i, math.Trunc(x-0.5))
		}
	}
	return out
}
