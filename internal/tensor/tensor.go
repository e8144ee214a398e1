package tensor

import (
	"fmt"
	"math"
)

// DType identifies the element storage kind of a Tensor.
type DType int

const (
	// Uint8 is 8-bit unsigned pixel storage, range [0, 255].
	Uint8 DType = iota
	// Int32 is 32-bit signed integer storage, produced by rounding.
	Int32
	// Float32 is single-precision float storage, conventional range [0, 1].
	Float32
	// Float64 is double-precision float storage, conventional range [0, 1].
	Float64
)

// String returns the lowercase name of the dtype.
func (d DType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("dtype(%d)", int(d))
}

// Tensor is a 3-dimensional pixel buffer with axes (channel, height, width).
//
// Exactly one of the storage slices is non-nil, selected by the dtype tag.
// See the package documentation for layout and casting rules.
type Tensor struct {
	dtype    DType
	channels int
	height   int
	width    int

	u8  []uint8
	i32 []int32
	f32 []float32
	f64 []float64
}

// NewUint8 creates a uint8 tensor wrapping data.
// Panics if len(data) != channels*height*width.
func NewUint8(channels, height, width int, data []uint8) *Tensor {
	checkLen(Uint8, channels, height, width, len(data))
	return &Tensor{dtype: Uint8, channels: channels, height: height, width: width, u8: data}
}

// NewInt32 creates an int32 tensor wrapping data.
// Panics if len(data) != channels*height*width.
func NewInt32(channels, height, width int, data []int32) *Tensor {
	checkLen(Int32, channels, height, width, len(data))
	return &Tensor{dtype: Int32, channels: channels, height: height, width: width, i32: data}
}

// NewFloat32 creates a float32 tensor wrapping data.
// Panics if len(data) != channels*height*width.
func NewFloat32(channels, height, width int, data []float32) *Tensor {
	checkLen(Float32, channels, height, width, len(data))
	return &Tensor{dtype: Float32, channels: channels, height: height, width: width, f32: data}
}

// NewFloat64 creates a float64 tensor wrapping data.
// Panics if len(data) != channels*height*width.
func NewFloat64(channels, height, width int, data []float64) *Tensor {
	checkLen(Float64, channels, height, width, len(data))
	return &Tensor{dtype: Float64, channels: channels, height: height, width: width, f64: data}
}

// Zeros creates a zero-filled tensor of the given dtype and shape.
// Panics if the dtype is unknown or a dimension is negative.
func Zeros(dt DType, channels, height, width int) *Tensor {
	if channels < 0 || height < 0 || width < 0 {
		panic(fmt.Sprintf("tensor: negative dimension in shape (%d, %d, %d)", channels, height, width))
	}
	n := channels * height * width
	t := &Tensor{dtype: dt, channels: channels, height: height, width: width}
	switch dt {
	case Uint8:
		t.u8 = make([]uint8, n)
	case Int32:
		t.i32 = make([]int32, n)
	case Float32:
		t.f32 = make([]float32, n)
	case Float64:
		t.f64 = make([]float64, n)
	default:
		panic(fmt.Sprintf("tensor: unknown dtype %s", dt))
	}
	return t
}

func checkLen(dt DType, channels, height, width, n int) {
	if want := channels * height * width; n != want {
		panic(fmt.Sprintf("tensor: %s data length %d does not match shape (%d, %d, %d), want %d",
			dt, n, channels, height, width, want))
	}
}

// DType returns the storage kind tag.
func (t *Tensor) DType() DType { return t.dtype }

// Shape returns the (channels, height, width) dimensions.
func (t *Tensor) Shape() (channels, height, width int) {
	return t.channels, t.height, t.width
}

// Len returns the total number of elements.
func (t *Tensor) Len() int { return t.channels * t.height * t.width }

// PlaneSize returns the number of elements in one channel plane (height*width).
func (t *Tensor) PlaneSize() int { return t.height * t.width }

// Index returns the flat offset of coordinate (c, y, x).
func (t *Tensor) Index(c, y, x int) int {
	return c*t.height*t.width + y*t.width + x
}

// Clone returns an independent deep copy. Mutating the copy never affects
// the original.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{dtype: t.dtype, channels: t.channels, height: t.height, width: t.width}
	switch t.dtype {
	case Uint8:
		out.u8 = append([]uint8(nil), t.u8...)
	case Int32:
		out.i32 = append([]int32(nil), t.i32...)
	case Float32:
		out.f32 = append([]float32(nil), t.f32...)
	case Float64:
		out.f64 = append([]float64(nil), t.f64...)
	}
	return out
}

// Value reads element i as a float64, regardless of storage kind.
func (t *Tensor) Value(i int) float64 {
	switch t.dtype {
	case Uint8:
		return float64(t.u8[i])
	case Int32:
		return float64(t.i32[i])
	case Float32:
		return float64(t.f32[i])
	default:
		return t.f64[i]
	}
}

// SetValue writes v to element i, converting to the storage kind.
// Integer kinds truncate toward zero and saturate at their bounds.
func (t *Tensor) SetValue(i int, v float64) {
	switch t.dtype {
	case Uint8:
		t.u8[i] = uint8(saturate(v, 0, 255))
	case Int32:
		t.i32[i] = int32(saturate(v, math.MinInt32, math.MaxInt32))
	case Float32:
		t.f32[i] = float32(v)
	default:
		t.f64[i] = v
	}
}

// At reads the element at coordinate (c, y, x) as a float64.
func (t *Tensor) At(c, y, x int) float64 { return t.Value(t.Index(c, y, x)) }

// Set writes v at coordinate (c, y, x), converting to the storage kind.
func (t *Tensor) Set(c, y, x int, v float64) { t.SetValue(t.Index(c, y, x), v) }

// Cast returns a copy converted elementwise to dtype dt. Conversions to
// integer kinds truncate toward zero and saturate; conversions between
// float kinds follow the usual float conversion rules.
func (t *Tensor) Cast(dt DType) *Tensor {
	out := Zeros(dt, t.channels, t.height, t.width)
	for i, n := 0, t.Len(); i < n; i++ {
		out.SetValue(i, t.Value(i))
	}
	return out
}

// Uint8s returns the backing slice of a uint8 tensor, or nil for any other
// storage kind. The slice aliases the tensor's storage.
func (t *Tensor) Uint8s() []uint8 { return t.u8 }

// Int32s returns the backing slice of an int32 tensor, or nil otherwise.
func (t *Tensor) Int32s() []int32 { return t.i32 }

// Float32s returns the backing slice of a float32 tensor, or nil otherwise.
func (t *Tensor) Float32s() []float32 { return t.f32 }

// Float64s returns the backing slice of a float64 tensor, or nil otherwise.
func (t *Tensor) Float64s() []float64 { return t.f64 }

// saturate truncates v toward zero and clamps the result to [lo, hi].
// NaN maps to lo.
func saturate(v, lo, hi float64) float64 {
	v = math.Trunc(v)
	if !(v >= lo) { // also catches NaN
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
