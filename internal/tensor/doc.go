// Package tensor provides the pixel buffer type shared by all transform
// operations: a 3-dimensional array with axes (channel, height, width) and a
// storage kind tag selecting one of four element types.
//
// # Storage Kinds
//
// A Tensor holds exactly one storage slice, selected by its DType:
//   - Uint8: 8-bit pixels, conventional range [0, 255]
//   - Int32: 32-bit signed integers, the result kind of rounding operations
//   - Float32, Float64: floating-point pixels, conventional range [0, 1]
//
// The float ranges are conventions, not invariants enforced by the type;
// functions that assume them say so in their documentation.
//
// # Layout
//
// Elements are stored planar: channel 0 occupies the first height*width
// elements, channel 1 the next, and so on. Within a plane, rows are stored
// top to bottom. Index(c, y, x) computes the flat offset for a coordinate.
//
// # Casting
//
// Scalar reads (Value, At) widen any storage kind to float64. Scalar writes
// (SetValue, Set) and Cast convert float64 back to the storage kind by
// truncating toward zero and saturating at the kind's representable bounds,
// so an out-of-range write cannot wrap.
//
// # Errors
//
// Shape and length mismatches in constructors are programmer errors and
// panic, the same way a slice index out of range does. All value-level
// failure modes live in the transform package.
package tensor
