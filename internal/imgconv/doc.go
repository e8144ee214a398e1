// Package imgconv bridges standard Go images and the planar tensors the
// transform package operates on.
//
// FromImage and ToImage convert between image.Image and 3-channel RGB
// tensors (alpha is dropped; tensors produced here are fully opaque when
// converted back). Load and Save add file decode/encode on top, so a
// pipeline can read a PNG or JPEG, run pixel transforms, and write the
// result back out without the transform package ever touching I/O.
package imgconv
