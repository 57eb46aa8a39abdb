// Package edge implements spatial gradient and edge-detection operators over
// single-channel 8-bit images.
//
// The package provides four operators:
//   - Laplace: second-derivative response with a 4-neighbour or 8-neighbour mask
//   - Sobel: first-derivative magnitude, |Gx| + |Gy| with 1-2-1 weighting
//   - Prewitt: first-derivative magnitude with unit weighting
//   - Canny: declared but not implemented; always returns ErrNotImplemented
//
// # Buffers
//
// Operators consume the Buffer interface and never allocate or free pixel
// memory. The caller provides a source and a pre-allocated destination of the
// same width and height. Image is the concrete row-major implementation used by
// the rest of this module.
//
// # Border Convention
//
// For a W x H image only the interior pixels (1..W-2, 1..H-2) are written. The
// outer one-pixel border of the destination keeps whatever the caller put
// there, so callers usually start from a zeroed destination.
//
// # Saturation
//
// Responses are computed in int and clamped into [0, 255]. High-contrast
// input saturates to 255; it never wraps.
//
// # Acceleration
//
// Sobel can be delegated to a registered Accelerator when both images report
// Accelerated(). ParallelAccelerator is the bundled implementation; it splits
// the row loop across goroutines and produces the same bytes as the software
// path.
//
// # Thread Safety
//
// Operators are stateless. Distinct image pairs can be processed concurrently.
// Source and destination must not share memory.
package edge
