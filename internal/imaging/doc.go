// Package imaging prepares decoded images for the edge operators and turns
// operator responses into tool results.
//
// The edge package only accepts single-channel 8-bit buffers and never does
// I/O. This package sits in front of it:
//   - ImageCache decodes PNG, JPEG and GIF files and keeps them by path
//   - Prepare crops to an optional Region and rescales
//   - ToGray converts any color model to an 8U single-channel edge.Image
//   - Run and Detect dispatch to Laplace, Sobel, Prewitt or Canny
//   - DetectOverlay tints strong responses over the source image
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. For a
// Region, (X1,Y1) is inclusive and (X2,Y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Every other function works on values
// it creates itself and can be called concurrently.
//
// # Error Handling
//
// Operator failures are wrapped with the operator name and keep the edge
// sentinel errors reachable through errors.Is, e.g. edge.ErrNotImplemented for
// Canny and edge.ErrInvalidParameter for an unknown Laplace mask.
package imaging
