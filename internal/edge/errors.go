package edge

import "errors"

var (
	// ErrDepthMismatch reports that an image does not have the depth an
	// operator requires.
	ErrDepthMismatch = errors.New("edge: depth mismatch")

	// ErrChannelUnsupported reports an image with a channel count other than one.
	ErrChannelUnsupported = errors.New("edge: channel count not supported")

	// ErrSizeMismatch reports source and destination dimensions that differ, or
	// a pixel slice shorter than width*height.
	ErrSizeMismatch = errors.New("edge: size mismatch")

	// ErrInvalidParameter reports an operator argument outside its domain.
	ErrInvalidParameter = errors.New("edge: invalid parameter")

	// ErrNotImplemented is returned by operators that are declared but have no
	// algorithm yet. Nothing is written when it is returned.
	ErrNotImplemented = errors.New("edge: not implemented")

	// ErrFallbackToSoftware is returned by an Accelerator that cannot handle a
	// particular call. The caller runs the software kernel instead.
	ErrFallbackToSoftware = errors.New("edge: falling back to software")
)
