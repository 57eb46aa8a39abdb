package edge

// Canny is the entry point for multi-stage edge detection (gradient,
// non-maximum suppression, hysteresis) writing edges to dst and gradient
// directions to angle.
//
// The algorithm is not implemented. After the usual src/dst checks Canny
// returns ErrNotImplemented and leaves dst and angle exactly as the caller
// provided them. A nil angle is accepted.
//
// Earlier versions of this operator reported success without validating
// anything; callers that relied on a nil error must now check for
// ErrNotImplemented.
func Canny(src, dst, angle Buffer) error {
	if err := Validate(src, dst, Depth8U); err != nil {
		return err
	}
	return ErrNotImplemented
}
