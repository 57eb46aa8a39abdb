package edge

import "fmt"

// Validate checks the preconditions shared by every operator in this package.
//
// Both images must have depth want and exactly one channel. They must also
// agree on width and height, hold at least width*height bytes, and must not
// share pixel memory.
//
// Returns:
//   - an error wrapping ErrDepthMismatch if either depth differs from want
//   - an error wrapping ErrChannelUnsupported if either channel count is not 1
//   - an error wrapping ErrSizeMismatch for differing dimensions or short buffers
//   - an error wrapping ErrInvalidParameter if src and dst alias
//   - nil otherwise
//
// Validate has no side effects.
func Validate(src, dst Buffer, want Depth) error {
	if isNil(src) || isNil(dst) {
		return fmt.Errorf("%w: nil image", ErrInvalidParameter)
	}
	if src.Depth() != want {
		return fmt.Errorf("%w: source is %s, want %s", ErrDepthMismatch, src.Depth(), want)
	}
	if dst.Depth() != want {
		return fmt.Errorf("%w: destination is %s, want %s", ErrDepthMismatch, dst.Depth(), want)
	}
	if src.Channels() != 1 || dst.Channels() != 1 {
		return fmt.Errorf("%w: source has %d, destination has %d, want 1",
			ErrChannelUnsupported, src.Channels(), dst.Channels())
	}
	if err := checkShape(src, dst); err != nil {
		return err
	}
	if aliased(src, dst) {
		return fmt.Errorf("%w: source and destination share pixel memory", ErrInvalidParameter)
	}
	return nil
}

// isNil reports a nil interface or a nil *Image stored in one. Other
// Buffer implementations must not be passed as typed nils.
func isNil(b Buffer) bool {
	if b == nil {
		return true
	}
	m, ok := b.(*Image)
	return ok && m == nil
}

func checkShape(src, dst Buffer) error {
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return fmt.Errorf("%w: source is %dx%d, destination is %dx%d",
			ErrSizeMismatch, src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	if src.Width() < 0 || src.Height() < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrSizeMismatch, src.Width(), src.Height())
	}
	n := src.Width() * src.Height()
	if len(src.Pix()) < n {
		return fmt.Errorf("%w: source holds %d bytes, need %d", ErrSizeMismatch, len(src.Pix()), n)
	}
	if len(dst.Pix()) < n {
		return fmt.Errorf("%w: destination holds %d bytes, need %d", ErrSizeMismatch, len(dst.Pix()), n)
	}
	return nil
}

// aliased reports whether the first pixels of a and b are the same byte.
// Partial overlaps of distinct slices are not detected.
func aliased(a, b Buffer) bool {
	pa, pb := a.Pix(), b.Pix()
	if len(pa) == 0 || len(pb) == 0 {
		return false
	}
	return &pa[0] == &pb[0]
}
