package edge

// saturate clamps v into the uint8 range.
func saturate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// kernel computes one output byte from a 3x3 window.
type kernel func(w window) uint8

// applyRows evaluates k for output rows [y0, y1) of the interior. Rows are
// interior coordinates, so the valid range is 1..H-2. Columns 0 and W-1 are
// never written.
func applyRows(in, out plane, y0, y1 int, k kernel) {
	for y := y0; y < y1; y++ {
		top, mid, bot := in.row(y-1), in.row(y), in.row(y+1)
		dst := out.row(y)
		for x := 1; x < in.width-1; x++ {
			dst[x] = k(windowAt(top, mid, bot, x-1))
		}
	}
}

// interiorRows returns the half-open range of rows an operator writes. The
// range is empty for images smaller than 3x3.
func interiorRows(p plane) (y0, y1 int) {
	if p.width < 3 || p.height < 3 {
		return 1, 1
	}
	return 1, p.height - 1
}
