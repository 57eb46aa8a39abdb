package edge

import "errors"

// Sobel writes the L1 gradient magnitude |Gx| + |Gy| of src into the interior
// of dst, using
//
//	Gx =  1  2  1     Gy =  1  0 -1
//	      0  0  0           2  0 -2
//	     -1 -2 -1           1  0 -1
//
// Both images must be 8U with one channel and the same size. The border of
// dst is not written by the software path.
//
// When an Accelerator is registered and both images report Accelerated(), the
// call is handed to it. ErrFallbackToSoftware from the accelerator runs the
// software kernel; any other accelerator error is returned.
func Sobel(src, dst Buffer) error {
	if err := Validate(src, dst, Depth8U); err != nil {
		return err
	}

	if a := CurrentAccelerator(); a != nil && src.Accelerated() && dst.Accelerated() {
		err := a.Sobel(src, dst)
		if err == nil {
			Logger().Debug("edge: sobel accelerated", "accelerator", a.Name(),
				"width", src.Width(), "height", src.Height())
			return nil
		}
		if !errors.Is(err, ErrFallbackToSoftware) {
			return err
		}
		Logger().Warn("edge: accelerator fell back to software", "accelerator", a.Name(), "error", err)
	}

	sobelSoftware(src, dst)
	return nil
}

func sobelSoftware(src, dst Buffer) {
	in, out := planeOf(src), planeOf(dst)
	y0, y1 := interiorRows(in)
	applyRows(in, out, y0, y1, sobel)
}

func sobel(w window) uint8 {
	gx := (w.tl + w.tm<<1 + w.tr) - (w.bl + w.bm<<1 + w.br)
	gy := (w.tl + w.ml<<1 + w.bl) - (w.tr + w.mr<<1 + w.br)
	return saturate(abs(gx) + abs(gy))
}
