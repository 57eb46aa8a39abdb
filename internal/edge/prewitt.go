package edge

// Prewitt writes the L1 gradient magnitude of src into the interior of dst
// using unit-weight kernels:
//
//	Gx =  1  1  1     Gy =  1  0 -1
//	      0  0  0           1  0 -1
//	     -1 -1 -1           1  0 -1
//
// Preconditions and border handling are the same as for Sobel. Prewitt is
// never accelerated.
func Prewitt(src, dst Buffer) error {
	if err := Validate(src, dst, Depth8U); err != nil {
		return err
	}

	in, out := planeOf(src), planeOf(dst)
	y0, y1 := interiorRows(in)
	applyRows(in, out, y0, y1, prewitt)
	return nil
}

func prewitt(w window) uint8 {
	gx := (w.tl + w.tm + w.tr) - (w.bl + w.bm + w.br)
	gy := (w.tl + w.ml + w.bl) - (w.tr + w.mr + w.br)
	return saturate(abs(gx) + abs(gy))
}
