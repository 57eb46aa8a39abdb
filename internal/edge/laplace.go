package edge

import "fmt"

// Mask selects the Laplace neighbourhood.
type Mask uint8

const (
	// MaskCross is the 4-neighbour mask:
	//
	//	0  1  0
	//	1 -4  1
	//	0  1  0
	MaskCross Mask = 1

	// MaskBox is the 8-neighbour mask:
	//
	//	1  1  1
	//	1 -8  1
	//	1  1  1
	MaskBox Mask = 2
)

func (m Mask) String() string {
	switch m {
	case MaskCross:
		return "cross"
	case MaskBox:
		return "box"
	default:
		return fmt.Sprintf("Mask(%d)", uint8(m))
	}
}

// Laplace writes the absolute second-derivative response of src into the
// interior of dst.
//
// Parameters:
//   - src: 8U single-channel source.
//   - dst: 8U single-channel destination of the same size. Border pixels are
//     not written.
//   - mask: MaskCross or MaskBox.
//
// Any other mask returns an error wrapping ErrInvalidParameter and leaves dst
// untouched. Responses above 255 saturate.
func Laplace(src, dst Buffer, mask Mask) error {
	if err := Validate(src, dst, Depth8U); err != nil {
		return err
	}

	var k kernel
	switch mask {
	case MaskCross:
		k = laplaceCross
	case MaskBox:
		k = laplaceBox
	default:
		return fmt.Errorf("%w: laplace mask %d, want 1 or 2", ErrInvalidParameter, uint8(mask))
	}

	in, out := planeOf(src), planeOf(dst)
	y0, y1 := interiorRows(in)
	applyRows(in, out, y0, y1, k)
	return nil
}

func laplaceCross(w window) uint8 {
	return saturate(abs(w.tm + w.ml + w.mr + w.bm - w.c<<2))
}

func laplaceBox(w window) uint8 {
	sum := w.tl + w.tm + w.tr + w.ml + w.mr + w.bl + w.bm + w.br
	return saturate(abs(sum - w.c<<3))
}
