package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
)

// ToGray converts img to the single-channel 8-bit buffer the edge operators
// require.
//
// An *image.Gray input is copied (so the cached source is never modified).
// Every other model goes through bild's luminance conversion (0.3R + 0.6G +
// 0.1B), whose RGBA output carries the luminance in every colour channel; the
// red channel is kept. The returned image is always tightly packed at the
// origin.
func ToGray(img image.Image) *edge.Image {
	if g, ok := img.(*image.Gray); ok {
		return edge.WrapGray(g).Clone()
	}
	if img.Bounds().Empty() {
		return edge.NewImage(0, 0)
	}

	rgba := effect.Grayscale(img)
	b := rgba.Bounds()
	out := edge.NewImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, rgba.Pix[rgba.PixOffset(b.Min.X+x, b.Min.Y+y)])
		}
	}
	return out
}
