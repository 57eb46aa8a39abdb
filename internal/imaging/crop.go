package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is a rectangle in source image coordinates.
// (X1,Y1) is inclusive, (X2,Y2) is exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Prepare crops img to region (nil means the whole image) and then resizes it
// by scale with a Lanczos filter.
//
// A scale of 0 or 1 leaves the size unchanged. Negative scales and regions
// that are empty or extend outside the image are rejected.
func Prepare(img image.Image, region *Region, scale float64) (image.Image, error) {
	bounds := img.Bounds()
	out := img

	if region != nil {
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		if !region.Rect().In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				region.X1, region.Y1, region.X2, region.Y2,
				bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		out = imaging.Crop(img, region.Rect())
	}

	if scale < 0 {
		return nil, fmt.Errorf("invalid scale %g: must be positive", scale)
	}
	if scale != 0 && scale != 1.0 {
		b := out.Bounds()
		w := int(float64(b.Dx()) * scale)
		h := int(float64(b.Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %g reduces %dx%d image to nothing", scale, b.Dx(), b.Dy())
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}

	return out, nil
}
