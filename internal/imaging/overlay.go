package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
)

// OverlayResult is the source image with strong responses tinted.
type OverlayResult struct {
	Operator    string        `json:"operator"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Threshold   int           `json:"threshold"`
	Color       string        `json:"color"`
	Tinted      int           `json:"tinted_pixels"`
	Stats       ResponseStats `json:"stats"`
	ImageBase64 string        `json:"image_base64"`
	MimeType    string        `json:"mime_type"`
}

// ParseColor parses "#RRGGBB" or "#RGB"; the leading '#' is optional.
func ParseColor(hex string) (colorful.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

// Overlay blends every pixel of base whose response exceeds threshold toward
// tint, in Lab space, by response/255. Other pixels are copied unchanged and
// alpha is always preserved.
//
// base and resp must have the same dimensions; resp is usually the output of
// Run on ToGray(base).
func Overlay(base image.Image, resp *edge.Image, tint colorful.Color, threshold uint8) (*image.NRGBA, int, error) {
	b := base.Bounds()
	if b.Dx() != resp.Width() || b.Dy() != resp.Height() {
		return nil, 0, fmt.Errorf("overlay size mismatch: base %dx%d, response %dx%d",
			b.Dx(), b.Dy(), resp.Width(), resp.Height())
	}

	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	tinted := 0
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			src := color.NRGBAModel.Convert(base.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			v := resp.At(x, y)
			if v <= threshold {
				out.SetNRGBA(x, y, src)
				continue
			}

			c := colorful.Color{
				R: float64(src.R) / 255,
				G: float64(src.G) / 255,
				B: float64(src.B) / 255,
			}
			r, g, bl := c.BlendLab(tint, float64(v)/255).Clamped().RGB255()
			out.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: src.A})
			tinted++
		}
	}
	return out, tinted, nil
}

// DetectOverlay prepares img, runs the operator and renders the tinted
// overlay.
func DetectOverlay(img image.Image, opts DetectOptions, hex string, threshold int) (*OverlayResult, error) {
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("invalid threshold %d: must be 0-255", threshold)
	}
	tint, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}

	resp, err := Run(ToGray(img), opts)
	if err != nil {
		return nil, err
	}

	out, tinted, err := Overlay(img, resp, tint, uint8(threshold))
	if err != nil {
		return nil, err
	}
	encoded, err := EncodePNG(out)
	if err != nil {
		return nil, err
	}

	return &OverlayResult{
		Operator:    opts.Operator,
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Threshold:   threshold,
		Color:       tint.Hex(),
		Tinted:      tinted,
		Stats:       Stats(resp),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
