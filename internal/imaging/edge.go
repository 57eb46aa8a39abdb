package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
)

// Operator names accepted by Detect.
const (
	OperatorLaplace = "laplace"
	OperatorSobel   = "sobel"
	OperatorPrewitt = "prewitt"
	OperatorCanny   = "canny"
)

// DetectOptions selects an operator and its parameters.
type DetectOptions struct {
	// Operator is one of the Operator* constants.
	Operator string

	// Mask is the Laplace mask (1 = cross, 2 = box). Ignored by other
	// operators.
	Mask int

	// Accelerated marks the source and destination as eligible for the
	// registered edge.Accelerator. Only Sobel honours it.
	Accelerated bool
}

// EdgeDetectResult is an operator response encoded as a base64 PNG, plus
// summary statistics of the interior.
type EdgeDetectResult struct {
	// Operator that produced the response.
	Operator string `json:"operator"`

	// Width of the response image in pixels (same as the operator input).
	Width int `json:"width"`

	// Height of the response image in pixels.
	Height int `json:"height"`

	// Stats summarises the interior response.
	Stats ResponseStats `json:"stats"`

	// ImageBase64 is the response encoded as a grayscale PNG. The one-pixel
	// border is always black.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Run applies the operator named in opts to src and returns the response in a
// freshly zeroed destination. Core errors (edge.ErrInvalidParameter,
// edge.ErrNotImplemented, ...) are returned wrapped.
func Run(src *edge.Image, opts DetectOptions) (*edge.Image, error) {
	dst := edge.NewImage(src.Width(), src.Height())
	src.SetAccelerated(opts.Accelerated)
	dst.SetAccelerated(opts.Accelerated)

	var err error
	switch opts.Operator {
	case OperatorLaplace:
		if opts.Mask < 0 || opts.Mask > 255 {
			err = fmt.Errorf("%w: laplace mask %d, want 1 or 2", edge.ErrInvalidParameter, opts.Mask)
			break
		}
		err = edge.Laplace(src, dst, edge.Mask(opts.Mask))
	case OperatorSobel:
		err = edge.Sobel(src, dst)
	case OperatorPrewitt:
		err = edge.Prewitt(src, dst)
	case OperatorCanny:
		err = edge.Canny(src, dst, edge.NewImage(src.Width(), src.Height()))
	default:
		return nil, fmt.Errorf("unknown operator: %s", opts.Operator)
	}
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", opts.Operator, err)
	}
	return dst, nil
}

// Detect converts img to grayscale, runs the selected operator and encodes
// the response.
func Detect(img image.Image, opts DetectOptions) (*EdgeDetectResult, error) {
	resp, err := Run(ToGray(img), opts)
	if err != nil {
		return nil, err
	}

	encoded, err := EncodePNG(resp.Gray())
	if err != nil {
		return nil, err
	}

	return &EdgeDetectResult{
		Operator:    opts.Operator,
		Width:       resp.Width(),
		Height:      resp.Height(),
		Stats:       Stats(resp),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// EncodePNG encodes img as PNG and returns it base64-encoded.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode edge image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
