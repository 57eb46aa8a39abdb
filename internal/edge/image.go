package edge

import (
	"fmt"
	"image"
)

// Depth identifies the storage type of one pixel component.
type Depth uint8

const (
	// Depth8U is unsigned 8-bit, the only depth the operators accept.
	Depth8U Depth = iota + 1
	Depth8S
	Depth16U
	Depth16S
	Depth32S
	Depth32F
)

// String returns the short name of the depth, e.g. "8U".
func (d Depth) String() string {
	switch d {
	case Depth8U:
		return "8U"
	case Depth8S:
		return "8S"
	case Depth16U:
		return "16U"
	case Depth16S:
		return "16S"
	case Depth32S:
		return "32S"
	case Depth32F:
		return "32F"
	default:
		return fmt.Sprintf("Depth(%d)", uint8(d))
	}
}

// Buffer is the view of an image that the operators consume.
//
// Pix must hold at least Width()*Height() bytes in row-major order with a
// row stride equal to Width(). The operators read Pix of the source and write
// Pix of the destination; they never retain either slice.
type Buffer interface {
	Width() int
	Height() int
	Channels() int
	Depth() Depth

	// Pix returns the raw pixel bytes.
	Pix() []uint8

	// Accelerated reports whether the image may be handed to a registered
	// Accelerator.
	Accelerated() bool
}

// Image is a caller-owned, tightly packed raster implementing Buffer.
//
// The zero value is an empty 0x0 image. Use NewImage or WrapGray to create one
// with pixels.
type Image struct {
	width, height int
	channels      int
	depth         Depth
	pix           []uint8
	accelerated   bool
}

// NewImage allocates a zeroed single-channel 8U image of the given size.
// Negative dimensions are treated as zero.
func NewImage(width, height int) *Image {
	width = max(width, 0)
	height = max(height, 0)
	return &Image{
		width:    width,
		height:   height,
		channels: 1,
		depth:    Depth8U,
		pix:      make([]uint8, width*height),
	}
}

// NewImageFrom wraps an existing pixel slice with explicit metadata.
//
// No validation is done here; the operators reject inconsistent metadata
// through Validate. This is the entry point for buffers owned by another
// image library.
func NewImageFrom(pix []uint8, width, height, channels int, depth Depth) *Image {
	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		depth:    depth,
		pix:      pix,
	}
}

// WrapGray returns an Image over the pixels of g.
//
// When g starts at the origin and its stride equals its width the pixel slice
// is shared, so writes through the Image are visible in g. Otherwise the pixels
// are copied into a new packed buffer.
func WrapGray(g *image.Gray) *Image {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if b.Min == (image.Point{}) && g.Stride == w {
		return NewImageFrom(g.Pix[:w*h], w, h, 1, Depth8U)
	}

	img := NewImage(w, h)
	for y := 0; y < h; y++ {
		start := g.PixOffset(b.Min.X, b.Min.Y+y)
		copy(img.pix[y*w:(y+1)*w], g.Pix[start:start+w])
	}
	return img
}

// Width, Height, Channels, Depth, Pix and Accelerated implement Buffer.
func (m *Image) Width() int        { return m.width }
func (m *Image) Height() int       { return m.height }
func (m *Image) Channels() int     { return m.channels }
func (m *Image) Depth() Depth      { return m.depth }
func (m *Image) Pix() []uint8      { return m.pix }
func (m *Image) Accelerated() bool { return m.accelerated }

// SetAccelerated marks the image as eligible (or not) for a registered
// Accelerator.
func (m *Image) SetAccelerated(v bool) { m.accelerated = v }

// At returns the pixel at (x, y). It panics if the point is out of range.
func (m *Image) At(x, y int) uint8 {
	return m.pix[m.offset(x, y)]
}

// Set stores v at (x, y). It panics if the point is out of range.
func (m *Image) Set(x, y int, v uint8) {
	m.pix[m.offset(x, y)] = v
}

// Fill sets every pixel to v.
func (m *Image) Fill(v uint8) {
	for i := range m.pix {
		m.pix[i] = v
	}
}

// Clone returns a deep copy of the image, including its acceleration flag.
func (m *Image) Clone() *Image {
	c := *m
	c.pix = append([]uint8(nil), m.pix...)
	return &c
}

// Gray returns the image as an *image.Gray sharing the same pixels.
func (m *Image) Gray() *image.Gray {
	return &image.Gray{
		Pix:    m.pix[:m.width*m.height],
		Stride: m.width,
		Rect:   image.Rect(0, 0, m.width, m.height),
	}
}

func (m *Image) offset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("edge: point (%d,%d) outside %dx%d image", x, y, m.width, m.height))
	}
	return y*m.width + x
}

// plane is a bounds-checked 2D view over a flat row-major slice. All kernel
// addressing goes through it.
type plane struct {
	pix    []uint8
	width  int
	height int
}

func planeOf(b Buffer) plane {
	w, h := b.Width(), b.Height()
	return plane{pix: b.Pix()[:w*h], width: w, height: h}
}

// row returns row y limited to the image width. Indexing past the width
// panics instead of reading into the next row.
func (p plane) row(y int) []uint8 {
	if y < 0 || y >= p.height {
		panic(fmt.Sprintf("edge: row %d outside image of height %d", y, p.height))
	}
	return p.pix[y*p.width : (y+1)*p.width : (y+1)*p.width]
}

// window is the 3x3 neighbourhood anchored at its top-left corner.
type window struct {
	tl, tm, tr int
	ml, c, mr  int
	bl, bm, br int
}

// windowAt loads the neighbourhood whose left column is x from three
// consecutive rows.
func windowAt(top, mid, bot []uint8, x int) window {
	return window{
		tl: int(top[x]), tm: int(top[x+1]), tr: int(top[x+2]),
		ml: int(mid[x]), c: int(mid[x+1]), mr: int(mid[x+2]),
		bl: int(bot[x]), bm: int(bot[x+1]), br: int(bot[x+2]),
	}
}
