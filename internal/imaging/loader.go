package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache provides thread-safe caching of decoded source images.
//
// Edge tools are usually called several times on the same file (one call per
// operator, or a detection followed by an overlay), so the decoded image is
// kept by path and reused. Derived grayscale buffers are not cached; they are
// cheap to rebuild and callers may modify them.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	prepared, err := imaging.Prepare(img, nil, 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gray := imaging.ToGray(prepared)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image for path, reading it from disk on first use.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The cache key is the exact path
// string, so relative and absolute paths to one file are cached separately.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes path from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo describes a source image as the edge tools see it.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", "bmp", "tiff", "webp" or "unknown",
	// from the file extension.
	Format string `json:"format"`

	// ColorModel is the decoded color model: "gray", "gray16", "rgba",
	// "rgba64", "ycbcr", "paletted" or "other".
	ColorModel string `json:"color_model"`

	// Channels is the number of components in the decoded model.
	// Operators always run on a single-channel luminance conversion.
	Channels int `json:"channels"`

	// NeedsConversion is false only when the file decodes directly to an
	// 8-bit single-channel image that the operators accept as-is.
	NeedsConversion bool `json:"needs_conversion"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads path into cache and reports its metadata.
//
// # Color Model Detection
//
//   - *image.Gray -> "gray", 1 channel, no conversion
//   - *image.Gray16 -> "gray16", 1 channel, converted to 8-bit
//   - *image.RGBA, *image.NRGBA -> "rgba", 4 channels
//   - *image.RGBA64, *image.NRGBA64 -> "rgba64", 4 channels
//   - *image.YCbCr -> "ycbcr", 3 channels
//   - *image.Paletted -> "paletted", 1 channel (index), converted
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	model, channels := describeModel(img)
	bounds := img.Bounds()
	return &ImageInfo{
		Width:           bounds.Dx(),
		Height:          bounds.Dy(),
		Format:          format,
		ColorModel:      model,
		Channels:        channels,
		NeedsConversion: model != "gray",
		FileSizeBytes:   stat.Size(),
	}, nil
}

func describeModel(img image.Image) (string, int) {
	switch img.(type) {
	case *image.Gray:
		return "gray", 1
	case *image.Gray16:
		return "gray16", 1
	case *image.RGBA, *image.NRGBA:
		return "rgba", 4
	case *image.RGBA64, *image.NRGBA64:
		return "rgba64", 4
	case *image.YCbCr:
		return "ycbcr", 3
	case *image.Paletted:
		return "paletted", 1
	default:
		return "other", 4
	}
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of the image at path, loading it into
// cache if needed.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
