package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DecodeError reports input that is not a supported raster image.
//
// Source names where the bytes came from: a file path, or "<bytes>" for
// in-memory input.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

const memorySource = "<bytes>"

// Decode decodes an encoded image held in memory.
//
// Supported formats are PNG, JPEG, GIF, WebP, BMP and TIFF. EXIF orientation
// is applied so the pixels match what a viewer would show. Any failure is
// returned as a *DecodeError.
func Decode(data []byte) (image.Image, error) {
	img, _, err := decode(data, memorySource)
	return img, err
}

// DecodeBase64 decodes a standard base64 string (an optional data URL
// prefix is stripped) and then the image it contains.
func DecodeBase64(encoded string) (image.Image, error) {
	if i := strings.Index(encoded, ";base64,"); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, &DecodeError{Source: memorySource, Err: fmt.Errorf("invalid base64: %w", err)}
	}
	return Decode(data)
}

func decode(data []byte, source string) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", &DecodeError{Source: source, Err: errors.New("no image data")}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", &DecodeError{Source: source, Err: err}
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", &DecodeError{Source: source, Err: err}
	}

	return img, format, nil
}

// cachedImage is a decoded image together with facts gathered while loading.
type cachedImage struct {
	img    image.Image
	format string
	size   int64
}

// ImageCache provides thread-safe caching of decoded images keyed by file
// path, so repeated tool calls against one file decode it once.
//
// Cached images remain in memory for the life of the cache.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*cachedImage
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*cachedImage),
	}
}

// Load returns the decoded image at path, reading and decoding it on the
// first request.
//
// The path string is the cache key: a relative and an absolute path to the
// same file are cached separately. A file that exists but cannot be decoded
// yields a *DecodeError.
func (c *ImageCache) Load(path string) (image.Image, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

func (c *ImageCache) load(path string) (*cachedImage, error) {
	if path == "" {
		return nil, errors.New("image path cannot be empty")
	}

	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(path) // #nosec G304 - caller-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img, format, err := decode(data, path)
	if err != nil {
		return nil, err
	}

	entry := &cachedImage{img: img, format: format, size: int64(len(data))}
	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Len reports how many images are cached.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo describes a loaded image and the size it is sampled at.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder, e.g. "png" or "webp".
	// It is detected from the file contents, not the extension.
	Format string `json:"format"`

	// HasTransparency reports whether any pixel is not fully opaque.
	HasTransparency bool `json:"has_transparency"`

	// FileSizeBytes is the size of the encoded file in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// SampledWidth and SampledHeight are the dimensions palette extraction
	// works on after downsampling to the requested sample size.
	SampledWidth  int `json:"sampled_width"`
	SampledHeight int `json:"sampled_height"`
}

// LoadImageInfo loads the image at path through cache and describes it.
// sampleSize is the maximum sampling dimension used to report the sampled
// size; a value <= 0 means no downsampling.
func LoadImageInfo(cache *ImageCache, path string, sampleSize int) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	bounds := entry.img.Bounds()
	sw, sh := SampledSize(bounds.Dx(), bounds.Dy(), sampleSize)

	hasTransparency := false
	if o, ok := entry.img.(interface{ Opaque() bool }); ok {
		hasTransparency = !o.Opaque()
	}

	return &ImageInfo{
		Width:           bounds.Dx(),
		Height:          bounds.Dy(),
		Format:          entry.format,
		HasTransparency: hasTransparency,
		FileSizeBytes:   entry.size,
		SampledWidth:    sw,
		SampledHeight:   sh,
	}, nil
}
