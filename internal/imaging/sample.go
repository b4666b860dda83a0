package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// SampledSize returns the dimensions an image of width x height is
// downsampled to so that neither side exceeds maxDim. The aspect ratio is
// preserved, each side is at least one pixel, and images already within the
// bound keep their size. maxDim <= 0 disables downsampling.
func SampledSize(width, height, maxDim int) (int, int) {
	if maxDim <= 0 || width <= 0 || height <= 0 {
		return width, height
	}
	if width <= maxDim && height <= maxDim {
		return width, height
	}

	var w, h int
	if width >= height {
		w = maxDim
		h = int(float64(height) * float64(maxDim) / float64(width))
	} else {
		h = maxDim
		w = int(float64(width) * float64(maxDim) / float64(height))
	}
	return max(w, 1), max(h, 1)
}

// Downsample returns img resized so neither side exceeds maxDim, using a
// linear (triangle) filter. Smaller images are copied, never enlarged.
//
// The result is always a non-premultiplied *image.NRGBA whose bounds start
// at the origin.
func Downsample(img image.Image, maxDim int) *image.NRGBA {
	bounds := img.Bounds()
	w, h := SampledSize(bounds.Dx(), bounds.Dy(), maxDim)
	if w == bounds.Dx() && h == bounds.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Linear)
}
