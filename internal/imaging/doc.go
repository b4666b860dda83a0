// Package imaging decodes, caches, downsamples and renders images for palette
// extraction.
//
// It is the only package that knows about encoded image formats. Palette
// code passes encoded bytes to Decode and otherwise works on image.Image.
//
// # Formats
//
// PNG, JPEG and GIF are registered from the standard library; WebP, BMP and
// TIFF from golang.org/x/image. The format is detected from the content, not
// the file name. EXIF orientation is applied on decode.
//
// # Downsampling
//
// Palette extraction bounds its work by sampling a copy of the image whose
// sides do not exceed a maximum dimension. Downsample preserves the aspect
// ratio, uses a linear filter and never enlarges small images.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
//
// # Error Handling
//
// Input that cannot be decoded is reported as *DecodeError, which callers can
// detect with errors.As. File system errors are wrapped and returned as-is.
package imaging
