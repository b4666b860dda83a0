package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// DefaultTileSize is the edge length of one swatch tile in pixels.
const DefaultTileSize = 64

// SwatchResult contains a rendered palette strip.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Colors      int    `json:"colors"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch draws colors left to right as square tiles of tileSize
// pixels. tileSize <= 0 selects DefaultTileSize.
func RenderSwatch(colors []color.Color, tileSize int) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, errors.New("cannot render an empty palette")
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	strip := imaging.New(tileSize*len(colors), tileSize, color.Transparent)
	for i, c := range colors {
		tile := imaging.New(tileSize, tileSize, c)
		strip = imaging.Paste(strip, tile, image.Pt(i*tileSize, 0))
	}
	return strip, nil
}

// EncodeSwatch renders colors and returns the strip as base64 PNG.
func EncodeSwatch(colors []color.Color, tileSize int) (*SwatchResult, error) {
	strip, err := RenderSwatch(colors, tileSize)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, strip, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       strip.Bounds().Dx(),
		Height:      strip.Bounds().Dy(),
		Colors:      len(colors),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveSwatch renders colors and writes the strip to path as PNG.
func SaveSwatch(path string, colors []color.Color, tileSize int) error {
	strip, err := RenderSwatch(colors, tileSize)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, strip, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save swatch: %w", err)
	}
	return nil
}
