package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var swatchColors = []color.Color{
	color.NRGBA{255, 0, 0, 255},
	color.NRGBA{0, 255, 0, 255},
	color.NRGBA{0, 0, 255, 255},
}

func TestRenderSwatch(t *testing.T) {
	strip, err := RenderSwatch(swatchColors, 8)
	if err != nil {
		t.Fatalf("RenderSwatch failed: %v", err)
	}
	if strip.Bounds().Dx() != 24 || strip.Bounds().Dy() != 8 {
		t.Fatalf("unexpected bounds: %v", strip.Bounds())
	}

	for i, want := range swatchColors {
		for _, x := range []int{i * 8, i*8 + 7} {
			if got := strip.NRGBAAt(x, 4); got != want {
				t.Errorf("tile %d at x=%d: got %v, want %v", i, x, got, want)
			}
		}
	}
}

func TestRenderSwatch_DefaultTileSize(t *testing.T) {
	strip, err := RenderSwatch(swatchColors[:1], 0)
	if err != nil {
		t.Fatalf("RenderSwatch failed: %v", err)
	}
	if strip.Bounds().Dx() != DefaultTileSize || strip.Bounds().Dy() != DefaultTileSize {
		t.Errorf("unexpected bounds: %v", strip.Bounds())
	}
}

func TestRenderSwatch_Empty(t *testing.T) {
	if _, err := RenderSwatch(nil, 8); err == nil {
		t.Error("expected error for empty palette")
	}
	if _, err := EncodeSwatch(nil, 8); err == nil {
		t.Error("expected error for empty palette")
	}
	if err := SaveSwatch(filepath.Join(t.TempDir(), "empty.png"), nil, 8); err == nil {
		t.Error("expected error for empty palette")
	}
}

func TestEncodeSwatch(t *testing.T) {
	result, err := EncodeSwatch(swatchColors, 4)
	if err != nil {
		t.Fatalf("EncodeSwatch failed: %v", err)
	}
	if result.Width != 12 || result.Height != 4 || result.Colors != 3 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type: got %q", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not a PNG: %v", err)
	}
	r, g, b, _ := img.At(5, 1).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("middle tile: got (%d, %d, %d), want green", r>>8, g>>8, b>>8)
	}
}

func TestSaveSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")

	if err := SaveSwatch(path, swatchColors, 16); err != nil {
		t.Fatalf("SaveSwatch failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("swatch was not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("saved file is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 48 || img.Bounds().Dy() != 16 {
		t.Errorf("unexpected bounds: %v", img.Bounds())
	}
}
