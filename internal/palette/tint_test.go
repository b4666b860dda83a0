package palette

import (
	"errors"
	"math"
	"testing"
)

func TestMatchingTint_WhiteMidpoint(t *testing.T) {
	// White is (h=0, s=0, l=1); the base is (h=0, s=1, l=0).
	got, err := MatchingTint(HSL{H: 0, S: 1, L: 0}, []byte{255, 255, 255}, HueCircular)
	if err != nil {
		t.Fatalf("MatchingTint failed: %v", err)
	}

	hsl := got.HSL()
	if math.Abs(hsl.L-0.5) > 0.01 {
		t.Errorf("lightness: got %v, want ~0.5", hsl.L)
	}
	if math.Abs(hsl.S-0.5) > 0.01 {
		t.Errorf("saturation: got %v, want ~0.5", hsl.S)
	}
	if got != (Color{191, 63, 63}) {
		t.Errorf("MatchingTint = %v, want rgb(191, 63, 63)", got)
	}
}

func TestMatchingTint_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		base    HSL
		palette []byte
	}{
		{"four byte palette", HSL{0, 0.5, 0.5}, []byte{1, 2, 3, 4}},
		{"empty palette", HSL{0, 0.5, 0.5}, nil},
		{"saturation too high", HSL{0, 1.5, 0.5}, []byte{1, 2, 3}},
		{"negative lightness", HSL{0, 0.5, -0.1}, []byte{1, 2, 3}},
		{"nan saturation", HSL{0, math.NaN(), 0.5}, []byte{1, 2, 3}},
		{"infinite hue", HSL{math.Inf(1), 0.5, 0.5}, []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MatchingTint(tt.base, tt.palette, HueCircular)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("MatchingTint error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestMatchingTint_HueAcrossZero(t *testing.T) {
	// Two reds either side of the 0/360 seam.
	warm := FromHSL(HSL{H: 10, S: 1, L: 0.5})
	cool := FromHSL(HSL{H: 350, S: 1, L: 0.5})
	palette := Bytes([]Color{warm, cool})
	base := HSL{H: 0, S: 1, L: 0.5}

	t.Run("circular", func(t *testing.T) {
		got, err := MatchingTint(base, palette, HueCircular)
		if err != nil {
			t.Fatalf("MatchingTint failed: %v", err)
		}
		if got.R != 255 || got.G > 10 || got.B > 10 {
			t.Errorf("circular tint = %v, want a pure red", got)
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		got, err := MatchingTint(base, palette, HueArithmetic)
		if err != nil {
			t.Fatalf("MatchingTint failed: %v", err)
		}
		// The palette hues average to ~180 and then ~90 with the base: yellow-green.
		if got.G != 255 || got.R > 200 {
			t.Errorf("arithmetic tint = %v, want a yellow-green", got)
		}
	})
}

func TestMatchingTint_WrapsBaseHue(t *testing.T) {
	palette := []byte{20, 120, 220, 200, 40, 90}

	want, err := MatchingTint(HSL{H: 30, S: 0.6, L: 0.4}, palette, HueCircular)
	if err != nil {
		t.Fatalf("MatchingTint failed: %v", err)
	}
	for _, h := range []float64{390, -330} {
		got, err := MatchingTint(HSL{H: h, S: 0.6, L: 0.4}, palette, HueCircular)
		if err != nil {
			t.Fatalf("MatchingTint(h=%v) failed: %v", h, err)
		}
		if got != want {
			t.Errorf("MatchingTint(h=%v) = %v, want %v", h, got, want)
		}
	}
}

func TestMeanHue(t *testing.T) {
	tests := []struct {
		name string
		hues []float64
		mode HueAverage
		want float64
	}{
		{"single", []float64{42}, HueCircular, 42},
		{"circular seam", []float64{350, 10}, HueCircular, 0},
		{"arithmetic seam", []float64{350, 10}, HueArithmetic, 180},
		{"opposites fall back", []float64{0, 180}, HueCircular, 90},
		{"plain average", []float64{100, 140}, HueCircular, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := meanHue(tt.hues, tt.mode)
			// Treat 360 as 0 for the seam case.
			diff := math.Abs(got - tt.want)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1e-6 {
				t.Errorf("meanHue(%v, %s) = %v, want %v", tt.hues, tt.mode, got, tt.want)
			}
		})
	}
}

func TestWrapHue(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		359:  359,
		360:  0,
		720:  0,
		-30:  330,
		-390: 330,
	}
	for in, want := range tests {
		if got := wrapHue(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("wrapHue(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestParseHueAverage(t *testing.T) {
	if got, err := ParseHueAverage(""); err != nil || got != HueCircular {
		t.Errorf("ParseHueAverage(\"\") = %s, %v", got, err)
	}
	if got, err := ParseHueAverage("arithmetic"); err != nil || got != HueArithmetic {
		t.Errorf("ParseHueAverage(arithmetic) = %s, %v", got, err)
	}
	if _, err := ParseHueAverage("vector"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseHueAverage(vector) error = %v, want ErrInvalidArgument", err)
	}
}
