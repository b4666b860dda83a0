package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// gradientColors returns n distinct, deterministic colours
func gradientColors(n int) []Color {
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color{R: uint8(i * 37), G: uint8(i * 91), B: uint8(i * 13)}
	}
	return colors
}

func TestSeed_Deterministic(t *testing.T) {
	colors := gradientColors(200)

	first, err := Seed(colors, 6, newRand(DefaultSeed))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	second, err := Seed(colors, 6, newRand(DefaultSeed))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Seed is not deterministic (-first +second):\n%s", diff)
	}
	if len(first) != 6 {
		t.Errorf("got %d centroids, want 6", len(first))
	}
}

func TestSeed_CentroidsComeFromInput(t *testing.T) {
	colors := gradientColors(50)
	members := make(map[Color]bool)
	for _, c := range colors {
		members[c] = true
	}

	centroids, err := Seed(colors, 10, newRand(42))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	for i, c := range centroids {
		if !members[c] {
			t.Errorf("centroid %d (%v) is not a member of the color set", i, c)
		}
	}
}

func TestSeed_TwoColorsPicksBoth(t *testing.T) {
	red := Color{255, 0, 0}
	blue := Color{0, 0, 255}
	colors := []Color{red, red, red, blue, blue, blue}

	for seed := int64(0); seed < 10; seed++ {
		centroids, err := Seed(colors, 2, newRand(seed))
		if err != nil {
			t.Fatalf("seed %d: Seed failed: %v", seed, err)
		}
		if centroids[0] == centroids[1] {
			t.Errorf("seed %d: second centroid duplicates the first: %v", seed, centroids)
		}
	}
}

func TestSeed_IdenticalColorsFallBack(t *testing.T) {
	gray := Color{128, 128, 128}
	colors := []Color{gray, gray, gray, gray}

	centroids, err := Seed(colors, 3, newRand(DefaultSeed))
	if err != nil {
		t.Fatalf("Seed failed on zero total distance: %v", err)
	}
	want := []Color{gray, gray, gray}
	if diff := cmp.Diff(want, centroids); diff != "" {
		t.Errorf("centroids mismatch (-want +got):\n%s", diff)
	}
}

func TestSeed_Errors(t *testing.T) {
	colors := gradientColors(3)

	tests := []struct {
		name    string
		colors  []Color
		k       int
		wantErr error
	}{
		{"empty color set", nil, 1, ErrEmptyColorSet},
		{"zero k", colors, 0, ErrInvalidArgument},
		{"negative k", colors, -1, ErrInvalidArgument},
		{"k exceeds population", colors, 4, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Seed(tt.colors, tt.k, newRand(DefaultSeed))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Seed error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPickCumulative(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		r     float64
		want  int
	}{
		{"first bucket", []float64{0.2, 0.3, 0.5}, 0.1, 0},
		{"middle bucket", []float64{0.2, 0.3, 0.5}, 0.25, 1},
		{"boundary is inclusive", []float64{0.5, 0.5}, 0.5, 0},
		{"skips zero weight", []float64{0, 0.5, 0.5}, 0, 1},
		{"rounding shortfall", []float64{0.3, 0.3, 0.3, 0}, 0.95, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickCumulative(tt.probs, tt.r); got != tt.want {
				t.Errorf("pickCumulative(%v, %v) = %d, want %d", tt.probs, tt.r, got, tt.want)
			}
		})
	}
}
