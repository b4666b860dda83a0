package palette

import (
	"fmt"
	"image"
	"sort"

	"github.com/cenkalti/dominantcolor"
)

// Algorithm names a palette extraction algorithm.
type Algorithm string

const (
	// AlgorithmKMeans is seeded k-means in CIE Lab. It is deterministic.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominantColor delegates to github.com/cenkalti/dominantcolor,
	// which clusters in RGB and weights clusters by population. Results are
	// ordered heaviest first and may hold fewer than n colours.
	AlgorithmDominantColor Algorithm = "dominantcolor"
)

// ValidAlgorithms returns the supported algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans, AlgorithmDominantColor}
}

// IsValidAlgorithm reports whether alg is supported.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// ParseAlgorithm converts a name to an Algorithm. The empty string selects
// AlgorithmKMeans.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return AlgorithmKMeans, nil
	}
	alg := Algorithm(name)
	if !IsValidAlgorithm(alg) {
		return "", fmt.Errorf("%w: unknown algorithm %q (valid algorithms: %v)", ErrInvalidArgument, name, ValidAlgorithms())
	}
	return alg, nil
}

func extractDominantColor(img image.Image, n int) ([]Color, error) {
	weighted := dominantcolor.FindWeight(img, n)
	if len(weighted) == 0 {
		return nil, fmt.Errorf("cannot extract palette: %w", ErrEmptyColorSet)
	}
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].Weight > weighted[j].Weight
	})

	colors := make([]Color, 0, len(weighted))
	for _, w := range weighted {
		colors = append(colors, Color{R: w.RGBA.R, G: w.RGBA.G, B: w.RGBA.B})
	}
	if len(colors) > n {
		colors = colors[:n]
	}
	return colors, nil
}
