package palette

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultSeed is the generator seed used when none is configured. Keeping it
// fixed makes repeated extractions of the same image return the same palette.
const DefaultSeed int64 = 0

// newRand returns a fresh generator for one extraction.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Seed chooses k initial centroids from colors using k-means++ weighting.
//
// The first centroid is drawn uniformly. Each following centroid is drawn
// with probability proportional to the squared Lab distance between a colour
// and its nearest already chosen centroid. If every colour coincides with a
// chosen centroid the weights are all zero; the draw then falls back to a
// uniform pick over colors.
//
// Returns ErrEmptyColorSet if colors is empty and ErrInvalidArgument unless
// 1 <= k <= len(colors).
func Seed(colors []Color, k int, rng *rand.Rand) ([]Color, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyColorSet
	}
	if k < 1 || k > len(colors) {
		return nil, fmt.Errorf("%w: k must be in [1, %d], got %d", ErrInvalidArgument, len(colors), k)
	}

	labs := make([]lab, len(colors))
	for i, c := range colors {
		labs[i] = c.lab()
	}

	centroids := make([]Color, 0, k)
	first := rng.Intn(len(colors))
	centroids = append(centroids, colors[first])

	// nearest[i] tracks the distance from colour i to its closest centroid,
	// updated incrementally as centroids are added.
	nearest := make([]float64, len(colors))
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}
	latest := labs[first]

	weights := make([]float64, len(colors))
	for len(centroids) < k {
		sum := 0.0
		for i, p := range labs {
			if d := labDistance(p, latest); d < nearest[i] {
				nearest[i] = d
			}
			sum += nearest[i]
		}

		var next int
		if sum == 0 {
			next = rng.Intn(len(colors))
		} else {
			for i, d := range nearest {
				weights[i] = d / sum
			}
			next = pickCumulative(weights, rng.Float64())
		}

		centroids = append(centroids, colors[next])
		latest = labs[next]
	}

	return centroids, nil
}

// pickCumulative returns the first index whose cumulative probability is at
// least r. Rounding can leave the total just under r, in which case the last
// index with non-zero weight is returned.
func pickCumulative(probabilities []float64, r float64) int {
	cumulative := 0.0
	last := 0
	for i, p := range probabilities {
		if p > 0 {
			last = i
		}
		cumulative += p
		if cumulative >= r && p > 0 {
			return i
		}
	}
	return last
}
