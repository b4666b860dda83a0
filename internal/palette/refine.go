package palette

// Refine runs exactly iterations rounds of Lloyd's algorithm over colors,
// starting from centroids, and returns the final centroids.
//
// Each round assigns every colour to its nearest centroid by Lab distance
// (ties go to the lowest index) and then replaces each centroid that gained
// members with the per-channel mean of those members, truncated toward zero.
// There is no convergence check.
//
// A centroid that gains no members keeps its value when reseedEmpty is
// false. When reseedEmpty is true it is moved onto the colour lying farthest
// from its own centroid in that round; a colour is donated at most once per
// round.
//
// centroids is not modified. The result has the same length.
func Refine(colors []Color, centroids []Color, iterations int, reseedEmpty bool) []Color {
	k := len(centroids)
	out := make([]Color, k)
	copy(out, centroids)
	if len(colors) == 0 || k == 0 {
		return out
	}

	labs := make([]lab, len(colors))
	for i, c := range colors {
		labs[i] = c.lab()
	}

	assignments := make([]int, len(colors))
	distances := make([]float64, len(colors))
	centroidLabs := make([]lab, k)
	sums := make([][3]uint64, k)
	counts := make([]uint64, k)

	for round := 0; round < iterations; round++ {
		for j, c := range out {
			centroidLabs[j] = c.lab()
			sums[j] = [3]uint64{}
			counts[j] = 0
		}

		for i, p := range labs {
			best := 0
			bestDist := labDistance(p, centroidLabs[0])
			for j := 1; j < k; j++ {
				if d := labDistance(p, centroidLabs[j]); d < bestDist {
					best = j
					bestDist = d
				}
			}
			assignments[i] = best
			distances[i] = bestDist

			c := colors[i]
			sums[best][0] += uint64(c.R)
			sums[best][1] += uint64(c.G)
			sums[best][2] += uint64(c.B)
			counts[best]++
		}

		var donated map[int]bool
		for j := range out {
			if counts[j] > 0 {
				n := counts[j]
				out[j] = Color{
					R: uint8(sums[j][0] / n),
					G: uint8(sums[j][1] / n),
					B: uint8(sums[j][2] / n),
				}
				continue
			}
			if !reseedEmpty {
				continue
			}
			if donated == nil {
				donated = make(map[int]bool)
			}
			if i := farthest(distances, donated); i >= 0 {
				donated[i] = true
				out[j] = colors[i]
			}
		}
	}

	return out
}

// farthest returns the index with the largest distance that has not been
// donated yet, or -1 if every index has been.
func farthest(distances []float64, donated map[int]bool) int {
	best := -1
	bestDist := -1.0
	for i, d := range distances {
		if donated[i] {
			continue
		}
		if d > bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
