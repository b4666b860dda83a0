package palette

import (
	"image"
	"sort"
)

// DefaultDominantCount is the number of colours Dominant callers usually ask for.
const DefaultDominantCount = 5

// ColorCount is a colour and the number of pixels that have exactly it.
type ColorCount struct {
	Color Color `json:"color"`
	Count int   `json:"count"`
}

// Dominant counts exact RGB values over every pixel of img and returns the
// count most frequent, most frequent first. Alpha is ignored.
//
// Colours that differ in any channel are never merged, however close they
// look. Equal counts keep the order in which the colours were first met in a
// row-major scan, so the result is deterministic. count < 1 returns nil.
func Dominant(img image.Image, count int) []ColorCount {
	if count < 1 || img == nil {
		return nil
	}

	index := make(map[Color]int)
	var counts []ColorCount
	for _, c := range ColorsFromImage(img) {
		if i, ok := index[c]; ok {
			counts[i].Count++
			continue
		}
		index[c] = len(counts)
		counts = append(counts, ColorCount{Color: c, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > count {
		counts = counts[:count]
	}
	return counts
}

// Percentage returns count as a percentage of total. A zero total yields 0.
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}
