// Package palette extracts representative colour palettes from images.
//
// The engine clusters pixel colours with a k-means variant that measures
// distance in CIE Lab rather than device RGB, so clusters group colours a
// person would call similar. Extraction runs in two stages:
//
//  1. Seed picks k initial centres with k-means++ weighting, driven by a
//     generator built from a fixed seed so the same input always yields the
//     same palette.
//  2. Refine runs a fixed number of Lloyd rounds (assign to nearest centre,
//     replace each centre with the truncated mean of its members).
//
// Extractor wires both stages to decoded images: it downsamples the image so
// neither side exceeds the configured sample size, reads one Color per pixel
// and clusters them.
//
// Two smaller operations share the colour model: Dominant counts exact RGB
// triples, and MatchingTint blends the average HSL of a palette with a target
// HSL value.
//
// # Thread Safety
//
// Nothing in this package holds mutable shared state. An Extractor may be
// used from several goroutines at once; every call builds its own generator,
// colour set and centroid set.
//
// # Errors
//
// Invalid arguments are reported as ErrInvalidArgument and empty inputs as
// ErrEmptyColorSet, both wrapped with context. Decode failures come from the
// imaging package as *imaging.DecodeError.
package palette
