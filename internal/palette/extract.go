package palette

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

const (
	// DefaultPrecision is the number of refinement rounds.
	DefaultPrecision = 12

	// DefaultSampleSize is the maximum width or height of the sampled image.
	DefaultSampleSize = 100
)

// Config controls palette extraction.
type Config struct {
	// Precision is the number of Lloyd rounds run after seeding.
	Precision int

	// SampleSize bounds both sides of the image that pixels are sampled
	// from. Larger values trade speed for fidelity.
	SampleSize int

	// Seed initialises the generator used for k-means++ seeding. The same
	// seed and input always produce the same palette.
	Seed int64

	// ReseedEmpty moves centroids that attract no colours onto the colour
	// farthest from its centroid. When false they keep their old value.
	ReseedEmpty bool

	// Algorithm selects the clustering implementation.
	Algorithm Algorithm
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		Precision:   DefaultPrecision,
		SampleSize:  DefaultSampleSize,
		Seed:        DefaultSeed,
		ReseedEmpty: true,
		Algorithm:   AlgorithmKMeans,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("%w: precision must be non-negative, got %d", ErrInvalidArgument, c.Precision)
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("%w: sample size must be at least 1, got %d", ErrInvalidArgument, c.SampleSize)
	}
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("%w: unknown algorithm %q (valid algorithms: %v)", ErrInvalidArgument, c.Algorithm, ValidAlgorithms())
	}
	return nil
}

// Extractor extracts palettes from images.
type Extractor struct {
	cfg    Config
	logger hclog.Logger
}

// NewExtractor returns an Extractor for cfg. A nil logger discards output.
func NewExtractor(cfg Config, logger hclog.Logger) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Extractor{cfg: cfg, logger: logger}, nil
}

// ExtractBytes decodes data and extracts an n-colour palette from it.
// Undecodable input yields a *imaging.DecodeError.
func (e *Extractor) ExtractBytes(data []byte, n int) ([]Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: palette size must be at least 1, got %d", ErrInvalidArgument, n)
	}
	img, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}
	return e.Extract(img, n)
}

// Extract downsamples img to the configured sample size and extracts an
// n-colour palette from its pixels. Alpha is ignored.
func (e *Extractor) Extract(img image.Image, n int) ([]Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: palette size must be at least 1, got %d", ErrInvalidArgument, n)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrInvalidArgument)
	}

	sampled := imaging.Downsample(img, e.cfg.SampleSize)
	e.logger.Debug("sampled image",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(),
		"sampled_width", sampled.Bounds().Dx(), "sampled_height", sampled.Bounds().Dy())

	if e.cfg.Algorithm == AlgorithmDominantColor {
		return extractDominantColor(sampled, n)
	}
	return e.Cluster(ColorsFromImage(sampled), n)
}

// Cluster runs k-means++ seeding followed by Lloyd refinement over colors
// and returns the resulting centroids.
//
// If n exceeds the number of colours the palette is capped at len(colors),
// so the result has min(n, len(colors)) entries.
func (e *Extractor) Cluster(colors []Color, n int) ([]Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: palette size must be at least 1, got %d", ErrInvalidArgument, n)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("cannot extract palette: %w", ErrEmptyColorSet)
	}

	k := n
	if k > len(colors) {
		e.logger.Debug("palette size capped at population", "requested", n, "population", len(colors))
		k = len(colors)
	}

	centroids, err := Seed(colors, k, newRand(e.cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to seed centroids: %w", err)
	}

	centroids = Refine(colors, centroids, e.cfg.Precision, e.cfg.ReseedEmpty)
	e.logger.Debug("clustered colors", "samples", len(colors), "k", k, "rounds", e.cfg.Precision)

	if len(centroids) > n {
		centroids = centroids[:n]
	}
	return centroids, nil
}
