package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

type extractOptions struct {
	colors   int
	format   string
	swatch   string
	tileSize int
}

func newExtractCmd(a *app) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a color palette from an image",
		Long: `Extract an n-color palette from an image with seeded k-means++ in CIE Lab.

The image is downsampled to --sample-size before clustering. The same image,
settings and --seed always give the same palette.

Supported image formats: PNG, JPEG, GIF, WebP, BMP, TIFF

Examples:
  # Extract 5 colors (default) as hex
  palette-mcp extract wallpaper.jpg

  # Extract 8 colors as JSON with more refinement rounds
  palette-mcp extract -n 8 --precision 20 --format json wallpaper.png

  # Save a swatch strip of the palette
  palette-mcp extract -n 6 --swatch palette.png wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.colors, "n-colors", "n", 5, "number of colors to extract")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHex, "output format (hex, rgb, json)")
	cmd.Flags().StringVar(&opts.swatch, "swatch", "", "also write the palette as a PNG swatch to this file")
	cmd.Flags().IntVar(&opts.tileSize, "tile-size", imaging.DefaultTileSize, "swatch tile size in pixels")
	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, path string, opts *extractOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	pc, err := a.cfg.Palette()
	if err != nil {
		return err
	}
	extractor, err := palette.NewExtractor(pc, a.logger.Named("palette"))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path) // #nosec G304 - user-specified image path
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	a.logger.Debug("extracting palette", "path", path, "colors", opts.colors, "algorithm", pc.Algorithm)
	colors, err := extractor.ExtractBytes(data, opts.colors)
	if err != nil {
		return err
	}

	if opts.swatch != "" {
		if err := imaging.SaveSwatch(opts.swatch, palette.StdColors(colors), opts.tileSize); err != nil {
			return err
		}
		a.logger.Info("wrote swatch", "path", opts.swatch)
	}

	return writeColors(cmd.OutOrStdout(), colors, opts.format)
}
