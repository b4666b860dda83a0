package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

type dominantOptions struct {
	count  int
	format string
}

type dominantJSON struct {
	colorJSON
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func newDominantCmd(a *app) *cobra.Command {
	opts := &dominantOptions{}

	cmd := &cobra.Command{
		Use:   "dominant <image>",
		Short: "List the most frequent exact colors in an image",
		Long: `Count every pixel's exact color and list the most frequent ones.

Unlike extract, no clustering or downsampling is done: near-identical colors
are counted separately. Ties keep the order in which colors first appear.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDominant(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", palette.DefaultDominantCount, "number of colors to list")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHex, "output format (hex, rgb, json)")
	return cmd
}

func (a *app) runDominant(cmd *cobra.Command, path string, opts *dominantOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if opts.count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", palette.ErrInvalidArgument, opts.count)
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}

	total := img.Bounds().Dx() * img.Bounds().Dy()
	counts := palette.Dominant(img, opts.count)

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		entries := make([]dominantJSON, len(counts))
		for i, cc := range counts {
			entries[i] = dominantJSON{
				colorJSON:  toColorJSON(cc.Color),
				Count:      cc.Count,
				Percentage: palette.Percentage(cc.Count, total),
			}
		}
		return writeJSON(out, entries)
	}

	for _, cc := range counts {
		pct := palette.Percentage(cc.Count, total)
		if _, err := fmt.Fprintf(out, "%s\t%d\t%.2f%%\n", formatColor(cc.Color, opts.format), cc.Count, pct); err != nil {
			return err
		}
	}
	return nil
}
